package dto

// CustomerLookupRequest body para POST /api/customers/lookup.
type CustomerLookupRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// CustomerResponse cliente en respuestas.
type CustomerResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	CreatedAt string `json:"created_at"`
}

// CustomerLookupResponse cliente resuelto + flag de creación.
type CustomerLookupResponse struct {
	Customer CustomerResponse `json:"customer"`
	IsNew    bool             `json:"is_new"`
}

// CustomerBillsResponse historial de facturas de un cliente.
type CustomerBillsResponse struct {
	Customer CustomerResponse `json:"customer"`
	Bills    []BillResponse   `json:"bills"`
}
