package dto

import "github.com/shopspring/decimal"

// CheckoutRequest body para POST /api/bills/checkout.
// amount_paid es obligatorio cuando payment_status es PENDING; due_date
// (YYYY-MM-DD) solo se honra en PENDING.
type CheckoutRequest struct {
	CustomerName    string            `json:"customer_name"`
	CustomerPhone   string            `json:"customer_phone"`
	Items           []CartItemRequest `json:"items"`
	DiscountPercent decimal.Decimal   `json:"discount_percent"`
	PaymentStatus   string            `json:"payment_status,omitempty"` // PAID|PENDING, default PAID
	AmountPaid      *decimal.Decimal  `json:"amount_paid,omitempty"`
	DueDate         string            `json:"due_date,omitempty"`
}

// CartItemRequest línea del carrito. SKU vacío = entrada manual sin inventario
// (suma al total pero no toca stock).
type CartItemRequest struct {
	ProductName string          `json:"product_name"`
	SKU         string          `json:"sku,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int64           `json:"quantity"`
}

// StockLineResponse resumen antes/después por línea con SKU (feedback de UI).
type StockLineResponse struct {
	ProductName string `json:"product_name"`
	SKU         string `json:"sku"`
	Sold        int64  `json:"sold"`
	StockBefore int64  `json:"stock_before"`
	StockAfter  int64  `json:"stock_after"`
}

// CheckoutCustomerResponse resumen del cliente resuelto en el checkout.
type CheckoutCustomerResponse struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	IsNew bool   `json:"is_new"`
}

// CheckoutResponse resultado de un checkout exitoso.
type CheckoutResponse struct {
	BillRef       string                   `json:"bill_ref"`
	InvoiceURL    string                   `json:"invoice_url"`
	PDFURL        string                   `json:"pdf_url,omitempty"`
	Subtotal      decimal.Decimal          `json:"subtotal"`
	DiscountAmt   decimal.Decimal          `json:"discount_amount"`
	FinalAmount   decimal.Decimal          `json:"final_amount"`
	AmountPaid    decimal.Decimal          `json:"amount_paid"`
	AmountDue     decimal.Decimal          `json:"amount_due"`
	PaymentStatus string                   `json:"payment_status"`
	Customer      CheckoutCustomerResponse `json:"customer"`
	StockUpdated  []StockLineResponse      `json:"stock_updated"`
}

// SettlementRequest body para PATCH /api/bills/:ref/status.
// Exactamente uno de los dos caminos: additional_payment > 0 abona al saldo;
// si no, se toma payment_status como asignación explícita.
type SettlementRequest struct {
	AdditionalPayment *decimal.Decimal `json:"additional_payment,omitempty"`
	PaymentStatus     string           `json:"payment_status,omitempty"` // PAID|PENDING
}

// BillItemResponse línea de factura (snapshot inmutable).
type BillItemResponse struct {
	ProductName string          `json:"product_name"`
	SKU         string          `json:"sku,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int64           `json:"quantity"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

// BillResponse factura con cliente y, si se pidió detalle, sus líneas.
type BillResponse struct {
	BillRef         string             `json:"bill_ref"`
	Subtotal        decimal.Decimal    `json:"subtotal"`
	DiscountPercent decimal.Decimal    `json:"discount_percent"`
	DiscountAmount  decimal.Decimal    `json:"discount_amount"`
	FinalAmount     decimal.Decimal    `json:"final_amount"`
	AmountPaid      decimal.Decimal    `json:"amount_paid"`
	AmountDue       decimal.Decimal    `json:"amount_due"`
	PaymentStatus   string             `json:"payment_status"`
	DueDate         string             `json:"due_date,omitempty"`
	CreatedAt       string             `json:"created_at"`
	CustomerName    string             `json:"customer_name,omitempty"`
	CustomerPhone   string             `json:"customer_phone,omitempty"`
	Items           []BillItemResponse `json:"items,omitempty"`
}

// ShopResponse metadatos de la tienda en la factura pública.
type ShopResponse struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
}

// PublicInvoiceResponse respuesta de GET /api/bills/invoice/:token (sin auth).
type PublicInvoiceResponse struct {
	Bill   BillResponse `json:"bill"`
	Shop   ShopResponse `json:"shop"`
	PDFURL string       `json:"pdf_url"`
}

// DashboardResponse agregados del día + deuda pendiente + stock bajo.
type DashboardResponse struct {
	Date         string            `json:"date"`
	SalesTotal   decimal.Decimal   `json:"sales_total"`
	BillCount    int64             `json:"bill_count"`
	DueTotal     decimal.Decimal   `json:"due_total"`
	PendingCount int64             `json:"pending_count"`
	LowStock     []ProductResponse `json:"low_stock"`
}
