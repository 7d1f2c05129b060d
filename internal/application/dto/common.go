package dto

// ErrorResponse cuerpo de error HTTP.
// Details lleva el detalle estructurado cuando existe (ej. fallo de stock).
type ErrorResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}
