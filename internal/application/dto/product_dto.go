package dto

import "github.com/shopspring/decimal"

// CreateProductRequest body para POST /api/products.
// SKU vacío = se genera uno estilo EAN-13 con dígito verificador.
type CreateProductRequest struct {
	Name     string          `json:"name"`
	SKU      string          `json:"sku,omitempty"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category,omitempty"`
	Size     string          `json:"size,omitempty"`
	Color    string          `json:"color,omitempty"`
	Stock    int64           `json:"stock"`
}

// UpdateProductRequest body para PUT /api/products/:id. Campos nil = sin cambio.
// El SKU es inmutable y no se acepta aquí.
type UpdateProductRequest struct {
	Name     *string          `json:"name,omitempty"`
	Price    *decimal.Decimal `json:"price,omitempty"`
	Category *string          `json:"category,omitempty"`
	Size     *string          `json:"size,omitempty"`
	Color    *string          `json:"color,omitempty"`
	Stock    *int64           `json:"stock,omitempty"`
}

// ProductResponse producto en respuestas.
type ProductResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	SKU      string          `json:"sku"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category,omitempty"`
	Size     string          `json:"size,omitempty"`
	Color    string          `json:"color,omitempty"`
	Stock    int64           `json:"stock"`
}

// ScanRequest body para POST /api/products/scan (lector de código de barras).
type ScanRequest struct {
	SKU string `json:"sku"`
}
