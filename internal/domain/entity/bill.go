package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de pago de una factura.
const (
	PaymentStatusPaid    = "PAID"
	PaymentStatusPending = "PENDING"
)

// Bill representa la cabecera de una factura de venta.
//
// Invariantes: FinalAmount = Subtotal - DiscountAmount y
// AmountPaid + AmountDue = FinalAmount (a 2 decimales).
// PaymentStatus es PAID si y solo si AmountDue == 0.
type Bill struct {
	ID              string
	BillRef         string // referencia legible FACT-YYYYMMDD-XXXXXX, única
	CustomerID      string
	Subtotal        decimal.Decimal
	DiscountPercent decimal.Decimal
	DiscountAmount  decimal.Decimal
	FinalAmount     decimal.Decimal
	AmountPaid      decimal.Decimal
	AmountDue       decimal.Decimal
	PaymentStatus   string
	DueDate         *time.Time // solo con sentido en PENDING
	PublicToken     string     // hex de 64 chars, acceso público a la factura
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// BillItem es la línea de una factura: snapshot inmutable de nombre, SKU y
// precio al momento de la venta. Cambios posteriores del producto no la afectan.
type BillItem struct {
	ID          string
	BillID      string
	ProductName string
	SKU         string // vacío = entrada manual sin inventario
	Price       decimal.Decimal
	Quantity    int64
	LineTotal   decimal.Decimal
}
