// Package billing contiene la lógica de negocio pura de facturación:
// el cálculo de totales con soporte de pago parcial.
package billing

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/retail-pos/internal/domain/entity"
)

// Line es una línea del carrito para efectos de cálculo.
type Line struct {
	UnitPrice decimal.Decimal
	Quantity  int64
}

// Totals es el resultado del cálculo: los cinco montos y el estado resuelto.
type Totals struct {
	Subtotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	FinalAmount    decimal.Decimal
	AmountPaid     decimal.Decimal
	AmountDue      decimal.Decimal
	Status         string
}

// LineTotal devuelve el total de una línea redondeado a 2 decimales.
func LineTotal(l Line) decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(l.Quantity)).Round(2)
}

// Compute calcula subtotal, descuento, total final y la partición pagado/debido.
//
// El subtotal es la suma de los totales de línea YA redondeados (no el redondeo
// de la suma sin redondear): esto debe conservarse porque la reconciliación
// pagado+debido se hace contra ese subtotal.
//
// En modo PENDING el monto pagado se recorta en silencio a FinalAmount (nunca
// se paga de más) y si lo pagado cubre el total, el estado se resuelve a PAID.
// Nunca retorna error: el caller valida precios y cantidades antes de llamar.
func Compute(lines []Line, discountPct decimal.Decimal, status string, amountPaidNow decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(LineTotal(l))
	}

	discountAmount := subtotal.Mul(discountPct).Div(decimal.NewFromInt(100)).Round(2)
	finalAmount := subtotal.Sub(discountAmount)

	t := Totals{
		Subtotal:       subtotal,
		DiscountAmount: discountAmount,
		FinalAmount:    finalAmount,
		Status:         status,
	}

	if status != entity.PaymentStatusPending {
		t.Status = entity.PaymentStatusPaid
		t.AmountPaid = finalAmount
		t.AmountDue = decimal.Zero
		return t
	}

	paid := amountPaidNow
	if paid.GreaterThan(finalAmount) {
		paid = finalAmount
	}
	due := finalAmount.Sub(paid)
	if due.LessThanOrEqual(decimal.Zero) {
		// Un pago "parcial" que cubre todo el total se resuelve a PAID.
		due = decimal.Zero
		t.Status = entity.PaymentStatusPaid
	}
	t.AmountPaid = paid
	t.AmountDue = due
	return t
}
