package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/retail-pos/internal/domain/billing"
	"github.com/tu-usuario/retail-pos/internal/domain/entity"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

// assertEq compara decimales por valor (no por representación).
func assertEq(t *testing.T, expected string, got decimal.Decimal, msg string) {
	t.Helper()
	assert.Truef(t, d(expected).Equal(got), "%s: esperado %s, obtenido %s", msg, expected, got)
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario de referencia: carrito [100.00 x2, 50.00 x1], descuento 10%.
// subtotal=250.00, descuento=25.00, final=225.00.
// ──────────────────────────────────────────────────────────────────────────────

func carrito() []billing.Line {
	return []billing.Line{
		{UnitPrice: d("100.00"), Quantity: 2},
		{UnitPrice: d("50.00"), Quantity: 1},
	}
}

func TestCompute_PagoCompleto(t *testing.T) {
	got := billing.Compute(carrito(), d("10"), entity.PaymentStatusPaid, decimal.Zero)

	assertEq(t, "250.00", got.Subtotal, "subtotal")
	assertEq(t, "25.00", got.DiscountAmount, "descuento")
	assertEq(t, "225.00", got.FinalAmount, "final")
	assertEq(t, "225.00", got.AmountPaid, "pagado")
	assertEq(t, "0", got.AmountDue, "debido")
	assert.Equal(t, entity.PaymentStatusPaid, got.Status)
}

func TestCompute_PagoParcial(t *testing.T) {
	got := billing.Compute(carrito(), d("10"), entity.PaymentStatusPending, d("100.00"))

	assertEq(t, "225.00", got.FinalAmount, "final")
	assertEq(t, "100.00", got.AmountPaid, "pagado")
	assertEq(t, "125.00", got.AmountDue, "debido")
	assert.Equal(t, entity.PaymentStatusPending, got.Status)
}

// Un PENDING cuyo pago cubre exactamente el total se auto-resuelve a PAID.
func TestCompute_PendingCubreTotal_AutoResuelvePaid(t *testing.T) {
	got := billing.Compute(carrito(), d("10"), entity.PaymentStatusPending, d("225.00"))

	assertEq(t, "225.00", got.AmountPaid, "pagado")
	assertEq(t, "0", got.AmountDue, "debido")
	assert.Equal(t, entity.PaymentStatusPaid, got.Status)
}

// Pagar de más se recorta en silencio al total, sin error.
func TestCompute_PendingPagaDeMas_Recorta(t *testing.T) {
	got := billing.Compute(carrito(), d("10"), entity.PaymentStatusPending, d("99999.99"))

	assertEq(t, "225.00", got.AmountPaid, "pagado")
	assertEq(t, "0", got.AmountDue, "debido")
	assert.Equal(t, entity.PaymentStatusPaid, got.Status)
}

// El subtotal es la suma de líneas redondeadas, no el redondeo de la suma.
// Tres líneas de 0.335: redondeo por línea da 0.34*3=1.02; redondear la suma
// (1.005) daría 1.00 o 1.01 según el modo. Debe dar 1.02.
func TestCompute_RedondeoPorLinea(t *testing.T) {
	lines := []billing.Line{
		{UnitPrice: d("0.335"), Quantity: 1},
		{UnitPrice: d("0.335"), Quantity: 1},
		{UnitPrice: d("0.335"), Quantity: 1},
	}
	got := billing.Compute(lines, decimal.Zero, entity.PaymentStatusPaid, decimal.Zero)
	assertEq(t, "1.02", got.Subtotal, "subtotal de líneas redondeadas")
}

// Identidades de totales: final = subtotal - descuento; pagado + debido = final.
func TestCompute_IdentidadesDeTotales(t *testing.T) {
	cases := []struct {
		name     string
		lines    []billing.Line
		discount string
		status   string
		paidNow  string
	}{
		{"sin descuento", carrito(), "0", entity.PaymentStatusPaid, "0"},
		{"descuento 100", carrito(), "100", entity.PaymentStatusPaid, "0"},
		{"parcial chico", carrito(), "10", entity.PaymentStatusPending, "0.01"},
		{"parcial cero", carrito(), "10", entity.PaymentStatusPending, "0"},
		{"precios con centavos", []billing.Line{
			{UnitPrice: d("19.99"), Quantity: 3},
			{UnitPrice: d("7.77"), Quantity: 7},
		}, "12.5", entity.PaymentStatusPending, "33.33"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := billing.Compute(tc.lines, d(tc.discount), tc.status, d(tc.paidNow))

			require.True(t, got.FinalAmount.Equal(got.Subtotal.Sub(got.DiscountAmount)),
				"final != subtotal - descuento")
			require.True(t, got.AmountPaid.Add(got.AmountDue).Equal(got.FinalAmount),
				"pagado + debido != final")
			require.False(t, got.AmountDue.IsNegative(), "debido negativo")
			if got.Status == entity.PaymentStatusPaid {
				require.True(t, got.AmountDue.IsZero(), "PAID con deuda pendiente")
			} else {
				require.True(t, got.AmountDue.GreaterThan(decimal.Zero), "PENDING sin deuda")
			}
		})
	}
}

// Descuento de 100% deja el total en cero y PENDING se resuelve a PAID.
func TestCompute_DescuentoTotal(t *testing.T) {
	got := billing.Compute(carrito(), d("100"), entity.PaymentStatusPending, decimal.Zero)
	assertEq(t, "0", got.FinalAmount, "final")
	assert.Equal(t, entity.PaymentStatusPaid, got.Status)
}

func TestLineTotal_Redondea(t *testing.T) {
	assertEq(t, "0.34", billing.LineTotal(billing.Line{UnitPrice: d("0.335"), Quantity: 1}), "línea")
	assertEq(t, "200.00", billing.LineTotal(billing.Line{UnitPrice: d("100.00"), Quantity: 2}), "línea")
}
