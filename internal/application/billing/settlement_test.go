package billing_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/retail-pos/internal/application/billing"
	"github.com/tu-usuario/retail-pos/internal/application/dto"
	"github.com/tu-usuario/retail-pos/internal/domain"
	"github.com/tu-usuario/retail-pos/internal/domain/entity"
)

// fakeCache registra invalidaciones para verificar que un settlement expulsa
// la vista pública cacheada.
type fakeCache struct {
	store       map[string]*dto.PublicInvoiceResponse
	invalidated []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: map[string]*dto.PublicInvoiceResponse{}}
}

func (c *fakeCache) Get(_ context.Context, token string) (*dto.PublicInvoiceResponse, bool, error) {
	v, ok := c.store[token]
	return v, ok, nil
}

func (c *fakeCache) Set(_ context.Context, token string, v *dto.PublicInvoiceResponse, _ time.Duration) error {
	c.store[token] = v
	return nil
}

func (c *fakeCache) Invalidate(_ context.Context, token string) error {
	delete(c.store, token)
	c.invalidated = append(c.invalidated, token)
	return nil
}

// pendingBill factura PENDING de 225 con 100 pagados, sembrada en el store.
func pendingBill(s *store) *entity.Bill {
	due := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	b := &entity.Bill{
		ID:             "bill-1",
		BillRef:        "FACT-20260829-ABC123",
		CustomerID:     "cust-1",
		Subtotal:       dec("250"),
		DiscountAmount: dec("25"),
		FinalAmount:    dec("225"),
		AmountPaid:     dec("100"),
		AmountDue:      dec("125"),
		PaymentStatus:  entity.PaymentStatusPending,
		DueDate:        &due,
		PublicToken:    "tok-1",
		CreatedAt:      time.Now(),
	}
	s.bills = append(s.bills, b)
	s.customersByPhone["9876543210"] = &entity.Customer{
		ID: "cust-1", Name: "Asha", Phone: "9876543210",
	}
	return b
}

func newSettlementUC(s *store, cache billing.InvoiceCache) (*billing.SettlementUseCase, *fakePDF) {
	pdf := &fakePDF{}
	uc := billing.NewSettlementUseCase(
		&fakeBillRepo{s: s},
		&fakeCustomerRepo{s: s},
		pdf,
		cache,
		testShop,
		testLogger(),
	)
	return uc, pdf
}

func TestSettlement_AbonoParcialReduceSaldo(t *testing.T) {
	s := newStore()
	b := pendingBill(s)
	uc, _ := newSettlementUC(s, nil)

	extra := dec("50")
	out, err := uc.UpdateStatus(context.Background(), b.BillRef,
		dto.SettlementRequest{AdditionalPayment: &extra})
	require.NoError(t, err)

	assert.True(t, dec("150").Equal(out.AmountPaid))
	assert.True(t, dec("75").Equal(out.AmountDue))
	assert.Equal(t, entity.PaymentStatusPending, out.PaymentStatus)
}

func TestSettlement_AbonoQueCancelaPasaAPaid(t *testing.T) {
	s := newStore()
	b := pendingBill(s)
	uc, _ := newSettlementUC(s, nil)

	extra := dec("125")
	out, err := uc.UpdateStatus(context.Background(), b.BillRef,
		dto.SettlementRequest{AdditionalPayment: &extra})
	require.NoError(t, err)

	assert.Equal(t, entity.PaymentStatusPaid, out.PaymentStatus)
	assert.True(t, out.AmountDue.IsZero())
	assert.True(t, dec("225").Equal(out.AmountPaid))
}

// Abono mayor al saldo: el debido hace piso en 0 y la factura queda PAID.
func TestSettlement_AbonoExcesivoHacePisoEnCero(t *testing.T) {
	s := newStore()
	b := pendingBill(s)
	uc, _ := newSettlementUC(s, nil)

	extra := dec("500")
	out, err := uc.UpdateStatus(context.Background(), b.BillRef,
		dto.SettlementRequest{AdditionalPayment: &extra})
	require.NoError(t, err)

	assert.Equal(t, entity.PaymentStatusPaid, out.PaymentStatus)
	assert.True(t, out.AmountDue.IsZero(), "el saldo nunca queda negativo")
}

// PAID explícito fuerza pagado = total y descarta el historial parcial.
func TestSettlement_PaidExplicitoDescartaParcial(t *testing.T) {
	s := newStore()
	b := pendingBill(s)
	uc, _ := newSettlementUC(s, nil)

	out, err := uc.UpdateStatus(context.Background(), b.BillRef,
		dto.SettlementRequest{PaymentStatus: entity.PaymentStatusPaid})
	require.NoError(t, err)

	assert.Equal(t, entity.PaymentStatusPaid, out.PaymentStatus)
	assert.True(t, dec("225").Equal(out.AmountPaid), "pagado se fuerza al total")
	assert.True(t, out.AmountDue.IsZero())

	// Persistido
	persisted := s.bills[0]
	assert.Equal(t, entity.PaymentStatusPaid, persisted.PaymentStatus)
}

func TestSettlement_RegeneraPDFEInvalidaCache(t *testing.T) {
	s := newStore()
	b := pendingBill(s)
	cache := newFakeCache()
	cache.store[b.PublicToken] = &dto.PublicInvoiceResponse{}
	uc, pdf := newSettlementUC(s, cache)

	_, err := uc.UpdateStatus(context.Background(), b.BillRef,
		dto.SettlementRequest{PaymentStatus: entity.PaymentStatusPaid})
	require.NoError(t, err)

	assert.Equal(t, 1, pdf.calls, "el PDF se regenera con el nuevo estado")
	assert.Contains(t, cache.invalidated, b.PublicToken)
	_, hit := cache.store[b.PublicToken]
	assert.False(t, hit, "la vista pública cacheada quedó expulsada")
}

func TestSettlement_FacturaInexistente(t *testing.T) {
	s := newStore()
	uc, _ := newSettlementUC(s, nil)

	extra := dec("50")
	_, err := uc.UpdateStatus(context.Background(), "FACT-NO-EXISTE",
		dto.SettlementRequest{AdditionalPayment: &extra})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSettlement_SinCaminoValido(t *testing.T) {
	s := newStore()
	b := pendingBill(s)
	uc, _ := newSettlementUC(s, nil)

	// Ni abono positivo ni status válido
	zero := decimal.Zero
	_, err := uc.UpdateStatus(context.Background(), b.BillRef,
		dto.SettlementRequest{AdditionalPayment: &zero})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.UpdateStatus(context.Background(), b.BillRef,
		dto.SettlementRequest{PaymentStatus: "CANCELLED"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
