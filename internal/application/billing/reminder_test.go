package billing_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/retail-pos/internal/application/billing"
	"github.com/tu-usuario/retail-pos/internal/domain/entity"
	"github.com/tu-usuario/retail-pos/internal/domain/repository"
)

// overdueBillRepo fake que filtra las facturas del store como lo haría el
// query real: PENDING con due_date anterior al corte.
type overdueBillRepo struct {
	fakeBillRepo
	customers map[string]*entity.Customer // por ID
}

func (r *overdueBillRepo) ListOverdue(asOf time.Time) ([]*repository.BillWithCustomer, error) {
	cutoff := asOf.Format("2006-01-02")
	var out []*repository.BillWithCustomer
	for _, b := range r.s.bills {
		if b.PaymentStatus != entity.PaymentStatusPending || b.DueDate == nil {
			continue
		}
		if b.DueDate.Format("2006-01-02") >= cutoff {
			continue
		}
		row := &repository.BillWithCustomer{Bill: *b}
		if c := r.customers[b.CustomerID]; c != nil {
			row.CustomerName = c.Name
			row.CustomerPhone = c.Phone
		}
		out = append(out, row)
	}
	return out, nil
}

func seedBill(s *store, ref, customerID, status string, due *time.Time, amountDue string) {
	s.bills = append(s.bills, &entity.Bill{
		ID:            "bill-" + ref,
		BillRef:       ref,
		CustomerID:    customerID,
		AmountDue:     dec(amountDue),
		PaymentStatus: status,
		DueDate:       due,
	})
}

func TestReminder_SoloVencidasPendientes(t *testing.T) {
	s := newStore()
	asOf := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	past := asOf.AddDate(0, 0, -3)
	today := asOf
	future := asOf.AddDate(0, 0, 5)

	seedBill(s, "FACT-VENCIDA", "cust-1", entity.PaymentStatusPending, &past, "125")
	seedBill(s, "FACT-HOY", "cust-1", entity.PaymentStatusPending, &today, "50")
	seedBill(s, "FACT-FUTURA", "cust-1", entity.PaymentStatusPending, &future, "80")
	seedBill(s, "FACT-PAGADA", "cust-1", entity.PaymentStatusPaid, &past, "0")

	repo := &overdueBillRepo{
		fakeBillRepo: fakeBillRepo{s: s},
		customers: map[string]*entity.Customer{
			"cust-1": {ID: "cust-1", Name: "Asha", Phone: "9876543210"},
		},
	}
	d := newFakeDispatcher()
	uc := billing.NewReminderUseCase(repo, d, testShop, testLogger())

	sent, err := uc.Run(context.Background(), asOf)
	require.NoError(t, err)

	// Vence al TERMINAR su due_date: la de hoy todavía no cuenta.
	assert.Equal(t, 1, sent)

	msg := <-d.reminders
	assert.Contains(t, msg, "FACT-VENCIDA")
	assert.Contains(t, msg, "Asha")
	assert.Contains(t, msg, "125.00")
}

func TestReminder_SinVencidasNoEnviaNada(t *testing.T) {
	s := newStore()
	repo := &overdueBillRepo{fakeBillRepo: fakeBillRepo{s: s}}
	d := newFakeDispatcher()
	uc := billing.NewReminderUseCase(repo, d, testShop, testLogger())

	sent, err := uc.Run(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Zero(t, sent)
	assert.Empty(t, d.reminders)
}
