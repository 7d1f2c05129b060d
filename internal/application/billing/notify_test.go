package billing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/retail-pos/internal/application/billing"
	"github.com/tu-usuario/retail-pos/internal/domain/entity"
)

func TestFormatAmount_AgrupacionLocal(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "0.00"},
		{"225", "225.00"},
		{"1234.5", "1,234.50"},
		{"100000", "1,00,000.00"}, // agrupación en-IN: lakh
		{"1234567.89", "12,34,567.89"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, billing.FormatAmount(dec(tc.in)), "monto %s", tc.in)
	}
}

func TestBuildInvoiceMessage_Pagada(t *testing.T) {
	bill := &entity.Bill{
		BillRef:       "FACT-20260829-ABC123",
		FinalAmount:   dec("225"),
		AmountPaid:    dec("225"),
		AmountDue:     dec("0"),
		PaymentStatus: entity.PaymentStatusPaid,
	}
	msg := billing.BuildInvoiceMessage("Tienda Test", bill, "http://app.test/invoice/tok")

	assert.Contains(t, msg, "Thank you for shopping at Tienda Test!")
	assert.Contains(t, msg, "Bill ID: FACT-20260829-ABC123")
	assert.Contains(t, msg, "Total Bill: Rs.225.00")
	assert.Contains(t, msg, "Status: PAID")
	assert.Contains(t, msg, "View Invoice: http://app.test/invoice/tok")
	assert.NotContains(t, msg, "Balance Due", "una factura pagada no menciona saldo")
}

func TestBuildInvoiceMessage_Pendiente(t *testing.T) {
	due := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	bill := &entity.Bill{
		BillRef:       "FACT-20260829-ABC123",
		FinalAmount:   dec("225"),
		AmountPaid:    dec("100"),
		AmountDue:     dec("125"),
		PaymentStatus: entity.PaymentStatusPending,
		DueDate:       &due,
	}
	msg := billing.BuildInvoiceMessage("Tienda Test", bill, "")

	assert.Contains(t, msg, "Paid Now:   Rs.100.00")
	assert.Contains(t, msg, "Balance Due: Rs.125.00")
	assert.Contains(t, msg, "Due Date: 2026-09-15")
	assert.Contains(t, msg, "Status: PENDING (Partial Payment)")
	assert.NotContains(t, msg, "View Invoice", "sin URL no se incluye el enlace")
}

func TestBuildReminderMessage(t *testing.T) {
	due := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	bill := &entity.Bill{
		BillRef:   "FACT-20260829-ABC123",
		AmountDue: dec("125"),
		DueDate:   &due,
	}
	msg := billing.BuildReminderMessage("Tienda Test", "Asha", bill)

	assert.Contains(t, msg, "Dear Asha,")
	assert.Contains(t, msg, "Reminder from Tienda Test")
	assert.Contains(t, msg, "Rs.125.00")
	assert.Contains(t, msg, "FACT-20260829-ABC123")
	assert.Contains(t, msg, "by 2026-09-15")
}
