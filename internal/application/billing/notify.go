package billing

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tu-usuario/retail-pos/internal/domain/entity"
)

// inr formatea montos con agrupación de dígitos en-IN (1,00,000.00) para los
// mensajes al cliente.
var inr = message.NewPrinter(language.MustParse("en-IN"))

// FormatAmount devuelve el monto con 2 decimales y agrupación local.
func FormatAmount(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return inr.Sprintf("%.2f", f)
}

// BuildInvoiceMessage arma el texto de SMS/WhatsApp que resume la factura.
// El texto al cliente va en inglés (es el idioma de la tienda).
func BuildInvoiceMessage(shopName string, bill *entity.Bill, invoiceURL string) string {
	var b strings.Builder
	b.WriteString("Thank you for shopping at " + shopName + "!\n")
	b.WriteString("Bill ID: " + bill.BillRef + "\n")
	b.WriteString("Total Bill: Rs." + FormatAmount(bill.FinalAmount) + "\n")
	b.WriteString("Paid Now:   Rs." + FormatAmount(bill.AmountPaid) + "\n")
	if bill.PaymentStatus == entity.PaymentStatusPending {
		b.WriteString("Balance Due: Rs." + FormatAmount(bill.AmountDue) + "\n")
		if bill.DueDate != nil {
			b.WriteString("Due Date: " + bill.DueDate.Format("2006-01-02") + "\n")
		}
		b.WriteString("Status: PENDING (Partial Payment)")
	} else {
		b.WriteString("Status: PAID")
	}
	if invoiceURL != "" {
		b.WriteString("\nView Invoice: " + invoiceURL)
	}
	return b.String()
}

// BuildReminderMessage arma el texto del recordatorio de saldo vencido.
func BuildReminderMessage(shopName, customerName string, bill *entity.Bill) string {
	var b strings.Builder
	b.WriteString("Dear " + customerName + ",\n")
	b.WriteString("Reminder from " + shopName + ": Your balance of Rs." + FormatAmount(bill.AmountDue))
	b.WriteString(" (Bill: " + bill.BillRef + ") is due")
	if bill.DueDate != nil {
		b.WriteString(" by " + bill.DueDate.Format("2006-01-02"))
	}
	b.WriteString(".\nPlease visit us or contact us to clear the balance. Thank you!")
	return b.String()
}
