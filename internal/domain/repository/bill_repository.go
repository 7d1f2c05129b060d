package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/retail-pos/internal/domain/entity"
)

// BillWithCustomer cabecera de factura con los datos del cliente ya unidos
// (para listados y para el job de recordatorios, evita el N+1).
type BillWithCustomer struct {
	Bill          entity.Bill
	CustomerName  string
	CustomerPhone string
}

// BillRepository acceso a facturas y sus líneas. Las implementaciones aceptan
// pool o tx. Los Get* devuelven (nil, nil) cuando no hay fila.
type BillRepository interface {
	Create(bill *entity.Bill) error
	CreateItem(item *entity.BillItem) error
	GetByRef(billRef string) (*entity.Bill, error)
	GetByToken(publicToken string) (*entity.Bill, error)
	GetItems(billID string) ([]*entity.BillItem, error)
	List() ([]*BillWithCustomer, error)
	ListByCustomer(customerID string) ([]*entity.Bill, error)
	// ListOverdue facturas PENDING con due_date anterior a asOf (solo fecha).
	ListOverdue(asOf time.Time) ([]*BillWithCustomer, error)
	// UpdatePayment persiste únicamente los campos de pago de la factura
	// (amount_paid, amount_due, payment_status, updated_at).
	UpdatePayment(bill *entity.Bill) error
}

// BillingSummary agregados del dashboard de la tienda.
type BillingSummary struct {
	SalesTotal   decimal.Decimal
	BillCount    int64
	DueTotal     decimal.Decimal
	PendingCount int64
}

// DashboardRepository consultas de solo lectura para el dashboard.
type DashboardRepository interface {
	// DaySummary ventas (monto y número de facturas) del día calendario dado.
	DaySummary(day time.Time) (*BillingSummary, error)
	// OutstandingDue total debido y número de facturas PENDING.
	OutstandingDue() (*BillingSummary, error)
}
