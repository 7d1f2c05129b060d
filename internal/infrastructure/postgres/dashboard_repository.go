package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/retail-pos/internal/domain/entity"
	"github.com/tu-usuario/retail-pos/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas agregadas de solo lectura para el dashboard.
type DashboardRepo struct {
	q Querier
}

func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// DaySummary ventas del día calendario dado (monto facturado y número de facturas).
func (r *DashboardRepo) DaySummary(day time.Time) (*repository.BillingSummary, error) {
	query := `
		SELECT COALESCE(SUM(final_amount), 0), COUNT(*)
		FROM bills WHERE created_at::date = $1::date`
	var s repository.BillingSummary
	err := r.q.QueryRow(context.Background(), query, day.Format("2006-01-02")).
		Scan(&s.SalesTotal, &s.BillCount)
	if err != nil {
		return nil, fmt.Errorf("day summary: %w", err)
	}
	return &s, nil
}

// OutstandingDue total debido y número de facturas PENDING.
func (r *DashboardRepo) OutstandingDue() (*repository.BillingSummary, error) {
	query := `
		SELECT COALESCE(SUM(amount_due), 0), COUNT(*)
		FROM bills WHERE payment_status = $1`
	var s repository.BillingSummary
	err := r.q.QueryRow(context.Background(), query, entity.PaymentStatusPending).
		Scan(&s.DueTotal, &s.PendingCount)
	if err != nil {
		return nil, fmt.Errorf("outstanding due: %w", err)
	}
	return &s, nil
}
