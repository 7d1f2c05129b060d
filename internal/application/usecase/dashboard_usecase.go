package usecase

import (
	"context"
	"time"

	"github.com/tu-usuario/retail-pos/internal/application/dto"
	"github.com/tu-usuario/retail-pos/internal/domain/repository"
)

// lowStockThreshold productos con stock igual o inferior aparecen en la
// alerta del dashboard.
const (
	lowStockThreshold = 5
	lowStockLimit     = 10
)

// DashboardUseCase agregados de la tienda para la vista principal del POS:
// ventas del día, deuda pendiente por cobrar y productos con stock bajo.
type DashboardUseCase struct {
	dashboardRepo repository.DashboardRepository
	productRepo   repository.ProductRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(dashboardRepo repository.DashboardRepository, productRepo repository.ProductRepository) *DashboardUseCase {
	return &DashboardUseCase{dashboardRepo: dashboardRepo, productRepo: productRepo}
}

// Summary arma el dashboard para el día dado.
func (uc *DashboardUseCase) Summary(_ context.Context, day time.Time) (*dto.DashboardResponse, error) {
	sales, err := uc.dashboardRepo.DaySummary(day)
	if err != nil {
		return nil, err
	}
	due, err := uc.dashboardRepo.OutstandingDue()
	if err != nil {
		return nil, err
	}
	low, err := uc.productRepo.LowStock(lowStockThreshold, lowStockLimit)
	if err != nil {
		return nil, err
	}

	resp := &dto.DashboardResponse{
		Date:         day.Format("2006-01-02"),
		SalesTotal:   sales.SalesTotal,
		BillCount:    sales.BillCount,
		DueTotal:     due.DueTotal,
		PendingCount: due.PendingCount,
	}
	for _, p := range low {
		resp.LowStock = append(resp.LowStock, toProductResponse(p))
	}
	return resp, nil
}
