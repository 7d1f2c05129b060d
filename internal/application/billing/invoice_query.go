package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/retail-pos/internal/application/dto"
	"github.com/tu-usuario/retail-pos/internal/domain"
	"github.com/tu-usuario/retail-pos/internal/domain/repository"
	"github.com/tu-usuario/retail-pos/pkg/logger"
)

// publicInvoiceTTL vida del cache de la factura pública. Corto a propósito:
// un settlement invalida, pero el TTL acota cualquier entrada que se escape.
const publicInvoiceTTL = 5 * time.Minute

// InvoiceQueryUseCase consultas de facturas: listado, detalle por referencia
// y la vista pública por token (sin autenticación, con cache Redis opcional).
type InvoiceQueryUseCase struct {
	billRepo     repository.BillRepository
	customerRepo repository.CustomerRepository
	cache        InvoiceCache // puede ser nil (cache deshabilitado)
	shop         ShopInfo
	log          *logger.Logger
}

// NewInvoiceQueryUseCase construye el caso de uso.
func NewInvoiceQueryUseCase(billRepo repository.BillRepository, customerRepo repository.CustomerRepository, cache InvoiceCache, shop ShopInfo, log *logger.Logger) *InvoiceQueryUseCase {
	return &InvoiceQueryUseCase{
		billRepo:     billRepo,
		customerRepo: customerRepo,
		cache:        cache,
		shop:         shop,
		log:          log,
	}
}

// List devuelve todas las facturas con su cliente, recientes primero.
func (uc *InvoiceQueryUseCase) List(_ context.Context) ([]dto.BillResponse, error) {
	rows, err := uc.billRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.BillResponse, 0, len(rows))
	for _, r := range rows {
		resp := toBillResponse(&r.Bill, nil, nil)
		resp.CustomerName = r.CustomerName
		resp.CustomerPhone = r.CustomerPhone
		out = append(out, resp)
	}
	return out, nil
}

// Get devuelve una factura por referencia, con cliente y líneas.
func (uc *InvoiceQueryUseCase) Get(_ context.Context, billRef string) (*dto.BillResponse, error) {
	bill, err := uc.billRepo.GetByRef(billRef)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, fmt.Errorf("factura %s: %w", billRef, domain.ErrNotFound)
	}
	customer, err := uc.customerRepo.GetByID(bill.CustomerID)
	if err != nil {
		return nil, err
	}
	items, err := uc.billRepo.GetItems(bill.ID)
	if err != nil {
		return nil, err
	}
	resp := toBillResponse(bill, customer, items)
	return &resp, nil
}

// Public devuelve la vista pública de la factura por su token opaco.
// Solo el match exacto del token da acceso: no existe otro mapeo
// referencia → token observable desde fuera.
func (uc *InvoiceQueryUseCase) Public(ctx context.Context, token string) (*dto.PublicInvoiceResponse, error) {
	if uc.cache != nil {
		cached, hit, err := uc.cache.Get(ctx, token)
		if err != nil {
			uc.log.Warn().Err(err).Msg("lectura de cache de factura falló")
		} else if hit {
			return cached, nil
		}
	}

	bill, err := uc.billRepo.GetByToken(token)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, fmt.Errorf("factura: %w", domain.ErrNotFound)
	}
	customer, err := uc.customerRepo.GetByID(bill.CustomerID)
	if err != nil {
		return nil, err
	}
	items, err := uc.billRepo.GetItems(bill.ID)
	if err != nil {
		return nil, err
	}

	resp := &dto.PublicInvoiceResponse{
		Bill: toBillResponse(bill, customer, items),
		Shop: dto.ShopResponse{
			Name:    uc.shop.Name,
			Address: uc.shop.Address,
			Phone:   uc.shop.Phone,
			Email:   uc.shop.Email,
		},
		PDFURL: uc.shop.APIBaseURL + "/public/invoices/invoice_" + bill.BillRef + ".pdf",
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, token, resp, publicInvoiceTTL); err != nil {
			uc.log.Warn().Err(err).Msg("escritura de cache de factura falló")
		}
	}
	return resp, nil
}
