package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/retail-pos/internal/application/dto"
	"github.com/tu-usuario/retail-pos/internal/domain"
	"github.com/tu-usuario/retail-pos/internal/domain/entity"
	"github.com/tu-usuario/retail-pos/internal/domain/repository"
	"github.com/tu-usuario/retail-pos/pkg/logger"
)

// SettlementUseCase muta el estado de pago de una factura existente:
// abono adicional o asignación explícita de estado. Tras la mutación regenera
// el PDF (best-effort) e invalida el cache de la factura pública.
type SettlementUseCase struct {
	billRepo     repository.BillRepository
	customerRepo repository.CustomerRepository
	pdf          InvoicePDFGenerator
	cache        InvoiceCache // puede ser nil (cache deshabilitado)
	shop         ShopInfo
	log          *logger.Logger
}

// NewSettlementUseCase construye el caso de uso.
func NewSettlementUseCase(billRepo repository.BillRepository, customerRepo repository.CustomerRepository, pdf InvoicePDFGenerator, cache InvoiceCache, shop ShopInfo, log *logger.Logger) *SettlementUseCase {
	return &SettlementUseCase{
		billRepo:     billRepo,
		customerRepo: customerRepo,
		pdf:          pdf,
		cache:        cache,
		shop:         shop,
		log:          log,
	}
}

// UpdateStatus aplica el settlement sobre la factura identificada por su
// referencia. Dos caminos excluyentes:
//
//   - additional_payment > 0: suma al pagado, resta del debido (piso en 0) y
//     pasa a PAID si el debido llega a 0.
//   - payment_status explícito: se asigna directo; PAID fuerza
//     amount_paid = final_amount y amount_due = 0, descartando el historial de
//     pago parcial. Ese descarte es comportamiento documentado, no un bug.
//
// Escrituras concurrentes sobre la misma factura son last-write-wins.
func (uc *SettlementUseCase) UpdateStatus(ctx context.Context, billRef string, in dto.SettlementRequest) (*dto.BillResponse, error) {
	bill, err := uc.billRepo.GetByRef(billRef)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, fmt.Errorf("factura %s: %w", billRef, domain.ErrNotFound)
	}

	switch {
	case in.AdditionalPayment != nil && in.AdditionalPayment.GreaterThan(decimal.Zero):
		extra := *in.AdditionalPayment
		bill.AmountPaid = bill.AmountPaid.Add(extra)
		bill.AmountDue = bill.AmountDue.Sub(extra)
		if bill.AmountDue.LessThanOrEqual(decimal.Zero) {
			bill.AmountDue = decimal.Zero
			bill.PaymentStatus = entity.PaymentStatusPaid
		}
	case in.PaymentStatus == entity.PaymentStatusPaid:
		bill.PaymentStatus = entity.PaymentStatusPaid
		bill.AmountPaid = bill.FinalAmount
		bill.AmountDue = decimal.Zero
	case in.PaymentStatus == entity.PaymentStatusPending:
		bill.PaymentStatus = entity.PaymentStatusPending
	default:
		return nil, fmt.Errorf("se requiere additional_payment positivo o payment_status PAID|PENDING: %w", domain.ErrInvalidInput)
	}
	bill.UpdatedAt = time.Now()

	if err := uc.billRepo.UpdatePayment(bill); err != nil {
		return nil, err
	}

	customer, err := uc.customerRepo.GetByID(bill.CustomerID)
	if err != nil {
		return nil, err
	}
	items, err := uc.billRepo.GetItems(bill.ID)
	if err != nil {
		return nil, err
	}

	// Regenerar el PDF con el nuevo estado; un fallo aquí no tumba el update.
	if _, err := uc.pdf.Generate(ctx, bill, customer, items, uc.shop); err != nil {
		uc.log.Warn().Err(err).Str("bill_ref", bill.BillRef).Msg("regeneración de PDF falló")
	}

	if uc.cache != nil {
		if err := uc.cache.Invalidate(ctx, bill.PublicToken); err != nil {
			uc.log.Warn().Err(err).Msg("invalidar cache de factura falló")
		}
	}

	resp := toBillResponse(bill, customer, items)
	return &resp, nil
}

// toBillResponse arma la vista de factura. customer e items pueden ser nil.
func toBillResponse(bill *entity.Bill, customer *entity.Customer, items []*entity.BillItem) dto.BillResponse {
	resp := dto.BillResponse{
		BillRef:         bill.BillRef,
		Subtotal:        bill.Subtotal,
		DiscountPercent: bill.DiscountPercent,
		DiscountAmount:  bill.DiscountAmount,
		FinalAmount:     bill.FinalAmount,
		AmountPaid:      bill.AmountPaid,
		AmountDue:       bill.AmountDue,
		PaymentStatus:   bill.PaymentStatus,
		CreatedAt:       bill.CreatedAt.Format(time.RFC3339),
	}
	if bill.DueDate != nil {
		resp.DueDate = bill.DueDate.Format("2006-01-02")
	}
	if customer != nil {
		resp.CustomerName = customer.Name
		resp.CustomerPhone = customer.Phone
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.BillItemResponse{
			ProductName: it.ProductName,
			SKU:         it.SKU,
			Price:       it.Price,
			Quantity:    it.Quantity,
			LineTotal:   it.LineTotal,
		})
	}
	return resp
}
