package billing

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/retail-pos/internal/application/dto"
	"github.com/tu-usuario/retail-pos/internal/domain"
	domainbilling "github.com/tu-usuario/retail-pos/internal/domain/billing"
	"github.com/tu-usuario/retail-pos/internal/domain/entity"
	"github.com/tu-usuario/retail-pos/internal/domain/repository"
	"github.com/tu-usuario/retail-pos/pkg/billref"
	"github.com/tu-usuario/retail-pos/pkg/logger"
)

var phonePattern = regexp.MustCompile(`^\d{10}$`)

// CheckoutUseCase crea una factura: resuelve el cliente, valida y bloquea
// stock por SKU, calcula totales con pago parcial y persiste cabecera, líneas
// y deducciones en una sola transacción. PDF y notificaciones van post-commit.
type CheckoutUseCase struct {
	txRunner   CheckoutTxRunner
	pdf        InvoicePDFGenerator
	dispatcher Dispatcher
	shop       ShopInfo
	log        *logger.Logger
}

// NewCheckoutUseCase construye el caso de uso.
func NewCheckoutUseCase(txRunner CheckoutTxRunner, pdf InvoicePDFGenerator, dispatcher Dispatcher, shop ShopInfo, log *logger.Logger) *CheckoutUseCase {
	return &CheckoutUseCase{
		txRunner:   txRunner,
		pdf:        pdf,
		dispatcher: dispatcher,
		shop:       shop,
		log:        log,
	}
}

// deduction línea validada y bloqueada, en cola para descontar antes del commit.
type deduction struct {
	product  *entity.Product
	quantity int64
}

// Checkout ejecuta el checkout completo. Cualquier fallo de validación de
// stock (SKU inexistente o stock insuficiente) aborta TODA la operación:
// sin factura huérfana, sin líneas huérfanas, sin deducción parcial.
func (uc *CheckoutUseCase) Checkout(ctx context.Context, in dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	if err := validateCheckout(&in); err != nil {
		return nil, err
	}

	var dueDate *time.Time
	if in.PaymentStatus == entity.PaymentStatusPending && in.DueDate != "" {
		parsed, err := time.Parse("2006-01-02", in.DueDate)
		if err != nil {
			return nil, fmt.Errorf("due_date debe ser YYYY-MM-DD: %w", domain.ErrInvalidInput)
		}
		dueDate = &parsed
	}

	amountPaidNow := decimal.Zero
	if in.AmountPaid != nil {
		amountPaidNow = *in.AmountPaid
	}

	now := time.Now()
	var (
		bill       *entity.Bill
		items      []*entity.BillItem
		customer   *entity.Customer
		isNew      bool
		deductions []deduction
	)

	err := uc.txRunner.RunCheckout(ctx, func(
		customerRepo repository.CustomerRepository,
		productRepo repository.ProductRepository,
		billRepo repository.BillRepository,
	) error {
		// 1) Cliente: upsert atómico por teléfono dentro de la misma tx.
		customer = &entity.Customer{
			ID:    uuid.New().String(),
			Name:  strings.TrimSpace(in.CustomerName),
			Phone: in.CustomerPhone,
		}
		var err error
		isNew, err = customerRepo.Upsert(customer)
		if err != nil {
			return err
		}

		// 2) Por cada línea con SKU: lookup con FOR UPDATE y validación de
		// stock. El lock se toma en el lookup (no después) para cerrar la
		// ventana entre chequeo y deducción. Nada se escribe todavía: todas
		// las líneas deben validar antes del primer write.
		deductions = deductions[:0]
		for _, item := range in.Items {
			sku := strings.TrimSpace(item.SKU)
			if sku == "" {
				continue // entrada manual: suma al total, no toca inventario
			}
			product, err := productRepo.GetBySKUForUpdate(sku)
			if err != nil {
				return err
			}
			if product == nil {
				return &domain.SKUNotFoundError{SKU: sku}
			}
			if product.Stock < item.Quantity {
				return &domain.InsufficientStockError{
					ProductName: product.Name,
					SKU:         product.SKU,
					Available:   product.Stock,
					Requested:   item.Quantity,
				}
			}
			deductions = append(deductions, deduction{product: product, quantity: item.Quantity})
		}

		// 3) Totales con reconciliación de pago parcial.
		lines := make([]domainbilling.Line, len(in.Items))
		for i, item := range in.Items {
			lines[i] = domainbilling.Line{UnitPrice: item.Price, Quantity: item.Quantity}
		}
		totals := domainbilling.Compute(lines, in.DiscountPercent, in.PaymentStatus, amountPaidNow)

		// 4) Cabecera: referencia legible + token público de alta entropía.
		bill = &entity.Bill{
			ID:              uuid.New().String(),
			BillRef:         billref.NewBillRef(now),
			CustomerID:      customer.ID,
			Subtotal:        totals.Subtotal,
			DiscountPercent: in.DiscountPercent,
			DiscountAmount:  totals.DiscountAmount,
			FinalAmount:     totals.FinalAmount,
			AmountPaid:      totals.AmountPaid,
			AmountDue:       totals.AmountDue,
			PaymentStatus:   totals.Status,
			PublicToken:     billref.NewPublicToken(),
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if totals.Status == entity.PaymentStatusPending {
			bill.DueDate = dueDate
		}
		if err := billRepo.Create(bill); err != nil {
			return err
		}

		// 5) Líneas como snapshots inmutables (nombre y precio copiados).
		items = items[:0]
		for _, item := range in.Items {
			bi := &entity.BillItem{
				ID:          uuid.New().String(),
				BillID:      bill.ID,
				ProductName: strings.TrimSpace(item.ProductName),
				SKU:         strings.TrimSpace(item.SKU),
				Price:       item.Price,
				Quantity:    item.Quantity,
				LineTotal:   domainbilling.LineTotal(domainbilling.Line{UnitPrice: item.Price, Quantity: item.Quantity}),
			}
			if err := billRepo.CreateItem(bi); err != nil {
				return err
			}
			items = append(items, bi)
		}

		// 6) Deducciones en cola: UPDATE atómico con guarda stock >= qty.
		for _, d := range deductions {
			if err := productRepo.DeductStock(d.product.ID, d.quantity); err != nil {
				return err
			}
			uc.log.Info().
				Str("product", d.product.Name).
				Str("sku", d.product.SKU).
				Int64("stock_before", d.product.Stock).
				Int64("stock_after", d.product.Stock-d.quantity).
				Int64("sold", d.quantity).
				Msg("stock descontado")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Post-commit, best-effort: el checkout ya es exitoso pase lo que pase aquí.
	pdfURL := ""
	if filename, err := uc.pdf.Generate(ctx, bill, customer, items, uc.shop); err != nil {
		uc.log.Warn().Err(err).Str("bill_ref", bill.BillRef).Msg("generación de PDF falló; la factura sigue válida")
	} else {
		pdfURL = uc.shop.APIBaseURL + "/public/invoices/" + filename
	}

	invoiceURL := uc.shop.AppBaseURL + "/invoice/" + bill.PublicToken
	message := BuildInvoiceMessage(uc.shop.Name, bill, invoiceURL)
	go uc.dispatcher.SendInvoice(context.WithoutCancel(ctx), bill, customer, message)

	resp := &dto.CheckoutResponse{
		BillRef:       bill.BillRef,
		InvoiceURL:    invoiceURL,
		PDFURL:        pdfURL,
		Subtotal:      bill.Subtotal,
		DiscountAmt:   bill.DiscountAmount,
		FinalAmount:   bill.FinalAmount,
		AmountPaid:    bill.AmountPaid,
		AmountDue:     bill.AmountDue,
		PaymentStatus: bill.PaymentStatus,
		Customer: dto.CheckoutCustomerResponse{
			Name:  customer.Name,
			Phone: customer.Phone,
			IsNew: isNew,
		},
	}
	for _, d := range deductions {
		resp.StockUpdated = append(resp.StockUpdated, dto.StockLineResponse{
			ProductName: d.product.Name,
			SKU:         d.product.SKU,
			Sold:        d.quantity,
			StockBefore: d.product.Stock,
			StockAfter:  d.product.Stock - d.quantity,
		})
	}
	return resp, nil
}

// validateCheckout rechaza entradas malformadas antes de abrir transacción
// alguna y normaliza los defaults (status PAID, descuento 0).
func validateCheckout(in *dto.CheckoutRequest) error {
	if strings.TrimSpace(in.CustomerName) == "" {
		return fmt.Errorf("customer_name es obligatorio: %w", domain.ErrInvalidInput)
	}
	if !phonePattern.MatchString(in.CustomerPhone) {
		return fmt.Errorf("customer_phone debe tener exactamente 10 dígitos: %w", domain.ErrInvalidInput)
	}
	if len(in.Items) == 0 {
		return fmt.Errorf("el carrito necesita al menos un item: %w", domain.ErrInvalidInput)
	}
	for i, item := range in.Items {
		if strings.TrimSpace(item.ProductName) == "" {
			return fmt.Errorf("item %d: product_name es obligatorio: %w", i+1, domain.ErrInvalidInput)
		}
		if item.Price.IsNegative() {
			return fmt.Errorf("item %d: price no puede ser negativo: %w", i+1, domain.ErrInvalidInput)
		}
		if item.Quantity < 1 {
			return fmt.Errorf("item %d: quantity debe ser >= 1: %w", i+1, domain.ErrInvalidInput)
		}
	}
	if in.DiscountPercent.IsNegative() || in.DiscountPercent.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("discount_percent debe estar entre 0 y 100: %w", domain.ErrInvalidInput)
	}
	switch in.PaymentStatus {
	case "":
		in.PaymentStatus = entity.PaymentStatusPaid
	case entity.PaymentStatusPaid, entity.PaymentStatusPending:
	default:
		return fmt.Errorf("payment_status debe ser PAID o PENDING: %w", domain.ErrInvalidInput)
	}
	if in.PaymentStatus == entity.PaymentStatusPending {
		if in.AmountPaid == nil {
			return fmt.Errorf("amount_paid es obligatorio con payment_status PENDING: %w", domain.ErrInvalidInput)
		}
		if in.AmountPaid.IsNegative() {
			return fmt.Errorf("amount_paid no puede ser negativo: %w", domain.ErrInvalidInput)
		}
	}
	return nil
}
