package billing

import (
	"context"
	"time"

	"github.com/tu-usuario/retail-pos/internal/application/dto"
	"github.com/tu-usuario/retail-pos/internal/domain/entity"
	"github.com/tu-usuario/retail-pos/internal/domain/repository"
)

// CheckoutTxRunner ejecuta fn dentro de una transacción, entregando repos
// atados a esa tx. Si fn retorna error se hace rollback; si no, commit.
// El handle de transacción es explícito: todo I/O del checkout pasa por los
// repos recibidos, nunca por repos atados al pool.
type CheckoutTxRunner interface {
	RunCheckout(ctx context.Context, fn func(
		customerRepo repository.CustomerRepository,
		productRepo repository.ProductRepository,
		billRepo repository.BillRepository,
	) error) error
}

// ShopInfo datos de la tienda y URLs base, inyectados desde configuración.
type ShopInfo struct {
	Name    string
	Address string
	Phone   string
	Email   string
	// APIBaseURL sirve los PDF generados (/public/invoices/...).
	APIBaseURL string
	// AppBaseURL es el frontend; el enlace público es AppBaseURL/invoice/<token>.
	AppBaseURL string
}

// InvoicePDFGenerator genera y persiste el PDF de la factura. Devuelve el
// nombre de archivo (determinístico por referencia; regenerar sobreescribe).
// Se invoca SIEMPRE post-commit y en modo best-effort: un error aquí nunca
// convierte un checkout exitoso en fallo.
type InvoicePDFGenerator interface {
	Generate(ctx context.Context, bill *entity.Bill, customer *entity.Customer, items []*entity.BillItem, shop ShopInfo) (filename string, err error)
}

// Dispatcher envía notificaciones al cliente (SMS + WhatsApp) y registra cada
// intento en el log de notificaciones. Nunca retorna error ni lanza panics:
// los fallos se loggean y se auditan, jamás llegan al caller.
type Dispatcher interface {
	SendInvoice(ctx context.Context, bill *entity.Bill, customer *entity.Customer, message string)
	SendReminder(ctx context.Context, bill *entity.Bill, customer *entity.Customer, message string)
}

// InvoiceCache cache opcional de la factura pública por token.
type InvoiceCache interface {
	Get(ctx context.Context, token string) (*dto.PublicInvoiceResponse, bool, error)
	Set(ctx context.Context, token string, v *dto.PublicInvoiceResponse, ttl time.Duration) error
	Invalidate(ctx context.Context, token string) error
}
