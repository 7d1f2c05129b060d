package billing

import (
	"context"
	"time"

	"github.com/tu-usuario/retail-pos/internal/domain/entity"
	"github.com/tu-usuario/retail-pos/internal/domain/repository"
	"github.com/tu-usuario/retail-pos/pkg/logger"
)

// ReminderUseCase envía recordatorios por facturas PENDING vencidas.
// Es deliberadamente sin estado: lo invoca un scheduler externo (cron del
// sistema, un Job de k8s) y recibe el "hoy" como parámetro, así el mismo
// binario sirve para reprocesar fechas pasadas.
type ReminderUseCase struct {
	billRepo   repository.BillRepository
	dispatcher Dispatcher
	shop       ShopInfo
	log        *logger.Logger
}

// NewReminderUseCase construye el caso de uso.
func NewReminderUseCase(billRepo repository.BillRepository, dispatcher Dispatcher, shop ShopInfo, log *logger.Logger) *ReminderUseCase {
	return &ReminderUseCase{billRepo: billRepo, dispatcher: dispatcher, shop: shop, log: log}
}

// Run busca facturas con status=PENDING y due_date < asOf y despacha un
// recordatorio por cada una. Devuelve cuántos recordatorios se despacharon.
// Los envíos son best-effort: cada intento queda en el log de notificaciones.
func (uc *ReminderUseCase) Run(ctx context.Context, asOf time.Time) (int, error) {
	overdue, err := uc.billRepo.ListOverdue(asOf)
	if err != nil {
		return 0, err
	}
	if len(overdue) == 0 {
		uc.log.Info().Msg("sin facturas pendientes vencidas")
		return 0, nil
	}

	uc.log.Info().Int("count", len(overdue)).Msg("enviando recordatorios de pago")
	sent := 0
	for _, row := range overdue {
		bill := row.Bill
		customer := &entity.Customer{
			ID:    bill.CustomerID,
			Name:  row.CustomerName,
			Phone: row.CustomerPhone,
		}
		msg := BuildReminderMessage(uc.shop.Name, customer.Name, &bill)
		uc.dispatcher.SendReminder(ctx, &bill, customer, msg)
		uc.log.Info().
			Str("bill_ref", bill.BillRef).
			Str("customer", customer.Name).
			Msg("recordatorio despachado")
		sent++
	}
	return sent, nil
}
