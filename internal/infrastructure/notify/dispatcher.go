package notify

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/retail-pos/internal/application/billing"
	"github.com/tu-usuario/retail-pos/internal/domain/entity"
	"github.com/tu-usuario/retail-pos/internal/domain/repository"
	"github.com/tu-usuario/retail-pos/pkg/logger"
)

var _ billing.Dispatcher = (*Dispatcher)(nil)

// Dispatcher envía por todos los canales habilitados y audita cada intento en
// el log de notificaciones. Best-effort integral: ningún fallo de canal ni de
// auditoría llega al caller.
type Dispatcher struct {
	sms       *Fast2SMSClient
	whatsapp  *WhatsAppClient
	notifRepo repository.NotificationRepository
	log       *logger.Logger
}

func NewDispatcher(
	sms *Fast2SMSClient,
	whatsapp *WhatsAppClient,
	notifRepo repository.NotificationRepository,
	log *logger.Logger,
) *Dispatcher {
	return &Dispatcher{sms: sms, whatsapp: whatsapp, notifRepo: notifRepo, log: log}
}

// SendInvoice envía el resumen de la factura por SMS y WhatsApp.
func (d *Dispatcher) SendInvoice(ctx context.Context, bill *entity.Bill, customer *entity.Customer, message string) {
	d.dispatch(ctx, bill, customer, message, entity.NotificationSMS, entity.NotificationWhatsApp)
}

// SendReminder envía el recordatorio de saldo vencido por SMS y WhatsApp.
// El intento por SMS se audita con tipo REMINDER para distinguirlo en el
// historial.
func (d *Dispatcher) SendReminder(ctx context.Context, bill *entity.Bill, customer *entity.Customer, message string) {
	d.dispatch(ctx, bill, customer, message, entity.NotificationReminder, entity.NotificationWhatsApp)
}

func (d *Dispatcher) dispatch(ctx context.Context, bill *entity.Bill, customer *entity.Customer, message string, types ...string) {
	defer func() {
		if r := recover(); r != nil {
			d.log.Error().Any("panic", r).Str("bill_ref", bill.BillRef).
				Msg("pánico en dispatcher de notificaciones")
		}
	}()

	for _, t := range types {
		var err error
		switch t {
		case entity.NotificationSMS, entity.NotificationReminder:
			err = d.sms.Send(ctx, customer.Phone, message)
		case entity.NotificationWhatsApp:
			err = d.whatsapp.Send(ctx, customer.Phone, message)
		}

		status := entity.NotificationSent
		if err != nil {
			status = entity.NotificationFailed
			d.log.Warn().Err(err).Str("bill_ref", bill.BillRef).Str("type", t).
				Msg("fallo al enviar notificación")
		} else {
			d.log.Info().Str("bill_ref", bill.BillRef).Str("type", t).
				Msg("notificación enviada")
		}

		d.record(bill.ID, t, status, message)
	}
}

// record inserta la entrada de auditoría; si falla, solo se loggea.
func (d *Dispatcher) record(billID, typ, status, message string) {
	n := &entity.Notification{
		ID:      uuid.NewString(),
		BillID:  billID,
		Type:    typ,
		Status:  status,
		Message: message,
		SentAt:  time.Now(),
	}
	if err := d.notifRepo.Create(n); err != nil {
		d.log.Warn().Err(err).Str("bill_id", billID).
			Msg("fallo al registrar notificación")
	}
}
