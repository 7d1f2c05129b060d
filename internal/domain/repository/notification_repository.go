package repository

import "github.com/tu-usuario/retail-pos/internal/domain/entity"

// NotificationRepository log append-only de envíos. Create nunca debe hacer
// fallar el flujo que lo invoca: el caller ignora el error tras loggearlo.
type NotificationRepository interface {
	Create(n *entity.Notification) error
	ListByBill(billID string) ([]*entity.Notification, error)
}
