package entity

import "time"

// Tipos y estados de una notificación al cliente.
const (
	NotificationSMS      = "SMS"
	NotificationWhatsApp = "WHATSAPP"
	NotificationReminder = "REMINDER"

	NotificationSent   = "SENT"
	NotificationFailed = "FAILED"
)

// Notification es una entrada append-only del log de envíos (SMS/WhatsApp/
// recordatorio) asociados a una factura. Nunca bloquea ni revierte el checkout.
type Notification struct {
	ID      string
	BillID  string
	Type    string
	Status  string
	Message string
	SentAt  time.Time
}
