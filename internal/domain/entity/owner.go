package entity

import "time"

// Owner es el dueño de la tienda, único usuario autenticado del sistema.
type Owner struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
