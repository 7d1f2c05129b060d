package entity

import "time"

// Customer representa un cliente de la tienda. La identidad es el teléfono
// (10 dígitos, único); el nombre se actualiza en visitas posteriores.
type Customer struct {
	ID        string
	Name      string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
