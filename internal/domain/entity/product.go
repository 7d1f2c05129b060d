package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario. SKU es único e inmutable y
// doble como valor de código de barras. Stock solo lo muta la deducción del
// checkout; Active=false es borrado lógico.
type Product struct {
	ID        string
	Name      string
	SKU       string
	Price     decimal.Decimal
	Category  string
	Size      string
	Color     string
	Stock     int64
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
