package repository

import "github.com/tu-usuario/retail-pos/internal/domain/entity"

// ProductRepository acceso a productos/inventario. Las implementaciones
// aceptan pool o tx. Los Get* devuelven (nil, nil) cuando no hay fila.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetBySKU busca por SKU solo entre productos activos.
	GetBySKU(sku string) (*entity.Product, error)
	// GetBySKUForUpdate busca por SKU (activos) y bloquea la fila con
	// SELECT ... FOR UPDATE. El lock vive hasta el fin de la transacción:
	// solo tiene sentido llamarlo con un repo atado a una tx.
	GetBySKUForUpdate(sku string) (*entity.Product, error)
	// DeductStock aplica stock = stock - quantity de forma atómica con guarda
	// stock >= quantity en el propio UPDATE. Retorna ErrInsufficientStock si
	// la guarda no se cumple (no debería ocurrir bajo el lock del checkout).
	DeductStock(id string, quantity int64) error
	List(search string) ([]*entity.Product, error)
	Update(product *entity.Product) error
	// Deactivate marca el producto como inactivo (borrado lógico).
	Deactivate(id string) error
	// LowStock productos activos con stock <= threshold, ordenados por stock.
	LowStock(threshold int64, limit int) ([]*entity.Product, error)
}
