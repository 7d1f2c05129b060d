package repository

import "github.com/tu-usuario/retail-pos/internal/domain/entity"

// CustomerRepository acceso a clientes. Las implementaciones aceptan pool o tx.
// Los Get* devuelven (nil, nil) cuando no hay fila.
type CustomerRepository interface {
	// Upsert inserta el cliente o, si el teléfono ya existe, actualiza el
	// nombre (last-write-wins; un nombre vacío no pisa el existente) en un solo
	// statement atómico. Devuelve created=true si la fila es nueva y deja en
	// customer el estado persistido (ID real incluido).
	Upsert(customer *entity.Customer) (created bool, err error)
	GetByID(id string) (*entity.Customer, error)
	GetByPhone(phone string) (*entity.Customer, error)
	List() ([]*entity.Customer, error)
}
