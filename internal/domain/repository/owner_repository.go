package repository

import "github.com/tu-usuario/retail-pos/internal/domain/entity"

// OwnerRepository acceso a la cuenta del dueño de la tienda.
type OwnerRepository interface {
	Create(owner *entity.Owner) error
	GetByEmail(email string) (*entity.Owner, error)
	GetByID(id string) (*entity.Owner, error)
}
