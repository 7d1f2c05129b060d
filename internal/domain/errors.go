package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInsufficientStock  = errors.New("stock insuficiente")
)

// SKUNotFoundError indica que una línea del carrito referencia un SKU que no
// existe (o está inactivo) en inventario. Satisface errors.Is(err, ErrNotFound).
type SKUNotFoundError struct {
	SKU string
}

func (e *SKUNotFoundError) Error() string {
	return fmt.Sprintf("producto con SKU %q no existe en inventario", e.SKU)
}

func (e *SKUNotFoundError) Is(target error) bool { return target == ErrNotFound }

// InsufficientStockError lleva el detalle accionable del fallo de stock:
// producto, disponible y solicitado. Satisface errors.Is(err, ErrInsufficientStock).
type InsufficientStockError struct {
	ProductName string
	SKU         string
	Available   int64
	Requested   int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente para %q: disponible %d, solicitado %d",
		e.ProductName, e.Available, e.Requested)
}

func (e *InsufficientStockError) Is(target error) bool { return target == ErrInsufficientStock }
