package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/retail-pos/internal/domain/entity"
	"github.com/tu-usuario/retail-pos/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Upsert inserta o actualiza por teléfono en un solo statement. El CASE evita
// que un nombre vacío pise el existente; xmax = 0 distingue inserción de
// actualización. Atómico: dos checkouts concurrentes con un teléfono nuevo
// nunca duplican fila ni abortan la transacción del perdedor.
func (r *CustomerRepo) Upsert(customer *entity.Customer) (bool, error) {
	query := `
		INSERT INTO customers (id, name, phone, created_at, updated_at)
		VALUES ($1, $2, $3, now(), now())
		ON CONFLICT (phone) DO UPDATE
		SET name = CASE WHEN EXCLUDED.name <> '' THEN EXCLUDED.name ELSE customers.name END,
		    updated_at = now()
		RETURNING id, name, created_at, updated_at, (xmax = 0) AS inserted`
	var inserted bool
	err := r.q.QueryRow(context.Background(), query,
		customer.ID, customer.Name, customer.Phone,
	).Scan(&customer.ID, &customer.Name, &customer.CreatedAt, &customer.UpdatedAt, &inserted)
	if err != nil {
		return false, fmt.Errorf("upsert customer: %w", err)
	}
	return inserted, nil
}

// GetByID obtiene un cliente por ID.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	query := `
		SELECT id, name, phone, created_at, updated_at
		FROM customers WHERE id = $1`
	var c entity.Customer
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &c.Phone, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// GetByPhone obtiene un cliente por teléfono (identidad de negocio).
func (r *CustomerRepo) GetByPhone(phone string) (*entity.Customer, error) {
	query := `
		SELECT id, name, phone, created_at, updated_at
		FROM customers WHERE phone = $1`
	var c entity.Customer
	err := r.q.QueryRow(context.Background(), query, phone).Scan(
		&c.ID, &c.Name, &c.Phone, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer by phone: %w", err)
	}
	return &c, nil
}

// List lista clientes, recientes primero.
func (r *CustomerRepo) List() ([]*entity.Customer, error) {
	query := `
		SELECT id, name, phone, created_at, updated_at
		FROM customers ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
