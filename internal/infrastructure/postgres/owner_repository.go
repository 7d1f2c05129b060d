package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/retail-pos/internal/domain"
	"github.com/tu-usuario/retail-pos/internal/domain/entity"
	"github.com/tu-usuario/retail-pos/internal/domain/repository"
)

var _ repository.OwnerRepository = (*OwnerRepo)(nil)

// OwnerRepo implementación de OwnerRepository.
type OwnerRepo struct {
	q Querier
}

func NewOwnerRepository(q Querier) *OwnerRepo {
	return &OwnerRepo{q: q}
}

// Create persiste la cuenta. Email duplicado retorna ErrEmailAlreadyExists.
func (r *OwnerRepo) Create(owner *entity.Owner) error {
	query := `
		INSERT INTO owners (id, name, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		owner.ID, owner.Name, owner.Email, owner.PasswordHash,
		owner.CreatedAt, owner.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert owner: %w", err)
	}
	return nil
}

func (r *OwnerRepo) scanOne(row pgx.Row) (*entity.Owner, error) {
	var o entity.Owner
	err := row.Scan(&o.ID, &o.Name, &o.Email, &o.PasswordHash, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get owner: %w", err)
	}
	return &o, nil
}

// GetByEmail obtiene la cuenta por email (ya normalizado a minúsculas).
func (r *OwnerRepo) GetByEmail(email string) (*entity.Owner, error) {
	return r.scanOne(r.q.QueryRow(context.Background(),
		`SELECT id, name, email, password_hash, created_at, updated_at FROM owners WHERE email = $1`,
		email))
}

func (r *OwnerRepo) GetByID(id string) (*entity.Owner, error) {
	return r.scanOne(r.q.QueryRow(context.Background(),
		`SELECT id, name, email, password_hash, created_at, updated_at FROM owners WHERE id = $1`,
		id))
}
