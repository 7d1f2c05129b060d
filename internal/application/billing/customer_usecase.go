package billing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/retail-pos/internal/application/dto"
	"github.com/tu-usuario/retail-pos/internal/domain"
	"github.com/tu-usuario/retail-pos/internal/domain/entity"
	"github.com/tu-usuario/retail-pos/internal/domain/repository"
)

// CustomerUseCase resolución y consultas de clientes.
type CustomerUseCase struct {
	customerRepo repository.CustomerRepository
	billRepo     repository.BillRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(customerRepo repository.CustomerRepository, billRepo repository.BillRepository) *CustomerUseCase {
	return &CustomerUseCase{customerRepo: customerRepo, billRepo: billRepo}
}

// LookupOrCreate busca por teléfono y crea si no existe. Si existe y el nombre
// enviado difiere, se actualiza (last-write-wins, sin auditoría). La unicidad
// del teléfono es el respaldo ante inserciones concurrentes.
func (uc *CustomerUseCase) LookupOrCreate(_ context.Context, in dto.CustomerLookupRequest) (*dto.CustomerLookupResponse, error) {
	if !phonePattern.MatchString(in.Phone) {
		return nil, fmt.Errorf("phone debe tener exactamente 10 dígitos: %w", domain.ErrInvalidInput)
	}
	customer := &entity.Customer{
		ID:    uuid.New().String(),
		Name:  strings.TrimSpace(in.Name),
		Phone: in.Phone,
	}
	created, err := uc.customerRepo.Upsert(customer)
	if err != nil {
		return nil, err
	}
	return &dto.CustomerLookupResponse{
		Customer: toCustomerResponse(customer),
		IsNew:    created,
	}, nil
}

// List devuelve todos los clientes.
func (uc *CustomerUseCase) List(_ context.Context) ([]dto.CustomerResponse, error) {
	customers, err := uc.customerRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

// Bills devuelve el historial de facturas de un cliente (recientes primero).
func (uc *CustomerUseCase) Bills(_ context.Context, customerID string) (*dto.CustomerBillsResponse, error) {
	customer, err := uc.customerRepo.GetByID(customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("cliente %s: %w", customerID, domain.ErrNotFound)
	}
	bills, err := uc.billRepo.ListByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	resp := &dto.CustomerBillsResponse{Customer: toCustomerResponse(customer)}
	for _, b := range bills {
		resp.Bills = append(resp.Bills, toBillResponse(b, customer, nil))
	}
	return resp, nil
}

func toCustomerResponse(c *entity.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}
