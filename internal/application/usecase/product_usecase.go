package usecase

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/retail-pos/internal/application/dto"
	"github.com/tu-usuario/retail-pos/internal/domain"
	"github.com/tu-usuario/retail-pos/internal/domain/entity"
	"github.com/tu-usuario/retail-pos/internal/domain/repository"
)

// ProductUseCase CRUD de productos y el lookup por escaneo de código de barras.
type ProductUseCase struct {
	productRepo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo}
}

// Create crea un producto. Si no llega SKU se genera uno estilo EAN-13
// (13 dígitos con dígito verificador) para imprimir como código de barras.
// SKU duplicado retorna ErrDuplicate (409, distinto de fallo genérico).
func (uc *ProductUseCase) Create(_ context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("name es obligatorio: %w", domain.ErrInvalidInput)
	}
	if in.Price.IsNegative() {
		return nil, fmt.Errorf("price no puede ser negativo: %w", domain.ErrInvalidInput)
	}
	if in.Stock < 0 {
		return nil, fmt.Errorf("stock no puede ser negativo: %w", domain.ErrInvalidInput)
	}

	sku := strings.TrimSpace(in.SKU)
	if sku == "" {
		sku = GenerateSKU()
	}

	now := time.Now()
	product := &entity.Product{
		ID:        uuid.New().String(),
		Name:      name,
		SKU:       sku,
		Price:     in.Price,
		Category:  strings.TrimSpace(in.Category),
		Size:      strings.TrimSpace(in.Size),
		Color:     strings.TrimSpace(in.Color),
		Stock:     in.Stock,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// List lista productos activos, opcionalmente filtrados por búsqueda sobre
// nombre, SKU o categoría.
func (uc *ProductUseCase) List(_ context.Context, search string) ([]dto.ProductResponse, error) {
	products, err := uc.productRepo.List(strings.TrimSpace(search))
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// Get devuelve un producto activo por ID.
func (uc *ProductUseCase) Get(_ context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.Active {
		return nil, fmt.Errorf("producto %s: %w", id, domain.ErrNotFound)
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// Update actualiza los campos enviados. El SKU es inmutable. Cambiar el precio
// NO afecta facturas ya emitidas: las líneas son snapshots.
func (uc *ProductUseCase) Update(_ context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("producto %s: %w", id, domain.ErrNotFound)
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) != "" {
		product.Name = strings.TrimSpace(*in.Name)
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, fmt.Errorf("price no puede ser negativo: %w", domain.ErrInvalidInput)
		}
		product.Price = *in.Price
	}
	if in.Category != nil {
		product.Category = strings.TrimSpace(*in.Category)
	}
	if in.Size != nil {
		product.Size = strings.TrimSpace(*in.Size)
	}
	if in.Color != nil {
		product.Color = strings.TrimSpace(*in.Color)
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, fmt.Errorf("stock no puede ser negativo: %w", domain.ErrInvalidInput)
		}
		product.Stock = *in.Stock
	}
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// Delete borra lógicamente el producto (active=false); las facturas
// históricas que lo referencian por snapshot no se ven afectadas.
func (uc *ProductUseCase) Delete(_ context.Context, id string) error {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return fmt.Errorf("producto %s: %w", id, domain.ErrNotFound)
	}
	return uc.productRepo.Deactivate(id)
}

// Scan resuelve un SKU escaneado a su resumen de producto (flujo del POS).
func (uc *ProductUseCase) Scan(_ context.Context, sku string) (*dto.ProductResponse, error) {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return nil, fmt.Errorf("sku es obligatorio: %w", domain.ErrInvalidInput)
	}
	product, err := uc.productRepo.GetBySKU(sku)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, &domain.SKUNotFoundError{SKU: sku}
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// GenerateSKU genera un SKU de 13 dígitos estilo EAN-13: 9 dígitos del
// timestamp + 3 aleatorios + dígito verificador estándar EAN.
func GenerateSKU() string {
	ts := fmt.Sprintf("%d", time.Now().UnixMilli())
	ts = ts[len(ts)-9:]
	n, err := rand.Int(rand.Reader, big.NewInt(1000))
	if err != nil {
		n = big.NewInt(time.Now().UnixNano() % 1000)
	}
	base := ts + fmt.Sprintf("%03d", n.Int64())
	sum := 0
	for i := 0; i < 12; i++ {
		digit := int(base[i] - '0')
		if i%2 == 0 {
			sum += digit
		} else {
			sum += digit * 3
		}
	}
	check := (10 - sum%10) % 10
	return base + fmt.Sprintf("%d", check)
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:       p.ID,
		Name:     p.Name,
		SKU:      p.SKU,
		Price:    p.Price,
		Category: p.Category,
		Size:     p.Size,
		Color:    p.Color,
		Stock:    p.Stock,
	}
}
