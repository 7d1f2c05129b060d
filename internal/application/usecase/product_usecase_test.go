package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/retail-pos/internal/application/dto"
	"github.com/tu-usuario/retail-pos/internal/application/usecase"
	"github.com/tu-usuario/retail-pos/internal/domain"
	"github.com/tu-usuario/retail-pos/internal/domain/entity"
)

// memProductRepo fake en memoria de ProductRepository.
type memProductRepo struct {
	byID map[string]*entity.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{byID: map[string]*entity.Product{}}
}

func (r *memProductRepo) Create(p *entity.Product) error {
	for _, existing := range r.byID {
		if existing.SKU == p.SKU {
			return domain.ErrDuplicate
		}
	}
	cp := *p
	r.byID[p.ID] = &cp
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.byID[id], nil
}

func (r *memProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.byID {
		if p.SKU == sku && p.Active {
			return p, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) GetBySKUForUpdate(sku string) (*entity.Product, error) {
	return r.GetBySKU(sku)
}

func (r *memProductRepo) DeductStock(id string, quantity int64) error {
	p := r.byID[id]
	if p == nil {
		return domain.ErrNotFound
	}
	if p.Stock < quantity {
		return domain.ErrInsufficientStock
	}
	p.Stock -= quantity
	return nil
}

func (r *memProductRepo) List(string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.byID {
		if p.Active {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.byID[p.ID] = &cp
	return nil
}

func (r *memProductRepo) Deactivate(id string) error {
	if p := r.byID[id]; p != nil {
		p.Active = false
	}
	return nil
}

func (r *memProductRepo) LowStock(int64, int) ([]*entity.Product, error) { return nil, nil }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ──────────────────────────────────────────────────────────────────────────────

// ean13CheckOK valida el dígito verificador EAN estándar.
func ean13CheckOK(sku string) bool {
	if len(sku) != 13 {
		return false
	}
	sum := 0
	for i := 0; i < 12; i++ {
		d := int(sku[i] - '0')
		if d < 0 || d > 9 {
			return false
		}
		if i%2 == 0 {
			sum += d
		} else {
			sum += d * 3
		}
	}
	return int(sku[12]-'0') == (10-sum%10)%10
}

func TestGenerateSKU_EAN13Valido(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		sku := usecase.GenerateSKU()
		assert.Len(t, sku, 13)
		assert.True(t, ean13CheckOK(sku), "dígito verificador inválido en %s", sku)
		seen[sku] = true
	}
	assert.Greater(t, len(seen), 1, "los SKU generados deben variar")
}

func TestProductCreate_GeneraSKUSiFalta(t *testing.T) {
	repo := newMemProductRepo()
	uc := usecase.NewProductUseCase(repo)

	out, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name:  "Camiseta",
		Price: dec("100"),
		Stock: 10,
	})
	require.NoError(t, err)

	assert.Len(t, out.SKU, 13, "sin SKU de entrada se genera uno EAN-13")
	assert.True(t, ean13CheckOK(out.SKU))
}

func TestProductCreate_RespetaSKUDado(t *testing.T) {
	repo := newMemProductRepo()
	uc := usecase.NewProductUseCase(repo)

	out, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name: "Camiseta", SKU: "CAMISA-ROJA-M", Price: dec("100"), Stock: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, "CAMISA-ROJA-M", out.SKU)
}

func TestProductCreate_SKUDuplicado(t *testing.T) {
	repo := newMemProductRepo()
	uc := usecase.NewProductUseCase(repo)

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name: "A", SKU: "SKU-1", Price: dec("10"),
	})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), dto.CreateProductRequest{
		Name: "B", SKU: "SKU-1", Price: dec("20"),
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductCreate_Validaciones(t *testing.T) {
	repo := newMemProductRepo()
	uc := usecase.NewProductUseCase(repo)

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{Name: " ", Price: dec("10")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(context.Background(), dto.CreateProductRequest{Name: "A", Price: dec("-10")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(context.Background(), dto.CreateProductRequest{Name: "A", Price: dec("10"), Stock: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUpdate_SKUEsInmutable(t *testing.T) {
	repo := newMemProductRepo()
	uc := usecase.NewProductUseCase(repo)

	created, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name: "Camiseta", SKU: "SKU-FIJO", Price: dec("100"), Stock: 5,
	})
	require.NoError(t, err)

	newName := "Camiseta Premium"
	newPrice := dec("150")
	updated, err := uc.Update(context.Background(), created.ID, dto.UpdateProductRequest{
		Name:  &newName,
		Price: &newPrice,
	})
	require.NoError(t, err)

	assert.Equal(t, "SKU-FIJO", updated.SKU, "el SKU no cambia en updates")
	assert.Equal(t, "Camiseta Premium", updated.Name)
	assert.True(t, dec("150").Equal(updated.Price))
}

func TestProductDelete_EsBorradoLogico(t *testing.T) {
	repo := newMemProductRepo()
	uc := usecase.NewProductUseCase(repo)

	created, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name: "Camiseta", SKU: "SKU-1", Price: dec("100"), Stock: 5,
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), created.ID))

	// Desaparece de Get y de Scan, pero la fila sigue existiendo
	_, err = uc.Get(context.Background(), created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Scan(context.Background(), "SKU-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.NotNil(t, repo.byID[created.ID], "borrado lógico: la fila persiste")
	assert.False(t, repo.byID[created.ID].Active)
}

func TestProductScan_ResuelveSKU(t *testing.T) {
	repo := newMemProductRepo()
	uc := usecase.NewProductUseCase(repo)

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name: "Camiseta", SKU: "SKU-1", Price: dec("100"), Stock: 5,
	})
	require.NoError(t, err)

	out, err := uc.Scan(context.Background(), " SKU-1 ")
	require.NoError(t, err)
	assert.Equal(t, "Camiseta", out.Name)

	_, err = uc.Scan(context.Background(), "SKU-FANTASMA")
	require.Error(t, err)
	var skuErr *domain.SKUNotFoundError
	assert.ErrorAs(t, err, &skuErr)
}
