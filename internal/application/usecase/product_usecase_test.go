package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jortegav/retailos-api/internal/application/dto"
	"github.com/jortegav/retailos-api/internal/application/usecase"
	"github.com/jortegav/retailos-api/internal/domain"
	"github.com/jortegav/retailos-api/internal/domain/entity"
	"github.com/jortegav/retailos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type catalogState struct {
	products  map[string]*entity.Product
	movements []*entity.StockMovement
}

type catalogProductRepo struct {
	s *catalogState
}

func (r *catalogProductRepo) Create(p *entity.Product) error {
	for _, existing := range r.s.products {
		if existing.UserID == p.UserID && strings.EqualFold(existing.Name, p.Name) {
			return domain.ErrDuplicateName
		}
		if existing.SKU == p.SKU {
			return domain.ErrDuplicateSKU
		}
	}
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *catalogProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *catalogProductRepo) GetByUserAndName(userID, name string) (*entity.Product, error) {
	for _, p := range r.s.products {
		if p.UserID == userID && strings.EqualFold(p.Name, name) {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *catalogProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.s.products {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *catalogProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *catalogProductRepo) Update(p *entity.Product) error {
	existing, ok := r.s.products[p.ID]
	if !ok {
		return nil
	}
	stock := existing.Stock
	cp := *p
	cp.Stock = stock
	r.s.products[p.ID] = &cp
	return nil
}

func (r *catalogProductRepo) DecrementStock(id string, qty int) (bool, error) {
	p, ok := r.s.products[id]
	if !ok || p.Stock < qty {
		return false, nil
	}
	p.Stock -= qty
	return true, nil
}

func (r *catalogProductRepo) IncrementStock(id string, qty int) error {
	if p, ok := r.s.products[id]; ok {
		p.Stock += qty
	}
	return nil
}

func (r *catalogProductRepo) ListByUser(userID string, limit, offset int) ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range r.s.products {
		if p.UserID == userID {
			cp := *p
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *catalogProductRepo) Delete(userID, id string) (bool, error) {
	p, ok := r.s.products[id]
	if !ok || p.UserID != userID {
		return false, nil
	}
	delete(r.s.products, id)
	return true, nil
}

type catalogMovementRepo struct {
	s *catalogState
}

func (r *catalogMovementRepo) Create(m *entity.StockMovement) error {
	cm := *m
	r.s.movements = append(r.s.movements, &cm)
	return nil
}

func (r *catalogMovementRepo) ListByUser(userID string, limit, offset int) ([]*entity.StockMovement, error) {
	return nil, nil
}

func (r *catalogMovementRepo) ListByProduct(productID string) ([]*entity.StockMovement, error) {
	return nil, nil
}

// catalogTxRunner pasa repos sobre el mismo estado; el rollback fino se prueba
// en los tests del motor de facturación, acá interesa la unicidad y el ledger.
type catalogTxRunner struct {
	s *catalogState
}

func (r *catalogTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
) error) error {
	return fn(&catalogProductRepo{s: r.s}, &catalogMovementRepo{s: r.s})
}

const (
	tenantA = "user-a"
	tenantB = "user-b"
)

func setup() (*catalogState, *usecase.ProductUseCase) {
	state := &catalogState{products: make(map[string]*entity.Product)}
	uc := usecase.NewProductUseCase(&catalogProductRepo{s: state}, &catalogTxRunner{s: state})
	return state, uc
}

func createReq(name, sku string, stock int) dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Name:           name,
		SKU:            sku,
		CostPrice:      decimal.RequireFromString("50"),
		RetailPrice:    decimal.RequireFromString("80"),
		WholesalePrice: decimal.RequireFromString("65"),
		Stock:          stock,
		MinStock:       2,
		Category:       "general",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateProduct_ConStockInicialRegistraEntradaEnLedger(t *testing.T) {
	state, uc := setup()

	out, err := uc.Create(context.Background(), tenantA, createReq("Widget", "W-001", 10))
	require.NoError(t, err)
	assert.Equal(t, 10, out.Stock)

	require.Len(t, state.movements, 1, "el stock inicial debe quedar en el ledger")
	assert.Equal(t, entity.MovementTypeIn, state.movements[0].Type)
	assert.Equal(t, 10, state.movements[0].Quantity)
	assert.Equal(t, "Initial stock", state.movements[0].Reason)
	assert.Equal(t, out.ID, state.movements[0].ProductID)
}

func TestCreateProduct_StockCeroNoDejaLedger(t *testing.T) {
	state, uc := setup()

	_, err := uc.Create(context.Background(), tenantA, createReq("Widget", "W-001", 0))
	require.NoError(t, err)
	assert.Empty(t, state.movements)
}

func TestCreateProduct_NombreDuplicadoPorTenant(t *testing.T) {
	_, uc := setup()
	ctx := context.Background()

	_, err := uc.Create(ctx, tenantA, createReq("Widget", "W-001", 0))
	require.NoError(t, err)

	// Mismo tenant, mismo nombre con otra capitalización → rechazo
	_, err = uc.Create(ctx, tenantA, createReq("WIDGET", "W-002", 0))
	assert.ErrorIs(t, err, domain.ErrDuplicateName)

	// Otro tenant puede usar el mismo nombre
	_, err = uc.Create(ctx, tenantB, createReq("Widget", "W-003", 0))
	assert.NoError(t, err)
}

func TestCreateProduct_SKUDuplicadoEsGlobal(t *testing.T) {
	_, uc := setup()
	ctx := context.Background()

	_, err := uc.Create(ctx, tenantA, createReq("Widget", "W-001", 0))
	require.NoError(t, err)

	// Incluso desde otro tenant el SKU está tomado
	_, err = uc.Create(ctx, tenantB, createReq("Otro producto", "W-001", 0))
	assert.ErrorIs(t, err, domain.ErrDuplicateSKU)
}

func TestCreateProduct_Validaciones(t *testing.T) {
	_, uc := setup()
	ctx := context.Background()

	_, err := uc.Create(ctx, tenantA, createReq("", "W-001", 0))
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "nombre vacío")

	req := createReq("Widget", "W-001", 0)
	req.Stock = -1
	_, err = uc.Create(ctx, tenantA, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "stock inicial negativo")

	req = createReq("Widget", "W-001", 0)
	req.RetailPrice = decimal.RequireFromString("-5")
	_, err = uc.Create(ctx, tenantA, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "precio negativo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Update / Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateProduct_RenombreRevalidaUnicidad(t *testing.T) {
	_, uc := setup()
	ctx := context.Background()

	a, err := uc.Create(ctx, tenantA, createReq("Widget", "W-001", 0))
	require.NoError(t, err)
	_, err = uc.Create(ctx, tenantA, createReq("Gadget", "G-001", 0))
	require.NoError(t, err)

	nombre := "Gadget"
	_, err = uc.Update(ctx, tenantA, a.ID, dto.UpdateProductRequest{Name: &nombre})
	assert.ErrorIs(t, err, domain.ErrDuplicateName)

	// Cambiar solo la capitalización del propio nombre no es conflicto
	propio := "WIDGET"
	out, err := uc.Update(ctx, tenantA, a.ID, dto.UpdateProductRequest{Name: &propio})
	require.NoError(t, err)
	assert.Equal(t, "Widget", out.Name, "misma clave de unicidad, conserva el nombre")
}

func TestUpdateProduct_NoTocaStock(t *testing.T) {
	state, uc := setup()
	ctx := context.Background()

	created, err := uc.Create(ctx, tenantA, createReq("Widget", "W-001", 10))
	require.NoError(t, err)

	precio := decimal.RequireFromString("99")
	out, err := uc.Update(ctx, tenantA, created.ID, dto.UpdateProductRequest{RetailPrice: &precio})
	require.NoError(t, err)

	assert.True(t, precio.Equal(out.RetailPrice))
	assert.Equal(t, 10, state.products[created.ID].Stock, "el stock solo cambia vía movimientos")
}

func TestUpdateProduct_TenantAjenoNotFound(t *testing.T) {
	_, uc := setup()
	ctx := context.Background()

	created, err := uc.Create(ctx, tenantA, createReq("Widget", "W-001", 0))
	require.NoError(t, err)

	nombre := "Otro"
	_, err = uc.Update(ctx, tenantB, created.ID, dto.UpdateProductRequest{Name: &nombre})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteProduct(t *testing.T) {
	_, uc := setup()
	ctx := context.Background()

	created, err := uc.Create(ctx, tenantA, createReq("Widget", "W-001", 0))
	require.NoError(t, err)

	// Otro tenant no puede borrar
	err = uc.Delete(ctx, tenantB, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, uc.Delete(ctx, tenantA, created.ID))
	err = uc.Delete(ctx, tenantA, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "segundo borrado no encuentra nada")
}
