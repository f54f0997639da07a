package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jortegav/retailos-api/internal/application/dto"
	"github.com/jortegav/retailos-api/internal/application/inventory"
	"github.com/jortegav/retailos-api/internal/domain"
	"github.com/jortegav/retailos-api/internal/domain/entity"
	"github.com/jortegav/retailos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria. El runner trabaja sobre una copia y publica solo en commit,
// así los tests observan el rollback real: un fallo no deja rastros.
// ──────────────────────────────────────────────────────────────────────────────

type memState struct {
	products  map[string]*entity.Product
	movements []*entity.StockMovement
}

func (s *memState) clone() *memState {
	c := &memState{products: make(map[string]*entity.Product)}
	for id, p := range s.products {
		cp := *p
		c.products[id] = &cp
	}
	for _, m := range s.movements {
		cm := *m
		c.movements = append(c.movements, &cm)
	}
	return c
}

type memTxRunner struct {
	state *memState
}

func (r *memTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
) error) error {
	staged := r.state.clone()
	if err := fn(&memProductRepo{s: staged}, &memMovementRepo{s: staged}); err != nil {
		return err
	}
	*r.state = *staged
	return nil
}

type memProductRepo struct {
	s *memState
}

func (r *memProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) GetByUserAndName(userID, name string) (*entity.Product, error) {
	return nil, nil
}

func (r *memProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	return nil, nil
}

func (r *memProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *memProductRepo) Update(p *entity.Product) error {
	return nil
}

func (r *memProductRepo) DecrementStock(id string, qty int) (bool, error) {
	p, ok := r.s.products[id]
	if !ok || p.Stock < qty {
		return false, nil
	}
	p.Stock -= qty
	return true, nil
}

func (r *memProductRepo) IncrementStock(id string, qty int) error {
	if p, ok := r.s.products[id]; ok {
		p.Stock += qty
	}
	return nil
}

func (r *memProductRepo) ListByUser(userID string, limit, offset int) ([]*entity.Product, error) {
	return nil, nil
}

func (r *memProductRepo) Delete(userID, id string) (bool, error) {
	return false, nil
}

type memMovementRepo struct {
	s *memState
}

func (r *memMovementRepo) Create(m *entity.StockMovement) error {
	cm := *m
	r.s.movements = append(r.s.movements, &cm)
	return nil
}

func (r *memMovementRepo) ListByUser(userID string, limit, offset int) ([]*entity.StockMovement, error) {
	var list []*entity.StockMovement
	for _, m := range r.s.movements {
		if m.UserID == userID {
			cm := *m
			list = append(list, &cm)
		}
	}
	return list, nil
}

func (r *memMovementRepo) ListByProduct(productID string) ([]*entity.StockMovement, error) {
	var list []*entity.StockMovement
	for _, m := range r.s.movements {
		if m.ProductID == productID {
			cm := *m
			list = append(list, &cm)
		}
	}
	return list, nil
}

const tenantA = "user-a"

func setup(stock int) (*memState, *inventory.RegisterMovementUseCase) {
	state := &memState{products: map[string]*entity.Product{
		"p1": {ID: "p1", UserID: tenantA, Name: "Café 500g", Stock: stock},
	}}
	uc := inventory.NewRegisterMovementUseCase(
		&memTxRunner{state: state},
		&memProductRepo{s: state},
		&memMovementRepo{s: state},
	)
	return state, uc
}

// ──────────────────────────────────────────────────────────────────────────────
// RegisterMovement
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterMovement_EntradaSumaStockYDejaLedger(t *testing.T) {
	state, uc := setup(7)

	out, err := uc.RegisterMovement(context.Background(), tenantA, dto.RegisterMovementRequest{
		ProductID: "p1",
		Type:      entity.MovementTypeIn,
		Quantity:  5,
		Reason:    "Compra a proveedor",
	})
	require.NoError(t, err)

	assert.Equal(t, 12, state.products["p1"].Stock)
	assert.Equal(t, "Café 500g", out.ProductName, "el ledger snapshotea el nombre")
	require.Len(t, state.movements, 1)
	assert.Equal(t, entity.MovementTypeIn, state.movements[0].Type)
	assert.Equal(t, "Compra a proveedor", state.movements[0].Reason)
}

func TestRegisterMovement_SalidaDescuentaStock(t *testing.T) {
	state, uc := setup(7)

	_, err := uc.RegisterMovement(context.Background(), tenantA, dto.RegisterMovementRequest{
		ProductID: "p1",
		Type:      entity.MovementTypeOut,
		Quantity:  3,
		Reason:    "Merma",
	})
	require.NoError(t, err)
	assert.Equal(t, 4, state.products["p1"].Stock)
}

// Una salida que dejaría el stock negativo se rechaza completa: ni se aplica
// parcial, ni se recorta a lo disponible, ni queda fila en el ledger.
func TestRegisterMovement_SalidaSobreStockSeRechazaSinRastro(t *testing.T) {
	state, uc := setup(3)

	_, err := uc.RegisterMovement(context.Background(), tenantA, dto.RegisterMovementRequest{
		ProductID: "p1",
		Type:      entity.MovementTypeOut,
		Quantity:  10,
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, 3, state.products["p1"].Stock, "el stock no debe tocarse")
	assert.Empty(t, state.movements, "el ledger no debe registrar el intento")
}

func TestRegisterMovement_Validaciones(t *testing.T) {
	_, uc := setup(5)
	ctx := context.Background()

	_, err := uc.RegisterMovement(ctx, tenantA, dto.RegisterMovementRequest{
		ProductID: "p1", Type: "transfer", Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "tipo desconocido")

	_, err = uc.RegisterMovement(ctx, tenantA, dto.RegisterMovementRequest{
		ProductID: "p1", Type: entity.MovementTypeIn, Quantity: 0,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad cero")

	_, err = uc.RegisterMovement(ctx, tenantA, dto.RegisterMovementRequest{
		ProductID: "p1", Type: entity.MovementTypeIn, Quantity: -2,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad negativa")
}

func TestRegisterMovement_ProductoAjenoNoExiste(t *testing.T) {
	state, uc := setup(5)

	_, err := uc.RegisterMovement(context.Background(), "otro-tenant", dto.RegisterMovementRequest{
		ProductID: "p1", Type: entity.MovementTypeIn, Quantity: 1,
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 5, state.products["p1"].Stock)
}

// ──────────────────────────────────────────────────────────────────────────────
// ReconcileProduct: reproducir el ledger debe dar el stock vigente
// ──────────────────────────────────────────────────────────────────────────────

func TestReconcileProduct_LedgerReproduceElStock(t *testing.T) {
	state, uc := setup(0)
	ctx := context.Background()

	// Historial: +10, -4, +3, -2 → stock 7
	steps := []dto.RegisterMovementRequest{
		{ProductID: "p1", Type: entity.MovementTypeIn, Quantity: 10, Reason: "Initial stock"},
		{ProductID: "p1", Type: entity.MovementTypeOut, Quantity: 4},
		{ProductID: "p1", Type: entity.MovementTypeIn, Quantity: 3},
		{ProductID: "p1", Type: entity.MovementTypeOut, Quantity: 2},
	}
	for _, s := range steps {
		_, err := uc.RegisterMovement(ctx, tenantA, s)
		require.NoError(t, err)
	}
	require.Equal(t, 7, state.products["p1"].Stock)

	out, err := uc.ReconcileProduct(ctx, tenantA, "p1")
	require.NoError(t, err)
	assert.Equal(t, 7, out.CurrentStock)
	assert.Equal(t, 7, out.ImpliedStock)
	assert.Equal(t, 4, out.MovementCount)
	assert.True(t, out.Consistent)
}

func TestReconcileProduct_DetectaInconsistencia(t *testing.T) {
	state, uc := setup(0)
	ctx := context.Background()

	_, err := uc.RegisterMovement(ctx, tenantA, dto.RegisterMovementRequest{
		ProductID: "p1", Type: entity.MovementTypeIn, Quantity: 10,
	})
	require.NoError(t, err)

	// Mutación fuera del motor: el ledger ya no explica el stock
	state.products["p1"].Stock = 8

	out, err := uc.ReconcileProduct(ctx, tenantA, "p1")
	require.NoError(t, err)
	assert.Equal(t, 8, out.CurrentStock)
	assert.Equal(t, 10, out.ImpliedStock)
	assert.False(t, out.Consistent)
}
