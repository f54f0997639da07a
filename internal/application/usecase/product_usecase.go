package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jortegav/retailos-api/internal/application/dto"
	"github.com/jortegav/retailos-api/internal/application/inventory"
	"github.com/jortegav/retailos-api/internal/domain"
	"github.com/jortegav/retailos-api/internal/domain/entity"
	"github.com/jortegav/retailos-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para el catálogo. El stock no se edita por
// acá: el inventario inicial queda en el ledger al crear, y de ahí en adelante
// solo cambia vía movimientos o facturas.
type ProductUseCase struct {
	repo     repository.ProductRepository
	txRunner inventory.TxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, txRunner inventory.TxRunner) *ProductUseCase {
	return &ProductUseCase{repo: repo, txRunner: txRunner}
}

// Create crea un producto. Nombre único por tenant (sin distinguir
// mayúsculas), SKU único global. Si trae stock inicial, el alta del producto y
// su movimiento de entrada se persisten en la misma transacción.
func (uc *ProductUseCase) Create(ctx context.Context, userID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.SKU == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.CostPrice.IsNegative() || in.RetailPrice.IsNegative() || in.WholesalePrice.IsNegative() {
		return nil, fmt.Errorf("precios negativos: %w", domain.ErrInvalidInput)
	}
	if in.Stock < 0 || in.MinStock < 0 {
		return nil, fmt.Errorf("stock inicial %d, min_stock %d: %w", in.Stock, in.MinStock, domain.ErrInvalidInput)
	}

	existing, err := uc.repo.GetByUserAndName(userID, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("producto %q: %w", in.Name, domain.ErrDuplicateName)
	}
	bySKU, err := uc.repo.GetBySKU(in.SKU)
	if err != nil {
		return nil, err
	}
	if bySKU != nil {
		return nil, fmt.Errorf("sku %q: %w", in.SKU, domain.ErrDuplicateSKU)
	}

	now := time.Now()
	product := &entity.Product{
		ID:             uuid.New().String(),
		UserID:         userID,
		Name:           in.Name,
		SKU:            in.SKU,
		CostPrice:      in.CostPrice,
		RetailPrice:    in.RetailPrice,
		WholesalePrice: in.WholesalePrice,
		Stock:          in.Stock,
		MinStock:       in.MinStock,
		Category:       in.Category,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		if err := productRepo.Create(product); err != nil {
			return err
		}
		if product.Stock == 0 {
			return nil
		}
		// El inventario inicial entra al ledger para que la reconciliación
		// parta de cero
		return movementRepo.Create(&entity.StockMovement{
			ID:          uuid.New().String(),
			UserID:      userID,
			ProductID:   product.ID,
			ProductName: product.Name,
			Type:        entity.MovementTypeIn,
			Quantity:    product.Stock,
			Reason:      "Initial stock",
			CreatedAt:   now,
		})
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto del tenant.
func (uc *ProductUseCase) GetByID(ctx context.Context, userID, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil || product.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// Update actualiza campos del producto. Si cambia el nombre se revalida la
// unicidad por tenant. No acepta ediciones de stock.
func (uc *ProductUseCase) Update(ctx context.Context, userID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil || product.UserID != userID {
		return nil, domain.ErrNotFound
	}

	if in.Name != nil && *in.Name != "" && !strings.EqualFold(*in.Name, product.Name) {
		existing, err := uc.repo.GetByUserAndName(userID, *in.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != product.ID {
			return nil, fmt.Errorf("producto %q: %w", *in.Name, domain.ErrDuplicateName)
		}
		product.Name = *in.Name
	}
	if in.CostPrice != nil {
		if in.CostPrice.IsNegative() {
			return nil, fmt.Errorf("cost_price negativo: %w", domain.ErrInvalidInput)
		}
		product.CostPrice = *in.CostPrice
	}
	if in.RetailPrice != nil {
		if in.RetailPrice.IsNegative() {
			return nil, fmt.Errorf("retail_price negativo: %w", domain.ErrInvalidInput)
		}
		product.RetailPrice = *in.RetailPrice
	}
	if in.WholesalePrice != nil {
		if in.WholesalePrice.IsNegative() {
			return nil, fmt.Errorf("wholesale_price negativo: %w", domain.ErrInvalidInput)
		}
		product.WholesalePrice = *in.WholesalePrice
	}
	if in.MinStock != nil {
		if *in.MinStock < 0 {
			return nil, fmt.Errorf("min_stock negativo: %w", domain.ErrInvalidInput)
		}
		product.MinStock = *in.MinStock
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	product.UpdatedAt = time.Now()

	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos del tenant con paginación.
func (uc *ProductUseCase) List(ctx context.Context, userID string, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.ListByUser(userID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un producto. Las facturas y movimientos históricos conservan
// sus snapshots denormalizados, así que siguen siendo válidos.
func (uc *ProductUseCase) Delete(ctx context.Context, userID, id string) error {
	deleted, err := uc.repo.Delete(userID, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		SKU:            p.SKU,
		CostPrice:      p.CostPrice,
		RetailPrice:    p.RetailPrice,
		WholesalePrice: p.WholesalePrice,
		Stock:          p.Stock,
		MinStock:       p.MinStock,
		Category:       p.Category,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
