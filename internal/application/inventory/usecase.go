package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jortegav/retailos-api/internal/application/dto"
	"github.com/jortegav/retailos-api/internal/domain"
	"github.com/jortegav/retailos-api/internal/domain/entity"
	"github.com/jortegav/retailos-api/internal/domain/repository"
)

// RegisterMovementUseCase registra movimientos de inventario (in/out) de forma
// transaccional, con bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback.
// Una salida que dejaría el stock negativo se rechaza, nunca se aplica parcial
// ni se recorta.
type RegisterMovementUseCase struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	movementRepo repository.StockMovementRepository
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{
		txRunner:     txRunner,
		productRepo:  productRepo,
		movementRepo: movementRepo,
	}
}

// RegisterMovement valida la entrada, inicia una transacción, bloquea la fila
// del producto, aplica el delta y agrega exactamente una fila al ledger.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, userID string, in dto.RegisterMovementRequest) (*dto.StockMovementResponse, error) {
	if in.ProductID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Type != entity.MovementTypeIn && in.Type != entity.MovementTypeOut {
		return nil, fmt.Errorf("tipo de movimiento %q: %w", in.Type, domain.ErrInvalidInput)
	}
	if in.Quantity <= 0 {
		return nil, fmt.Errorf("cantidad %d: %w", in.Quantity, domain.ErrInvalidInput)
	}

	now := time.Now()
	var mov *entity.StockMovement

	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		// Bloquea la fila del producto para serializar movimientos concurrentes
		product, err := productRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil || product.UserID != userID {
			return domain.ErrNotFound
		}

		switch in.Type {
		case entity.MovementTypeIn:
			if err := productRepo.IncrementStock(product.ID, in.Quantity); err != nil {
				return err
			}
		case entity.MovementTypeOut:
			if product.Stock < in.Quantity {
				return fmt.Errorf("producto %s: solicitado %d, disponible %d: %w",
					product.ID, in.Quantity, product.Stock, domain.ErrInsufficientStock)
			}
			applied, err := productRepo.DecrementStock(product.ID, in.Quantity)
			if err != nil {
				return err
			}
			if !applied {
				return fmt.Errorf("producto %s: solicitado %d, disponible %d: %w",
					product.ID, in.Quantity, product.Stock, domain.ErrInsufficientStock)
			}
		}

		mov = &entity.StockMovement{
			ID:          uuid.New().String(),
			UserID:      userID,
			ProductID:   product.ID,
			ProductName: product.Name,
			Type:        in.Type,
			Quantity:    in.Quantity,
			Reason:      in.Reason,
			CreatedAt:   now,
		}
		return movementRepo.Create(mov)
	})
	if err != nil {
		return nil, err
	}

	return toMovementResponse(mov), nil
}

// ListMovements devuelve el historial de movimientos del tenant, más reciente primero.
func (uc *RegisterMovementUseCase) ListMovements(ctx context.Context, userID string, limit, offset int) (*dto.MovementListResponse, error) {
	list, err := uc.movementRepo.ListByUser(userID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockMovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMovementResponse(m))
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toMovementResponse(m *entity.StockMovement) *dto.StockMovementResponse {
	if m == nil {
		return nil
	}
	return &dto.StockMovementResponse{
		ID:          m.ID,
		ProductID:   m.ProductID,
		ProductName: m.ProductName,
		Type:        m.Type,
		Quantity:    m.Quantity,
		Reason:      m.Reason,
		CreatedAt:   m.CreatedAt,
	}
}
