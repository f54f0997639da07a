package inventory

import (
	"context"

	"github.com/jortegav/retailos-api/internal/application/dto"
	"github.com/jortegav/retailos-api/internal/domain"
)

// ReconcileProduct reproduce el ledger completo de un producto en orden de
// creación y compara el stock implicado (suma de deltas) contra el stock
// vigente. Como el inventario inicial también queda en el ledger, la suma
// parte de cero.
func (uc *RegisterMovementUseCase) ReconcileProduct(ctx context.Context, userID, productID string) (*dto.ReconciliationResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil || product.UserID != userID {
		return nil, domain.ErrNotFound
	}

	movements, err := uc.movementRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}

	implied := 0
	for _, m := range movements {
		implied += m.Delta()
	}

	return &dto.ReconciliationResponse{
		ProductID:     product.ID,
		ProductName:   product.Name,
		CurrentStock:  product.Stock,
		ImpliedStock:  implied,
		MovementCount: len(movements),
		Consistent:    implied == product.Stock,
	}, nil
}
