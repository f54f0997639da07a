package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/jortegav/retailos-api/internal/application/dto"
	"github.com/jortegav/retailos-api/internal/domain"
	"github.com/jortegav/retailos-api/internal/domain/entity"
)

// UpdateInvoiceStatus aplica la transición de estado de una factura:
// pending → paid | partial, partial → paid. Todo lo demás se rechaza.
// Es el único campo mutable de una factura.
func (uc *CreateInvoiceUseCase) UpdateInvoiceStatus(ctx context.Context, userID, invoiceID, newStatus string) (*dto.InvoiceResponse, error) {
	if newStatus != entity.InvoiceStatusPaid && newStatus != entity.InvoiceStatusPartial {
		return nil, fmt.Errorf("estado %q: %w", newStatus, domain.ErrInvalidInput)
	}

	inv, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, err
	}
	if inv == nil || inv.UserID != userID {
		return nil, domain.ErrNotFound
	}
	if !entity.CanTransitionStatus(inv.Status, newStatus) {
		return nil, fmt.Errorf("transición %s → %s: %w", inv.Status, newStatus, domain.ErrConflict)
	}

	inv.Status = newStatus
	inv.UpdatedAt = time.Now()
	if err := uc.invoiceRepo.UpdateStatus(inv); err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv, nil), nil
}
