package usecase

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

// CustomerUseCase casos de uso CRUD para clientes.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create crea un cliente del tenant.
func (uc *CustomerUseCase) Create(ctx context.Context, userID string, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidCustomerType(in.Type) {
		return nil, fmt.Errorf("tipo de cliente %q: %w", in.Type, domain.ErrInvalidInput)
	}
	if in.Credit.IsNegative() {
		return nil, fmt.Errorf("crédito negativo: %w", domain.ErrInvalidInput)
	}

	now := time.Now()
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      in.Name,
		Type:      in.Type,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
		Credit:    in.Credit,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetByID obtiene un cliente del tenant.
func (uc *CustomerUseCase) GetByID(ctx context.Context, userID, id string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil || customer.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return toCustomerResponse(customer), nil
}

// Update actualiza campos del cliente.
func (uc *CustomerUseCase) Update(ctx context.Context, userID, id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil || customer.UserID != userID {
		return nil, domain.ErrNotFound
	}

	if in.Name != nil && *in.Name != "" {
		customer.Name = *in.Name
	}
	if in.Type != nil {
		if !entity.ValidCustomerType(*in.Type) {
			return nil, fmt.Errorf("tipo de cliente %q: %w", *in.Type, domain.ErrInvalidInput)
		}
		customer.Type = *in.Type
	}
	if in.Email != nil {
		customer.Email = *in.Email
	}
	if in.Phone != nil {
		customer.Phone = *in.Phone
	}
	if in.Address != nil {
		customer.Address = *in.Address
	}
	if in.TotalPurchases != nil {
		if in.TotalPurchases.IsNegative() {
			return nil, fmt.Errorf("total_purchases negativo: %w", domain.ErrInvalidInput)
		}
		customer.TotalPurchases = *in.TotalPurchases
	}
	if in.Credit != nil {
		if in.Credit.IsNegative() {
			return nil, fmt.Errorf("crédito negativo: %w", domain.ErrInvalidInput)
		}
		customer.Credit = *in.Credit
	}
	customer.UpdatedAt = time.Now()

	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// List lista clientes del tenant con paginación.
func (uc *CustomerUseCase) List(ctx context.Context, userID string, limit, offset int) (*dto.CustomerListResponse, error) {
	list, err := uc.repo.ListByUser(userID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCustomerResponse(c))
	}
	return &dto.CustomerListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un cliente del tenant.
func (uc *CustomerUseCase) Delete(ctx context.Context, userID, id string) error {
	deleted, err := uc.repo.Delete(userID, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	if c == nil {
		return nil
	}
	return &dto.CustomerResponse{
		ID:             c.ID,
		Name:           c.Name,
		Type:           c.Type,
		Email:          c.Email,
		Phone:          c.Phone,
		Address:        c.Address,
		TotalPurchases: c.TotalPurchases,
		Credit:         c.Credit,
		CreatedAt:      c.CreatedAt,
	}
}
