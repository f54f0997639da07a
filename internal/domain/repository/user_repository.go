package repository

import "github.com/jortegav/retailos-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (tenant).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
}
