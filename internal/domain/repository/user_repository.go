package repository

import "github.com/equipamax/margem-api/internal/domain/entity"

// UserRepository porta de persistência de User.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
}
