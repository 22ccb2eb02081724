package repository

import (
	"context"

	"gamedex/internal/domain/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// Update performs a merge write; zero-valued fields are left untouched.
	Update(ctx context.Context, id string, fields map[string]interface{}) error
}
