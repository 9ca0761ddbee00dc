package ports

import (
	"context"

	"github.com/tripwise/travel-planner/internal/core/domain"
)

// UserRepository defines persistence for user credentials. Email is the
// login key and carries a unique constraint at the store level.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
