package ports

import (
	"context"

	"github.com/tripwise/travel-planner/internal/core/domain"
)

// TravelRepository defines persistence for travel records. Records are
// append-only and always queried by owning user.
type TravelRepository interface {
	Create(ctx context.Context, record *domain.TravelRecord) error
	// FindByUserID returns the user's records sorted newest-first.
	// An empty history yields an empty slice, not an error.
	FindByUserID(ctx context.Context, userID string) ([]*domain.TravelRecord, error)
}
