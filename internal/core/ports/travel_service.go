package ports

import (
	"context"

	"github.com/tripwise/travel-planner/internal/core/domain"
)

// EstimateBudgetInput carries all parameters for a budget estimate.
// ShoppingAmount stays a string end-to-end: the pricing engine parses it
// with a safe zero fallback.
type EstimateBudgetInput struct {
	Origin           string
	Destination      string
	Nights           int
	Travelers        int
	Tier             string
	TransportMode    string
	TransportSubtype string
	ShoppingAmount   string
}

// SaveTravelInput carries the fields persisted for an authenticated user.
type SaveTravelInput struct {
	UserID      string
	Destination string
	Budget      float64
	Nights      int
}

// TravelService defines the use-case operations around trips.
type TravelService interface {
	EstimateBudget(ctx context.Context, input EstimateBudgetInput) (*domain.BudgetBreakdown, error)
	SaveTravel(ctx context.Context, input SaveTravelInput) (*domain.TravelRecord, error)
	History(ctx context.Context, userID string) ([]*domain.TravelRecord, error)
	UserData(ctx context.Context, userID string) (*domain.User, error)
}
