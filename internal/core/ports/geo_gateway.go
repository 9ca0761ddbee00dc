package ports

import (
	"context"

	"github.com/tripwise/travel-planner/internal/core/domain"
)

// GeoGateway is the outbound client to the third-party mapping service.
// It is an interface so tests can substitute a fake provider without
// network access.
type GeoGateway interface {
	// DistanceKm returns the route distance between origin and
	// destination in kilometers. A missing or zero distance on the
	// service side yields 0, not an error; only transport or API-level
	// failure returns domain.ErrGateway.
	DistanceKm(ctx context.Context, origin, destination string) (float64, error)

	// SearchPlaces returns tourist attractions in the destination.
	// Any service failure returns domain.ErrGateway with no partial
	// results.
	SearchPlaces(ctx context.Context, destination string) ([]domain.Place, error)
}
