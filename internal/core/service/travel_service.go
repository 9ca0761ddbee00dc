package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tripwise/travel-planner/internal/api/metrics"
	"github.com/tripwise/travel-planner/internal/core/domain"
	"github.com/tripwise/travel-planner/internal/core/ports"
)

// DistanceCache abstracts the route-distance cache (Redis). A hit skips
// the paid distance-matrix call for a repeated origin/destination pair.
type DistanceCache interface {
	Get(ctx context.Context, origin, destination string) (float64, bool, error)
	Set(ctx context.Context, origin, destination string, km float64) error
}

// TravelService orchestrates the pricing engine, the maps gateway and
// the travel record store.
type TravelService struct {
	travels ports.TravelRepository
	users   ports.UserRepository
	geo     ports.GeoGateway
	cache   DistanceCache
	log     zerolog.Logger
}

func NewTravelService(
	travels ports.TravelRepository,
	users ports.UserRepository,
	geo ports.GeoGateway,
	cache DistanceCache,
	log zerolog.Logger,
) *TravelService {
	return &TravelService{travels: travels, users: users, geo: geo, cache: cache, log: log}
}

// EstimateBudget prices a trip. Tier and fare are validated against the
// fixed tables before any network call is attempted.
func (s *TravelService) EstimateBudget(ctx context.Context, in ports.EstimateBudgetInput) (*domain.BudgetBreakdown, error) {
	if in.Origin == "" || in.Destination == "" || in.Nights <= 0 || in.Travelers <= 0 {
		return nil, domain.ErrValidation
	}
	if _, err := domain.TierRate(in.Tier); err != nil {
		return nil, err
	}
	if _, err := domain.FareRate(in.TransportMode, in.TransportSubtype); err != nil {
		return nil, err
	}

	distanceKm, err := s.routeDistance(ctx, in.Origin, in.Destination)
	if err != nil {
		return nil, err
	}

	breakdown, err := domain.ComputeBudget(distanceKm, in.Nights, in.Travelers, in.Tier, in.TransportMode, in.TransportSubtype, in.ShoppingAmount)
	if err != nil {
		return nil, err
	}

	metrics.BudgetsEstimatedTotal.WithLabelValues(in.Tier).Inc()
	s.log.Info().
		Str("origin", in.Origin).
		Str("destination", in.Destination).
		Float64("distance_km", distanceKm).
		Float64("total_cost", breakdown.TotalCost).
		Msg("budget estimated")

	return breakdown, nil
}

// routeDistance consults the cache first; cache failures are non-fatal
// and fall through to the gateway.
func (s *TravelService) routeDistance(ctx context.Context, origin, destination string) (float64, error) {
	if km, ok, err := s.cache.Get(ctx, origin, destination); err != nil {
		s.log.Warn().Err(err).Msg("distance cache read failed, calling gateway")
	} else if ok {
		metrics.DistanceCacheTotal.WithLabelValues("hit").Inc()
		return km, nil
	} else {
		metrics.DistanceCacheTotal.WithLabelValues("miss").Inc()
	}

	km, err := s.geo.DistanceKm(ctx, origin, destination)
	if err != nil {
		return 0, err
	}

	if err := s.cache.Set(ctx, origin, destination, km); err != nil {
		s.log.Warn().Err(err).Msg("failed to set distance cache key")
	}
	return km, nil
}

// SaveTravel persists a travel record with a server-assigned timestamp.
func (s *TravelService) SaveTravel(ctx context.Context, in ports.SaveTravelInput) (*domain.TravelRecord, error) {
	if in.Destination == "" || in.Budget <= 0 || in.Nights <= 0 {
		return nil, domain.ErrValidation
	}

	record := &domain.TravelRecord{
		ID:          uuid.NewString(),
		UserID:      in.UserID,
		Destination: in.Destination,
		Budget:      in.Budget,
		Nights:      in.Nights,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.travels.Create(ctx, record); err != nil {
		s.log.Error().Err(err).Str("user_id", in.UserID).Msg("failed to save travel record")
		return nil, fmt.Errorf("save travel: %w", err)
	}

	metrics.TravelsSavedTotal.Inc()
	s.log.Info().Str("user_id", in.UserID).Str("destination", in.Destination).Msg("travel record saved")
	return record, nil
}

// History returns the user's records newest-first.
func (s *TravelService) History(ctx context.Context, userID string) ([]*domain.TravelRecord, error) {
	records, err := s.travels.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetch history: %w", err)
	}
	return records, nil
}

// UserData returns the public projection of the authenticated user.
func (s *TravelService) UserData(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}
