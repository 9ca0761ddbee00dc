package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/tripwise/travel-planner/internal/core/domain"
	"github.com/tripwise/travel-planner/internal/core/ports"
)

type stubTravelService struct {
	estimateFn func(ctx context.Context, in ports.EstimateBudgetInput) (*domain.BudgetBreakdown, error)
	saveFn     func(ctx context.Context, in ports.SaveTravelInput) (*domain.TravelRecord, error)
	historyFn  func(ctx context.Context, userID string) ([]*domain.TravelRecord, error)
	userFn     func(ctx context.Context, userID string) (*domain.User, error)
}

func (s *stubTravelService) EstimateBudget(ctx context.Context, in ports.EstimateBudgetInput) (*domain.BudgetBreakdown, error) {
	return s.estimateFn(ctx, in)
}

func (s *stubTravelService) SaveTravel(ctx context.Context, in ports.SaveTravelInput) (*domain.TravelRecord, error) {
	return s.saveFn(ctx, in)
}

func (s *stubTravelService) History(ctx context.Context, userID string) ([]*domain.TravelRecord, error) {
	return s.historyFn(ctx, userID)
}

func (s *stubTravelService) UserData(ctx context.Context, userID string) (*domain.User, error) {
	return s.userFn(ctx, userID)
}

type stubGateway struct {
	placesFn func(ctx context.Context, destination string) ([]domain.Place, error)
}

func (g *stubGateway) DistanceKm(_ context.Context, _, _ string) (float64, error) {
	return 0, nil
}

func (g *stubGateway) SearchPlaces(ctx context.Context, destination string) ([]domain.Place, error) {
	return g.placesFn(ctx, destination)
}

func TestTravelHandler_CalculateBudget_Success(t *testing.T) {
	stub := &stubTravelService{
		estimateFn: func(ctx context.Context, in ports.EstimateBudgetInput) (*domain.BudgetBreakdown, error) {
			if in.Origin != "Pune" || in.Tier != "Mid-Range" || in.TransportSubtype != "AC Bus" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.BudgetBreakdown{DistanceKm: 100, TransportationCost: 1000, FoodCost: 3600, HotelCost: 9000, TotalCost: 13600}, nil
		},
	}
	h := NewTravelHandler(stub, &stubGateway{})

	body := `{"startingPoint":"Pune","destination":"Goa","nights":3,"travelers":2,"budgetLevel":"Mid-Range","transportMode":"Bus","transportSubtype":"AC Bus","shoppingAmount":""}`
	c, rec := newTestContext(t, http.MethodPost, "/calculate-budget", body)
	if err := h.CalculateBudget(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp domain.BudgetBreakdown
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.TotalCost != 13600 {
		t.Fatalf("expected total 13600, got %v", resp.TotalCost)
	}
}

func TestTravelHandler_CalculateBudget_MissingFields(t *testing.T) {
	stub := &stubTravelService{
		estimateFn: func(ctx context.Context, in ports.EstimateBudgetInput) (*domain.BudgetBreakdown, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewTravelHandler(stub, &stubGateway{})

	c, rec := newTestContext(t, http.MethodPost, "/calculate-budget", `{"destination":"Goa"}`)
	if err := h.CalculateBudget(c); err != nil {
		c.Echo().HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestTravelHandler_GetPlaces_Success(t *testing.T) {
	gateway := &stubGateway{
		placesFn: func(ctx context.Context, destination string) ([]domain.Place, error) {
			if destination != "Goa" {
				t.Fatalf("unexpected destination: %s", destination)
			}
			return []domain.Place{{Name: "Baga Beach", Address: "Goa, India", Rating: 4.4}}, nil
		},
	}
	h := NewTravelHandler(&stubTravelService{}, gateway)

	c, rec := newTestContext(t, http.MethodPost, "/get-places", `{"destination":"Goa"}`)
	if err := h.GetPlaces(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var places []domain.Place
	if err := json.Unmarshal(rec.Body.Bytes(), &places); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(places) != 1 || places[0].Name != "Baga Beach" {
		t.Fatalf("unexpected places: %+v", places)
	}
}

func TestTravelHandler_GetPlaces_MissingDestination(t *testing.T) {
	h := NewTravelHandler(&stubTravelService{}, &stubGateway{
		placesFn: func(ctx context.Context, destination string) ([]domain.Place, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	})

	c, rec := newTestContext(t, http.MethodPost, "/get-places", `{}`)
	if err := h.GetPlaces(c); err != nil {
		c.Echo().HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestTravelHandler_SaveTravel_Success(t *testing.T) {
	stub := &stubTravelService{
		saveFn: func(ctx context.Context, in ports.SaveTravelInput) (*domain.TravelRecord, error) {
			if in.UserID != "user_1" || in.Destination != "Goa" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.TravelRecord{ID: "rec_1", UserID: in.UserID}, nil
		},
	}
	h := NewTravelHandler(stub, &stubGateway{})

	c, rec := newTestContext(t, http.MethodPost, "/save-travel", `{"destination":"Goa","budget":13600,"nights":3}`)
	c.Set("user_id", "user_1")
	if err := h.SaveTravel(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestTravelHandler_SaveTravel_NoClaims(t *testing.T) {
	h := NewTravelHandler(&stubTravelService{
		saveFn: func(ctx context.Context, in ports.SaveTravelInput) (*domain.TravelRecord, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}, &stubGateway{})

	c, rec := newTestContext(t, http.MethodPost, "/save-travel", `{"destination":"Goa","budget":100,"nights":1}`)
	if err := h.SaveTravel(c); err != nil {
		c.Echo().HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without auth claims, got %d", rec.Code)
	}
}

func TestTravelHandler_TravelHistory(t *testing.T) {
	now := time.Now().UTC()
	stub := &stubTravelService{
		historyFn: func(ctx context.Context, userID string) ([]*domain.TravelRecord, error) {
			if userID != "user_1" {
				t.Fatalf("unexpected user id: %s", userID)
			}
			return []*domain.TravelRecord{
				{ID: "2", UserID: userID, Destination: "Jaipur", CreatedAt: now},
				{ID: "1", UserID: userID, Destination: "Goa", CreatedAt: now.Add(-time.Hour)},
			}, nil
		},
	}
	h := NewTravelHandler(stub, &stubGateway{})

	c, rec := newTestContext(t, http.MethodGet, "/travel-history", "")
	c.Set("user_id", "user_1")
	if err := h.TravelHistory(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var records []domain.TravelRecord
	if err := json.Unmarshal(rec.Body.Bytes(), &records); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(records) != 2 || records[0].ID != "2" {
		t.Fatalf("unexpected records: %+v", records)
	}
}

func TestTravelHandler_UserData_OmitsPasswordHash(t *testing.T) {
	stub := &stubTravelService{
		userFn: func(ctx context.Context, userID string) (*domain.User, error) {
			return &domain.User{ID: userID, Name: "Alice", Email: "alice@example.com", PasswordHash: "$2a$10$secret"}, nil
		},
	}
	h := NewTravelHandler(stub, &stubGateway{})

	c, rec := newTestContext(t, http.MethodGet, "/user-data", "")
	c.Set("user_id", "user_1")
	if err := h.UserData(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "secret") || strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("response leaks password material: %s", rec.Body.String())
	}
}
