package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tripwise/travel-planner/internal/core/domain"
	"github.com/tripwise/travel-planner/internal/core/ports"
)

// TravelHandler handles budget estimation, place search, and travel
// record operations.
type TravelHandler struct {
	service ports.TravelService
	geo     ports.GeoGateway
}

func NewTravelHandler(service ports.TravelService, geo ports.GeoGateway) *TravelHandler {
	return &TravelHandler{service: service, geo: geo}
}

// CalculateBudget prices a trip from distance and the fixed rate tables.
//
// @Summary      Estimate a trip budget
// @Tags         travel
// @Accept       json
// @Produce      json
// @Param        body  body      calculateBudgetRequest  true  "Trip parameters"
// @Success      200   {object}  domain.BudgetBreakdown
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /calculate-budget [post]
func (h *TravelHandler) CalculateBudget(c echo.Context) error {
	var req calculateBudgetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	breakdown, err := h.service.EstimateBudget(c.Request().Context(), ports.EstimateBudgetInput{
		Origin:           req.StartingPoint,
		Destination:      req.Destination,
		Nights:           req.Nights,
		Travelers:        req.Travelers,
		Tier:             req.BudgetLevel,
		TransportMode:    req.TransportMode,
		TransportSubtype: req.TransportSubtype,
		ShoppingAmount:   req.ShoppingAmount,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, breakdown)
}

// GetPlaces returns tourist attractions in the given destination.
//
// @Summary      Search tourist attractions
// @Tags         travel
// @Accept       json
// @Produce      json
// @Param        body  body      getPlacesRequest  true  "Destination"
// @Success      200   {array}   domain.Place
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /get-places [post]
func (h *TravelHandler) GetPlaces(c echo.Context) error {
	var req getPlacesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	places, err := h.geo.SearchPlaces(c.Request().Context(), req.Destination)
	if err != nil {
		if errors.Is(err, domain.ErrGateway) {
			return c.JSON(http.StatusInternalServerError, errorResponse{Error: "error fetching places data"})
		}
		return err
	}

	return c.JSON(http.StatusOK, places)
}

// SaveTravel persists a travel record for the authenticated user.
//
// @Summary      Save a travel record
// @Tags         travel
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      saveTravelRequest  true  "Travel details"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /save-travel [post]
func (h *TravelHandler) SaveTravel(c echo.Context) error {
	var req saveTravelRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if _, err := h.service.SaveTravel(c.Request().Context(), ports.SaveTravelInput{
		UserID:      userID,
		Destination: req.Destination,
		Budget:      req.Budget,
		Nights:      req.Nights,
	}); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, messageResponse{Message: "Travel saved successfully"})
}

// TravelHistory returns the authenticated user's records, newest first.
//
// @Summary      Fetch travel history
// @Tags         travel
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.TravelRecord
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /travel-history [get]
func (h *TravelHandler) TravelHistory(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	records, err := h.service.History(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, records)
}

// UserData returns the authenticated user's public projection. The
// password hash is excluded by the domain type's JSON mapping.
//
// @Summary      Fetch the authenticated user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.User
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /user-data [get]
func (h *TravelHandler) UserData(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	user, err := h.service.UserData(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, user)
}
