package handler

import "github.com/tripwise/travel-planner/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse is the envelope for operations that only confirm success.
type messageResponse struct {
	Message string `json:"message"`
}

// --- Auth ---

type signupRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// --- Travel ---

type calculateBudgetRequest struct {
	StartingPoint    string `json:"startingPoint"    validate:"required"`
	Destination      string `json:"destination"      validate:"required"`
	Nights           int    `json:"nights"           validate:"required,gt=0"`
	Travelers        int    `json:"travelers"        validate:"required,gt=0"`
	BudgetLevel      string `json:"budgetLevel"      validate:"required"`
	TransportMode    string `json:"transportMode"    validate:"required"`
	TransportSubtype string `json:"transportSubtype" validate:"required"`
	// ShoppingAmount is free-form; the pricing engine parses it with a
	// zero fallback, so no validation tag.
	ShoppingAmount string `json:"shoppingAmount"`
}

type getPlacesRequest struct {
	Destination string `json:"destination" validate:"required"`
}

type saveTravelRequest struct {
	Destination string  `json:"destination" validate:"required"`
	Budget      float64 `json:"budget"      validate:"required,gt=0"`
	Nights      int     `json:"nights"      validate:"required,gt=0"`
}
