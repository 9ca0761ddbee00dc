package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tripwise/travel-planner/internal/core/domain"
	"github.com/tripwise/travel-planner/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Signup creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "User registration details"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	_, err := h.authService.Register(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "All fields are required"})
		case errors.Is(err, domain.ErrEmailExists):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "email already exists"})
		}
		return err
	}

	return c.JSON(http.StatusCreated, messageResponse{Message: "User registered successfully"})
}

// Login authenticates a user and returns a bearer token plus the public
// user projection. Unknown email and wrong password produce the same
// response to avoid account enumeration.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) || errors.Is(err, domain.ErrInvalidCredentials) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid email or password"})
		}
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{Token: token, User: user})
}
