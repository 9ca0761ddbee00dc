package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/tripwise/travel-planner/internal/core/domain"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, name, email, password string) (*domain.User, error)
	loginFn    func(ctx context.Context, email, password string) (string, *domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	return s.registerFn(ctx, name, email, password)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Signup_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, name, email, password string) (*domain.User, error) {
			if name != "Alice" || email != "alice@example.com" || password != "secret" {
				t.Fatalf("unexpected args: %s %s %s", name, email, password)
			}
			return &domain.User{ID: "user_1", Name: name, Email: email}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/signup", `{"name":"Alice","email":"alice@example.com","password":"secret"}`)
	if err := h.Signup(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] == "" {
		t.Fatalf("expected confirmation message, got %+v", resp)
	}
}

func TestAuthHandler_Signup_MissingFields(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, name, email, password string) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/signup", `{"name":"Alice"}`)
	if err := h.Signup(c); err != nil {
		c.Echo().HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Signup_DuplicateEmail(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, name, email, password string) (*domain.User, error) {
			return nil, domain.ErrEmailExists
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/signup", `{"name":"Bob","email":"bob@example.com","password":"pw"}`)
	_ = h.Signup(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "email already exists") {
		t.Fatalf("expected conflict message, got %s", rec.Body.String())
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			return "token123", &domain.User{ID: "user_1", Name: "Alice", Email: email, PasswordHash: "$2a$10$hash"}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/login", `{"email":"alice@example.com","password":"secret"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["email"] != "alice@example.com" {
		t.Fatalf("unexpected user payload: %+v", resp["user"])
	}

	// The hash must never appear in any response.
	if strings.Contains(rec.Body.String(), "$2a$10$hash") || strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("response leaks password material: %s", rec.Body.String())
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/login", `{"email":"alice@example.com","password":"bad"}`)
	_ = h.Login(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Invalid email or password") {
		t.Fatalf("expected generic credential message, got %s", rec.Body.String())
	}
}

func TestAuthHandler_Login_InvalidPayload(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			t.Fatalf("should not be called")
			return "", nil, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/login", "{")
	if err := h.Login(c); err != nil {
		c.Echo().HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
