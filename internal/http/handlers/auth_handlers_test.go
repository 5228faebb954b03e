package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/you/fleetsvc/domain"
	"github.com/you/fleetsvc/internal/http/middleware"
	"github.com/you/fleetsvc/internal/mocks"
)

func performJSONRequest(t *testing.T, r *gin.Engine, method, path, payload string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding response body: %v", err)
	}
	return body
}

func TestAuthHandlers_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		payload        string
		setupMocks     func(*mocks.MockAuthService)
		expectedStatus int
		checkBody      func(t *testing.T, body map[string]interface{})
	}{
		{
			name:    "valid credentials return token and email",
			payload: `{"email":"ana@flota.com","password":"secreta123"}`,
			setupMocks: func(svc *mocks.MockAuthService) {
				svc.LoginFunc = func(ctx context.Context, email, password string) (*domain.AuthResult, error) {
					if email != "ana@flota.com" || password != "secreta123" {
						return nil, domain.ErrInvalidCredentials
					}
					return &domain.AuthResult{
						User:  &domain.User{ID: 7, Email: email},
						Token: "issued-token",
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body map[string]interface{}) {
				if body["success"] != true {
					t.Errorf("expected success true, got %v", body["success"])
				}
				if body["token"] != "issued-token" {
					t.Errorf("expected issued token, got %v", body["token"])
				}
				if body["email"] != "ana@flota.com" {
					t.Errorf("expected email echoed back, got %v", body["email"])
				}
			},
		},
		{
			name:    "wrong password yields 400 without a token",
			payload: `{"email":"ana@flota.com","password":"otracosa123"}`,
			setupMocks: func(svc *mocks.MockAuthService) {
				svc.LoginFunc = func(ctx context.Context, email, password string) (*domain.AuthResult, error) {
					return nil, domain.ErrInvalidCredentials
				}
			},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body map[string]interface{}) {
				if body["success"] != false {
					t.Errorf("expected success false, got %v", body["success"])
				}
				if _, ok := body["token"]; ok {
					t.Error("failed login must not carry a token")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockAuthService()
			tt.setupMocks(svc)

			h := NewAuthHandlers(svc)
			r := gin.New()
			r.POST("/auth/login", middleware.ValidateBody(LoginRules), h.Login)

			w := performJSONRequest(t, r, http.MethodPost, "/auth/login", tt.payload)

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d (%s)", tt.expectedStatus, w.Code, w.Body.String())
			}
			tt.checkBody(t, decodeBody(t, w))
		})
	}
}

func TestAuthHandlers_Register(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		payload        string
		setupMocks     func(*mocks.MockAuthService)
		expectedStatus int
		checkBody      func(t *testing.T, body map[string]interface{})
	}{
		{
			name:    "new account returns its id",
			payload: `{"nombre":"Ana","email":"ana@flota.com","password":"secreta123"}`,
			setupMocks: func(svc *mocks.MockAuthService) {
				svc.RegisterFunc = func(ctx context.Context, nombre, email, password string) (*domain.User, error) {
					return &domain.User{ID: 12, Nombre: nombre, Email: email}, nil
				}
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body map[string]interface{}) {
				if body["success"] != true {
					t.Errorf("expected success true, got %v", body["success"])
				}
				if body["userId"] != float64(12) {
					t.Errorf("expected userId 12, got %v", body["userId"])
				}
			},
		},
		{
			name:    "duplicate email yields 409",
			payload: `{"nombre":"Ana","email":"ana@flota.com","password":"secreta123"}`,
			setupMocks: func(svc *mocks.MockAuthService) {
				svc.RegisterFunc = func(ctx context.Context, nombre, email, password string) (*domain.User, error) {
					return nil, domain.ErrUserAlreadyExists
				}
			},
			expectedStatus: http.StatusConflict,
			checkBody: func(t *testing.T, body map[string]interface{}) {
				if body["success"] != false {
					t.Errorf("expected success false, got %v", body["success"])
				}
			},
		},
		{
			name:           "weak password never reaches the service",
			payload:        `{"nombre":"Ana","email":"ana@flota.com","password":"corta"}`,
			setupMocks:     func(svc *mocks.MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body map[string]interface{}) {
				if body["message"] != "validation failed" {
					t.Errorf("expected validation failure message, got %v", body["message"])
				}
				errs, ok := body["errors"].([]interface{})
				if !ok || len(errs) == 0 {
					t.Fatalf("expected itemized errors, got %v", body["errors"])
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockAuthService()
			tt.setupMocks(svc)

			registerCalled := false
			inner := svc.RegisterFunc
			svc.RegisterFunc = func(ctx context.Context, nombre, email, password string) (*domain.User, error) {
				registerCalled = true
				if inner != nil {
					return inner(ctx, nombre, email, password)
				}
				return &domain.User{ID: 1}, nil
			}

			h := NewAuthHandlers(svc)
			r := gin.New()
			r.POST("/auth/registro", middleware.ValidateBody(RegisterRules), h.Register)

			w := performJSONRequest(t, r, http.MethodPost, "/auth/registro", tt.payload)

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d (%s)", tt.expectedStatus, w.Code, w.Body.String())
			}
			if tt.expectedStatus == http.StatusBadRequest && registerCalled {
				t.Error("service must not be called when validation fails")
			}
			tt.checkBody(t, decodeBody(t, w))
		})
	}
}

func TestAuthHandlers_UpdateProfile(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := mocks.NewMockAuthService()
	var gotID uint
	svc.UpdateProfileFunc = func(ctx context.Context, id uint, nombre, email string) error {
		gotID = id
		if id != 7 {
			return domain.ErrUserNotFound
		}
		return nil
	}

	h := NewAuthHandlers(svc)
	r := gin.New()
	r.PUT("/auth/:id", middleware.ValidateBody(ProfileUpdateRules), h.UpdateProfile)

	w := performJSONRequest(t, r, http.MethodPut, "/auth/7", `{"nombre":"Ana Maria","email":"anam@flota.com"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	if gotID != 7 {
		t.Errorf("expected id 7 forwarded to service, got %d", gotID)
	}

	w = performJSONRequest(t, r, http.MethodPut, "/auth/99", `{"nombre":"Ana Maria","email":"anam@flota.com"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown id, got %d", w.Code)
	}
}

func TestAuthHandlers_Logout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := mocks.NewMockAuthService()
	var revokedJTI string
	svc.LogoutFunc = func(ctx context.Context, claims *domain.TokenClaims) error {
		revokedJTI = claims.JTI
		return nil
	}

	h := NewAuthHandlers(svc)
	r := gin.New()
	r.POST("/auth/logout", func(c *gin.Context) {
		// Simulate the auth gate having attached the validated claims.
		c.Set(middleware.ClaimsKey, &domain.TokenClaims{UserID: 7, JTI: "jti-7"})
	}, h.Logout)

	w := performJSONRequest(t, r, http.MethodPost, "/auth/logout", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	if revokedJTI != "jti-7" {
		t.Errorf("expected claims forwarded to logout, got jti %q", revokedJTI)
	}

	// Without claims the handler answers with the uniform 401.
	bare := gin.New()
	bare.POST("/auth/logout", h.Logout)
	w = performJSONRequest(t, bare, http.MethodPost, "/auth/logout", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without claims, got %d", w.Code)
	}
}
