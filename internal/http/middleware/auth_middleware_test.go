package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/you/fleetsvc/domain"
	"github.com/you/fleetsvc/internal/mocks"
)

func performAuthRequest(t *testing.T, mw gin.HandlerFunc, authHeader string) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	var captured *gin.Context
	r := gin.New()
	r.GET("/protected", mw, func(c *gin.Context) {
		captured = c
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	r.ServeHTTP(w, req)
	return w, captured
}

func TestAuthMiddleware_RejectsWithUniform401(t *testing.T) {
	tests := []struct {
		name       string
		authHeader string
		setupMocks func(tokenSvc *mocks.MockTokenService, userRepo *mocks.MockUserRepository, denylist *mocks.MockTokenDenylist)
	}{
		{
			name:       "missing header",
			authHeader: "",
			setupMocks: func(tokenSvc *mocks.MockTokenService, userRepo *mocks.MockUserRepository, denylist *mocks.MockTokenDenylist) {
			},
		},
		{
			name:       "wrong scheme",
			authHeader: "Basic abc123",
			setupMocks: func(tokenSvc *mocks.MockTokenService, userRepo *mocks.MockUserRepository, denylist *mocks.MockTokenDenylist) {
			},
		},
		{
			name:       "invalid token",
			authHeader: "Bearer forged",
			setupMocks: func(tokenSvc *mocks.MockTokenService, userRepo *mocks.MockUserRepository, denylist *mocks.MockTokenDenylist) {
				tokenSvc.ValidateFunc = func(token string) (*domain.TokenClaims, error) {
					return nil, domain.ErrTokenInvalid
				}
			},
		},
		{
			name:       "expired token",
			authHeader: "Bearer expired",
			setupMocks: func(tokenSvc *mocks.MockTokenService, userRepo *mocks.MockUserRepository, denylist *mocks.MockTokenDenylist) {
				tokenSvc.ValidateFunc = func(token string) (*domain.TokenClaims, error) {
					return nil, domain.ErrTokenExpired
				}
			},
		},
		{
			name:       "revoked token",
			authHeader: "Bearer mock-token",
			setupMocks: func(tokenSvc *mocks.MockTokenService, userRepo *mocks.MockUserRepository, denylist *mocks.MockTokenDenylist) {
				denylist.IsRevokedFunc = func(ctx context.Context, jti string) (bool, error) {
					return true, nil
				}
			},
		},
		{
			name:       "role lookup fails",
			authHeader: "Bearer mock-token",
			setupMocks: func(tokenSvc *mocks.MockTokenService, userRepo *mocks.MockUserRepository, denylist *mocks.MockTokenDenylist) {
				userRepo.FindRolesByUserIDFunc = func(ctx context.Context, userID uint) ([]string, error) {
					return nil, errors.New("store unavailable")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mocks.NewMockTokenService()
			userRepo := mocks.NewMockUserRepository()
			denylist := mocks.NewMockTokenDenylist()
			tt.setupMocks(tokenSvc, userRepo, denylist)

			w, captured := performAuthRequest(t, AuthMiddleware(tokenSvc, userRepo, denylist), tt.authHeader)

			if w.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", w.Code)
			}
			if captured != nil {
				t.Error("handler must not run on authentication failure")
			}

			var body map[string]any
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid JSON response: %v", err)
			}
			// Uniform body: failure modes are indistinguishable to callers.
			if body["error"] != "unauthorized" || body["success"] != false {
				t.Errorf("expected uniform unauthorized body, got %v", body)
			}
		})
	}
}

func TestAuthMiddleware_AttachesIdentityWithRoles(t *testing.T) {
	tokenSvc := mocks.NewMockTokenService()
	userRepo := mocks.NewMockUserRepository()
	denylist := mocks.NewMockTokenDenylist()

	now := time.Now()
	tokenSvc.ValidateFunc = func(token string) (*domain.TokenClaims, error) {
		return &domain.TokenClaims{
			UserID:    9,
			JTI:       "jti-9",
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(4 * time.Hour).Unix(),
		}, nil
	}
	userRepo.FindRolesByUserIDFunc = func(ctx context.Context, userID uint) ([]string, error) {
		if userID != 9 {
			t.Errorf("expected role lookup for subject 9, got %d", userID)
		}
		return []string{"admin"}, nil
	}

	w, captured := performAuthRequest(t, AuthMiddleware(tokenSvc, userRepo, denylist), "Bearer whatever")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	if captured == nil {
		t.Fatal("handler did not run")
	}

	identity, ok := IdentityFrom(captured)
	if !ok {
		t.Fatal("identity not attached to context")
	}
	if identity.UserID != 9 {
		t.Errorf("expected subject 9, got %d", identity.UserID)
	}
	if !identity.HasRole("admin") {
		t.Errorf("expected admin role, got %v", identity.Roles)
	}

	claims, ok := ClaimsFrom(captured)
	if !ok || claims.JTI != "jti-9" {
		t.Errorf("expected claims attached, got %+v", claims)
	}
}

func TestAuthMiddleware_EmptyRoleListIsValid(t *testing.T) {
	tokenSvc := mocks.NewMockTokenService()
	userRepo := mocks.NewMockUserRepository()
	denylist := mocks.NewMockTokenDenylist()

	w, captured := performAuthRequest(t, AuthMiddleware(tokenSvc, userRepo, denylist), "Bearer mock-token")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for user with no roles, got %d", w.Code)
	}
	identity, ok := IdentityFrom(captured)
	if !ok {
		t.Fatal("identity not attached")
	}
	if len(identity.Roles) != 0 {
		t.Errorf("expected no roles, got %v", identity.Roles)
	}
}
