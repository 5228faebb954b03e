package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/you/fleetsvc/domain"
	"github.com/you/fleetsvc/internal/http/middleware"
	"github.com/you/fleetsvc/internal/validation"
)

// Validation contracts for the auth endpoints.
var (
	LoginRules = validation.RuleSet{
		validation.F("email", validation.Email(), validation.MaxLen(150)),
		validation.F("password", validation.StrongPassword()),
	}
	RegisterRules = validation.RuleSet{
		validation.F("nombre", validation.LengthBetween(1, 100)),
		validation.F("email", validation.Email(), validation.MaxLen(150)),
		validation.F("password", validation.StrongPassword()),
	}
	ProfileUpdateRules = validation.RuleSet{
		validation.F("nombre", validation.LengthBetween(1, 100)),
		validation.F("email", validation.Email(), validation.MaxLen(150)),
	}
)

// AuthHandlers handles authentication HTTP requests
type AuthHandlers struct {
	authSvc domain.AuthService
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService) *AuthHandlers {
	return &AuthHandlers{authSvc: authSvc}
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileUpdateRequest represents a profile edit
type ProfileUpdateRequest struct {
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
}

// Login handles POST /auth/login
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if err == domain.ErrInvalidCredentials {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid credentials"})
			return
		}
		log.Printf("login failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   result.Token,
		"email":   result.User.Email,
	})
}

// Register handles POST /auth/registro
func (h *AuthHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	user, err := h.authSvc.Register(c.Request.Context(), req.Nombre, req.Email, req.Password)
	if err != nil {
		if err == domain.ErrUserAlreadyExists {
			c.JSON(http.StatusConflict, gin.H{"success": false, "error": "user already exists"})
			return
		}
		log.Printf("registration failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "userId": user.ID})
}

// UpdateProfile handles PUT /auth/:id
func (h *AuthHandlers) UpdateProfile(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid id"})
		return
	}

	var req ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if err := h.authSvc.UpdateProfile(c.Request.Context(), uint(id), req.Nombre, req.Email); err != nil {
		if err == domain.ErrUserNotFound {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "user not found"})
			return
		}
		log.Printf("profile update failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Logout handles POST /auth/logout. With revocation disabled this only
// acknowledges; the client erases its stored credential.
func (h *AuthHandlers) Logout(c *gin.Context) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "unauthorized"})
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), claims); err != nil {
		log.Printf("logout failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
