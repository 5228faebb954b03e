package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/you/fleetsvc/domain"
	"github.com/you/fleetsvc/internal/validation"
)

// Validation contracts for the user endpoints. Passwords are accepted on
// create only; profile edits go through PUT /auth/:id or PUT /usuarios/:id
// without a password field.
var (
	UserCreateRules = validation.RuleSet{
		validation.F("nombre", validation.LengthBetween(1, 100)),
		validation.F("email", validation.Email(), validation.MaxLen(150)),
		validation.F("password", validation.LengthBetween(8, 72)),
	}
	UserUpdateRules = validation.RuleSet{
		validation.Opt("nombre", validation.LengthBetween(1, 100)),
		validation.Opt("email", validation.Email(), validation.MaxLen(150)),
	}
)

// UserHandlers handles user CRUD requests
type UserHandlers struct {
	userRepo    domain.UserRepository
	passwordSvc domain.PasswordService
}

// NewUserHandlers creates new user handlers
func NewUserHandlers(userRepo domain.UserRepository, passwordSvc domain.PasswordService) *UserHandlers {
	return &UserHandlers{userRepo: userRepo, passwordSvc: passwordSvc}
}

// UserCreateRequest represents a user creation payload
type UserCreateRequest struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserUpdateRequest represents a user edit payload
type UserUpdateRequest struct {
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
}

// UserResponse is a user without its password hash. The hash never
// leaves the server.
type UserResponse struct {
	ID     uint   `json:"id"`
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
}

func toUserResponse(u *domain.User) UserResponse {
	return UserResponse{ID: u.ID, Nombre: u.Nombre, Email: u.Email}
}

// List handles GET /usuarios
func (h *UserHandlers) List(c *gin.Context) {
	users, err := h.userRepo.List(c.Request.Context())
	if err != nil {
		log.Printf("listing users failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal server error"})
		return
	}

	data := make([]UserResponse, 0, len(users))
	for i := range users {
		data = append(data, toUserResponse(&users[i]))
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

// Get handles GET /usuarios/:id
func (h *UserHandlers) Get(c *gin.Context) {
	id := parseID(c)

	user, err := h.userRepo.FindByID(c.Request.Context(), id)
	if err != nil {
		if err == domain.ErrUserNotFound {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "user not found"})
			return
		}
		log.Printf("fetching user failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": toUserResponse(user)})
}

// Create handles POST /usuarios
func (h *UserHandlers) Create(c *gin.Context) {
	var req UserCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	hash, err := h.passwordSvc.Hash(req.Password)
	if err != nil {
		log.Printf("hashing password failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal server error"})
		return
	}

	user := &domain.User{Nombre: req.Nombre, Email: req.Email, PasswordHash: hash}
	if err := h.userRepo.Create(c.Request.Context(), user); err != nil {
		log.Printf("creating user failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "userId": user.ID})
}

// Update handles PUT /usuarios/:id. Absent fields keep their stored values.
func (h *UserHandlers) Update(c *gin.Context) {
	id := parseID(c)

	var req UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if err := h.userRepo.UpdateProfile(c.Request.Context(), id, req.Nombre, req.Email); err != nil {
		if err == domain.ErrUserNotFound {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "user not found"})
			return
		}
		log.Printf("updating user failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Delete handles DELETE /usuarios/:id
func (h *UserHandlers) Delete(c *gin.Context) {
	id := parseID(c)

	if err := h.userRepo.Delete(c.Request.Context(), id); err != nil {
		if err == domain.ErrUserNotFound {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "user not found"})
			return
		}
		log.Printf("deleting user failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// parseID reads the :id path parameter. Routes mount ValidateIDParam
// first, so the parameter is already known to be a positive integer.
func parseID(c *gin.Context) uint {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(id)
}
