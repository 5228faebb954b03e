package domain

import (
	"context"
	"time"
)

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	List(ctx context.Context) ([]User, error)
	UpdateProfile(ctx context.Context, id uint, nombre, email string) error
	Delete(ctx context.Context, id uint) error
	FindRolesByUserID(ctx context.Context, userID uint) ([]string, error)
}

// DriverRepository defines driver data access operations
type DriverRepository interface {
	List(ctx context.Context) ([]Driver, error)
	FindByID(ctx context.Context, id uint) (*Driver, error)
	Create(ctx context.Context, driver *Driver) error
	Update(ctx context.Context, driver *Driver) error
	Delete(ctx context.Context, id uint) error
}

// VehicleFilter narrows vehicle listings. Zero values mean "no filter".
type VehicleFilter struct {
	Marca   string
	Modelo  string
	Patente string
	Desde   *int // anio >= Desde
	Hasta   *int // anio <= Hasta
}

// VehicleRepository defines vehicle data access operations
type VehicleRepository interface {
	List(ctx context.Context, filter VehicleFilter) ([]Vehicle, error)
	FindByID(ctx context.Context, id uint) (*Vehicle, error)
	Create(ctx context.Context, vehicle *Vehicle) error
	Update(ctx context.Context, vehicle *Vehicle) error
	Delete(ctx context.Context, id uint) error
}

// TripFilter narrows trip listings. Zero values mean "no filter".
type TripFilter struct {
	VehiculoID  *uint
	ConductorID *uint
	Origen      string
	Destino     string
	FechaDesde  string // fecha_salida >= FechaDesde
	FechaHasta  string // fecha_llegada <= FechaHasta
}

// TripRepository defines trip data access operations
type TripRepository interface {
	List(ctx context.Context, filter TripFilter) ([]Trip, error)
	FindByID(ctx context.Context, id uint) (*Trip, error)
	Create(ctx context.Context, trip *Trip) error
	Update(ctx context.Context, trip *Trip) error
	Delete(ctx context.Context, id uint) error
}

// AuthService defines authentication business logic
type AuthService interface {
	Register(ctx context.Context, nombre, email, password string) (*User, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	UpdateProfile(ctx context.Context, id uint, nombre, email string) error
	Logout(ctx context.Context, claims *TokenClaims) error
}

// PasswordService defines password operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines bearer token operations
type TokenService interface {
	Issue(userID uint) (string, error)
	Validate(token string) (*TokenClaims, error)
}

// TokenDenylist revokes bearer tokens ahead of their natural expiry.
// It is optional infrastructure; when revocation is disabled a no-op
// implementation is wired instead.
type TokenDenylist interface {
	Revoke(ctx context.Context, jti string, until time.Time) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// TokenClaims represents the verified content of a bearer token
type TokenClaims struct {
	UserID    uint   `json:"userId"`
	JTI       string `json:"jti"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}
