package domain

import "errors"

// Authentication errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserAlreadyExists  = errors.New("user already exists")
)

// Token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
)

// Resource errors
var (
	ErrDriverNotFound  = errors.New("driver not found")
	ErrVehicleNotFound = errors.New("vehicle not found")
	ErrTripNotFound    = errors.New("trip not found")
)
