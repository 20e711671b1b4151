package domain

import "errors"

var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("access forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrValidation         = errors.New("validation failed")

	ErrUserNotFound  = errors.New("user not found")
	ErrUserExists    = errors.New("user already exists")
	ErrBootstrapUsed = errors.New("bootstrap window closed")

	ErrBusNotFound     = errors.New("bus not found")
	ErrRouteNotFound   = errors.New("route not found")
	ErrTripNotFound    = errors.New("trip not found")
	ErrDuplicate       = errors.New("record already exists")
	ErrInvalidLocation = errors.New("invalid location")
)
