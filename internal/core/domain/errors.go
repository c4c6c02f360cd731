package domain

import "errors"

// Common domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrDuplicateEntry     = errors.New("duplicate entry")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Usuario errors
var (
	ErrUserNotFound          = errors.New("user not found")
	ErrUserAlreadyExists     = errors.New("user already exists")
	ErrInvalidIdentificacion = errors.New("identificacion must contain only digits")
	ErrWeakPassword          = errors.New("password must be at least 8 characters")
	ErrInvalidRole           = errors.New("invalid role")
	ErrCannotDeleteSelf      = errors.New("cannot delete your own account")
)

// Empeño and artículo errors
var (
	ErrEmpenoNotFound       = errors.New("empeno not found")
	ErrTipoArticuloNotFound = errors.New("tipo articulo not found")
	ErrTipoArticuloExists   = errors.New("tipo articulo already exists")
)

// Préstamo and interés errors
var (
	ErrLoanNotFound          = errors.New("loan not found")
	ErrInvalidLoanStatus     = errors.New("invalid loan status")
	ErrLoanStatusTransition  = errors.New("loan status transition not allowed")
	ErrInterestNotFound      = errors.New("interest installment not found")
	ErrInvalidInterestStatus = errors.New("invalid interest status")
)
