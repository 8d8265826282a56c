package domain

import "errors"

// Registration errors
var (
	ErrInvalidInput           = errors.New("invalid input")
	ErrInvalidEmail           = errors.New("invalid email")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
)

// Authentication errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPasswordMismatch   = errors.New("password mismatch")
	ErrUserNotFound       = errors.New("user not found")
)

// Session errors
var (
	ErrInvalidSession = errors.New("invalid session")
	ErrSessionExpired = errors.New("session expired")
)

// Resource errors
var (
	ErrStudentNotFound = errors.New("student not found")
)

// Infrastructure errors
var (
	ErrStore = errors.New("store error")
)
