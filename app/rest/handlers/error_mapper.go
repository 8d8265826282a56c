package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"student-registry/app/domain"
	"student-registry/app/utils/validator"
)

// mapDomainError converts a domain error into an appropriate
// echo.HTTPError. Store and other unexpected failures collapse to a
// generic 500; their detail stays in server-side logs only.
func mapDomainError(err error) *echo.HTTPError {
	var vErr *validator.ValidationError
	if errors.As(err, &vErr) {
		return echo.NewHTTPError(http.StatusBadRequest, vErr.Errors)
	}

	switch {
	case errors.Is(err, domain.ErrInvalidEmail):
		return echo.NewHTTPError(http.StatusBadRequest, "invalid email address")

	case errors.Is(err, domain.ErrInvalidInput):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())

	case errors.Is(err, domain.ErrEmailAlreadyRegistered):
		return echo.NewHTTPError(http.StatusConflict, "email already registered")

	case errors.Is(err, domain.ErrInvalidCredentials):
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")

	case errors.Is(err, domain.ErrSessionExpired),
		errors.Is(err, domain.ErrInvalidSession):
		return echo.NewHTTPError(http.StatusForbidden, "invalid or expired session")

	case errors.Is(err, domain.ErrStudentNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "student not found")

	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
