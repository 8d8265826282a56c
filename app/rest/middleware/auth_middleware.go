package middleware

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"student-registry/app/domain"
	"student-registry/app/port"
)

// Context keys set by RequireAuth for downstream handlers.
const (
	ContextUserID    = "user_id"
	ContextUserEmail = "user_email"
)

// AuthMiddleware guards protected routes behind session verification.
type AuthMiddleware struct {
	authUsecase port.AuthUsecase
	logger      *slog.Logger
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(authUsecase port.AuthUsecase, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		authUsecase: authUsecase,
		logger:      logger.With("component", "auth_middleware"),
	}
}

// RequireAuth fails closed before any protected handler runs: a missing
// cookie is 401, an invalid or expired token is 403. On success the
// decoded identity is attached to the request context. Verification is
// pure; no store access happens here.
func (m *AuthMiddleware) RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(domain.SessionCookieName)
			if err != nil || cookie.Value == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			authCtx, err := m.authUsecase.VerifyToken(cookie.Value)
			if err != nil {
				m.logger.Debug("session verification failed", "error", err)
				return echo.NewHTTPError(http.StatusForbidden, "invalid or expired session")
			}

			c.Set(ContextUserID, authCtx.UserID)
			c.Set(ContextUserEmail, authCtx.Email)

			return next(c)
		}
	}
}
