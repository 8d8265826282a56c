package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"student-registry/app/domain"
	"student-registry/app/port"
	"student-registry/app/utils/validator"
)

// AuthHandler handles registration, login, logout and session probing.
type AuthHandler struct {
	authUsecase   port.AuthUsecase
	validator     *validator.Validator
	cookieTTL     time.Duration
	secureCookies bool
	logger        *slog.Logger
}

// NewAuthHandler creates a new auth handler. secureCookies should be on
// in any non-local deployment.
func NewAuthHandler(authUsecase port.AuthUsecase, cookieTTL time.Duration, secureCookies bool, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUsecase:   authUsecase,
		validator:     validator.New(),
		cookieTTL:     cookieTTL,
		secureCookies: secureCookies,
		logger:        logger.With("component", "auth_handler"),
	}
}

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Message string             `json:"message"`
	User    domain.UserSummary `json:"user"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type validateResponse struct {
	Valid bool `json:"valid"`
}

// Register handles POST /register.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := h.validator.Validate(&req); err != nil {
		return mapDomainError(err)
	}

	user, err := h.authUsecase.Register(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return mapDomainError(err)
	}

	return c.JSON(http.StatusCreated, user.Summary())
}

// Login handles POST /login. On success the session token is bound to
// an http-only cookie; the body carries only the user summary.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := h.validator.Validate(&req); err != nil {
		return mapDomainError(err)
	}

	result, err := h.authUsecase.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return mapDomainError(err)
	}

	c.SetCookie(h.sessionCookie(result.Token, int(h.cookieTTL.Seconds())))

	return c.JSON(http.StatusOK, loginResponse{
		Message: "login successful",
		User:    result.User.Summary(),
	})
}

// Logout handles POST /logout. Tokens are stateless, so the server
// cannot revoke an unexpired one; logout instructs the client to
// discard its cookie.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(h.sessionCookie("", -1))
	return c.JSON(http.StatusOK, messageResponse{Message: "logged out"})
}

// ValidateSession handles GET /validate-session. The session gate has
// already admitted the request, so reaching this handler means the
// token is valid.
func (h *AuthHandler) ValidateSession(c echo.Context) error {
	return c.JSON(http.StatusOK, validateResponse{Valid: true})
}

func (h *AuthHandler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     domain.SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteStrictMode,
	}
}
