package rest

import (
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"student-registry/app/port"
	"student-registry/app/rest/handlers"
	custommw "student-registry/app/rest/middleware"
)

// RouterConfig holds router configuration
type RouterConfig struct {
	Logger         *slog.Logger
	AuthUsecase    port.AuthUsecase
	StudentUsecase port.StudentUsecase
	HealthChecker  handlers.HealthChecker
	CookieTTL      time.Duration
	SecureCookies  bool
	AllowedOrigin  string
}

// NewRouter creates and configures the Echo router
func NewRouter(config RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	authHandler := handlers.NewAuthHandler(config.AuthUsecase, config.CookieTTL, config.SecureCookies, config.Logger)
	studentHandler := handlers.NewStudentHandler(config.StudentUsecase, config.Logger)
	healthHandler := handlers.NewHealthHandler(config.HealthChecker, config.Logger)

	authMiddleware := custommw.NewAuthMiddleware(config.AuthUsecase, config.Logger)

	// Global middleware
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(custommw.NewCORS(config.AllowedOrigin))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogError:    true,
		LogMethod:   true,
		LogLatency:  true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			if v.Error == nil {
				config.Logger.Info("request completed",
					"method", v.Method,
					"uri", v.URI,
					"status", v.Status,
					"latency_ms", v.Latency.Milliseconds())
			} else {
				config.Logger.Error("request failed",
					"method", v.Method,
					"uri", v.URI,
					"status", v.Status,
					"latency_ms", v.Latency.Milliseconds(),
					"error", v.Error.Error())
			}
			return nil
		},
	}))

	// Public endpoints
	e.GET("/health", healthHandler.Handle)
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)
	e.POST("/logout", authHandler.Logout)

	// Session probe runs behind the gate; reaching the handler means
	// the token verified.
	e.GET("/validate-session", authHandler.ValidateSession, authMiddleware.RequireAuth())

	// Protected student CRUD
	students := e.Group("/students", authMiddleware.RequireAuth())
	students.GET("", studentHandler.List)
	students.POST("", studentHandler.Create)
	students.PUT("/:id", studentHandler.Update)
	students.DELETE("/:id", studentHandler.Delete)

	return e
}
