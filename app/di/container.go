package di

import (
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"

	"student-registry/app/config"
	"student-registry/app/driver/postgres"
	"student-registry/app/port"
	"student-registry/app/rest"
	"student-registry/app/token"
	"student-registry/app/usecase"
	"student-registry/app/utils/security"
)

// Container holds all dependencies for the application
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Drivers
	DB *postgres.DB

	// Usecases
	AuthUsecase    port.AuthUsecase
	StudentUsecase port.StudentUsecase
}

// NewContainer creates and initializes a new dependency injection container
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	container := &Container{
		Config: cfg,
		Logger: logger,
	}

	var err error
	container.DB, err = postgres.NewConnection(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Repositories
	userRepository := postgres.NewUserRepository(container.DB.Pool(), logger)
	studentRepository := postgres.NewStudentRepository(container.DB.Pool(), logger)

	// Security primitives
	hasher := security.NewBcryptHasher(cfg.BcryptCost)
	tokens := token.NewJWTManager(cfg.TokenSecret, cfg.TokenTTL)

	// Usecases
	container.AuthUsecase = usecase.NewAuthUsecase(userRepository, hasher, tokens, logger)
	container.StudentUsecase = usecase.NewStudentUsecase(studentRepository, logger)

	logger.Info("container initialized")

	return container, nil
}

// CreateRouter creates and returns a fully configured Echo router
func (c *Container) CreateRouter() *echo.Echo {
	return rest.NewRouter(rest.RouterConfig{
		Logger:         c.Logger,
		AuthUsecase:    c.AuthUsecase,
		StudentUsecase: c.StudentUsecase,
		HealthChecker:  c.DB,
		CookieTTL:      c.Config.TokenTTL,
		SecureCookies:  !c.Config.IsDevelopment(),
		AllowedOrigin:  c.Config.AllowedOrigin,
	})
}

// Close releases held resources.
func (c *Container) Close() {
	if c.DB != nil {
		c.DB.Close()
	}
}
