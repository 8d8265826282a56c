package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"student-registry/app/domain"
	"student-registry/app/port"
)

// Bounded timeout on every store query so a stuck statement surfaces
// as an error instead of hanging the request.
const queryTimeout = 5 * time.Second

// UserRepository implements port.UserRepository for PostgreSQL
type UserRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(db DatabaseIface, logger *slog.Logger) port.UserRepository {
	return &UserRepository{
		db:     db,
		logger: logger.With("component", "user_repository"),
	}
}

// Create inserts a new user credential. The users.email uniqueness
// constraint is the authoritative guard against duplicate registration;
// a unique violation maps to domain.ErrEmailAlreadyRegistered.
func (r *UserRepository) Create(ctx context.Context, name, email, passwordHash string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := `
		INSERT INTO users (name, email, password)
		VALUES ($1, $2, $3)
		RETURNING id, name, email`

	user := &domain.User{}
	err := r.db.QueryRow(ctx, query, name, email, passwordHash).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrEmailAlreadyRegistered
		}
		r.logger.Error("failed to insert user", "error", err)
		return nil, fmt.Errorf("%w: failed to insert user: %w", domain.ErrStore, err)
	}

	return user, nil
}

// GetByEmail looks up a credential by exact email match.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := `
		SELECT id, name, email, password
		FROM users
		WHERE email = $1`

	user := &domain.User{}
	err := r.db.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		r.logger.Error("failed to get user by email", "error", err)
		return nil, fmt.Errorf("%w: failed to get user: %w", domain.ErrStore, err)
	}

	return user, nil
}

// EmailExists reports whether a credential with this exact email exists.
// Fast-path check only; the insert's uniqueness constraint closes the
// check-then-insert race.
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		r.logger.Error("failed to check email existence", "error", err)
		return false, fmt.Errorf("%w: failed to check email: %w", domain.ErrStore, err)
	}

	return exists, nil
}
