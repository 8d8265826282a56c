package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"student-registry/app/domain"
	"student-registry/app/port"
	"student-registry/app/utils/validator"
)

// AuthUsecase implements registration, login and token verification.
type AuthUsecase struct {
	users  port.UserRepository
	hasher port.PasswordHasher
	tokens port.TokenIssuer
	logger *slog.Logger
}

// NewAuthUsecase creates a new AuthUsecase instance
func NewAuthUsecase(users port.UserRepository, hasher port.PasswordHasher, tokens port.TokenIssuer, logger *slog.Logger) *AuthUsecase {
	return &AuthUsecase{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		logger: logger.With("component", "auth_usecase"),
	}
}

const minPasswordLength = 8

// Register validates input, enforces email uniqueness and stores a new
// credential. Validation happens before any store access. The returned
// user never carries the password hash for callers to expose; handlers
// serialize the Summary projection only.
func (uc *AuthUsecase) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	if !validator.IsValidEmail(email) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidEmail, email)
	}
	if len(password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrInvalidInput, minPasswordLength)
	}

	// Fast-path duplicate check; the store's uniqueness constraint
	// remains the authoritative guard for the races this misses.
	exists, err := uc.users.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailAlreadyRegistered
	}

	hash, err := uc.hasher.Hash(password)
	if err != nil {
		uc.logger.Error("password hashing failed", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := uc.users.Create(ctx, name, email, hash)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("user registered", "user_id", user.ID)
	return user, nil
}

// Login verifies credentials and issues a session token. An unknown
// email and a wrong password both return domain.ErrInvalidCredentials,
// so the response cannot be used to enumerate registered emails. A
// malformed stored hash is logged as an internal failure but presents
// to the client exactly like a credential mismatch.
func (uc *AuthUsecase) Login(ctx context.Context, email, password string) (*port.LoginResult, error) {
	user, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := uc.hasher.Verify(password, user.PasswordHash); err != nil {
		if !errors.Is(err, domain.ErrPasswordMismatch) {
			uc.logger.Error("password verification failed", "user_id", user.ID, "error", err)
		}
		return nil, domain.ErrInvalidCredentials
	}

	token, err := uc.tokens.Issue(user.ID, user.Email)
	if err != nil {
		uc.logger.Error("token issuance failed", "user_id", user.ID, "error", err)
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	uc.logger.Info("user logged in", "user_id", user.ID)
	return &port.LoginResult{
		Token: token,
		User:  user,
	}, nil
}

// VerifyToken checks a session token and returns the identity it
// encodes. Pure verification; no store access.
func (uc *AuthUsecase) VerifyToken(token string) (*domain.AuthContext, error) {
	return uc.tokens.Verify(token)
}
