package port

import (
	"context"

	"student-registry/app/domain"
)

// AuthUsecase defines authentication business logic interface
type AuthUsecase interface {
	// Register validates input and stores a new credential.
	Register(ctx context.Context, name, email, password string) (*domain.User, error)

	// Login verifies credentials and issues a session token.
	Login(ctx context.Context, email, password string) (*LoginResult, error)

	// VerifyToken checks a session token and returns the identity it encodes.
	VerifyToken(token string) (*domain.AuthContext, error)
}

// LoginResult carries the issued token and the authenticated user.
type LoginResult struct {
	Token string
	User  *domain.User
}

// UserRepository defines credential store data access interface
type UserRepository interface {
	Create(ctx context.Context, name, email, passwordHash string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

// PasswordHasher defines one-way salted password hashing
type PasswordHasher interface {
	// Hash returns the salted hash of plain.
	Hash(plain string) (string, error)

	// Verify returns nil when plain matches hash,
	// domain.ErrPasswordMismatch on a mismatch, and any other
	// error when the stored hash is malformed.
	Verify(plain, hash string) error
}

// TokenIssuer defines session token issuance and verification
type TokenIssuer interface {
	Issue(userID int64, email string) (string, error)
	Verify(token string) (*domain.AuthContext, error)
}
