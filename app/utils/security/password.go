package security

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"student-registry/app/domain"
)

// bcrypt truncates input beyond this length silently; reject instead.
const maxPasswordLength = 72

// BcryptHasher hashes passwords with bcrypt at a configurable cost.
// Implements port.PasswordHasher.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a bcrypt password hasher. An out-of-range cost
// falls back to bcrypt.DefaultCost; config validation rejects it earlier.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash returns the salted bcrypt hash of plain. The salt is generated
// per call, so two hashes of the same input differ.
func (h *BcryptHasher) Hash(plain string) (string, error) {
	if len(plain) > maxPasswordLength {
		return "", fmt.Errorf("password exceeds %d bytes", maxPasswordLength)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Verify compares plain against a stored hash. A mismatch yields
// domain.ErrPasswordMismatch; any other error means the stored hash is
// malformed and must be treated as an internal failure, not a mismatch.
// bcrypt's comparison is constant-time.
func (h *BcryptHasher) Verify(plain, hash string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	if err == nil {
		return nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return domain.ErrPasswordMismatch
	}
	return fmt.Errorf("failed to verify password hash: %w", err)
}
