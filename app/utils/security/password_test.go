package security

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"student-registry/app/domain"
)

func TestBcryptHasher_HashIsSaltedPerCall(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	first, err := hasher.Hash("pw123456")
	require.NoError(t, err)
	second, err := hasher.Hash("pw123456")
	require.NoError(t, err)

	// Distinct salts make the hashes differ, yet both verify.
	assert.NotEqual(t, first, second)
	assert.NoError(t, hasher.Verify("pw123456", first))
	assert.NoError(t, hasher.Verify("pw123456", second))
}

func TestBcryptHasher_VerifyMismatch(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("correct-password")
	require.NoError(t, err)

	err = hasher.Verify("wrong-password", hash)
	assert.ErrorIs(t, err, domain.ErrPasswordMismatch)
}

func TestBcryptHasher_MalformedHashIsNotAMismatch(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	err := hasher.Verify("any-password", "not-a-bcrypt-hash")
	require.Error(t, err)
	assert.False(t, errors.Is(err, domain.ErrPasswordMismatch),
		"a malformed stored hash must be distinguishable from a credential mismatch")
}

func TestBcryptHasher_RejectsOverlongPassword(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	_, err := hasher.Hash(strings.Repeat("a", 73))
	assert.Error(t, err)
}

func TestNewBcryptHasher_OutOfRangeCostFallsBack(t *testing.T) {
	hasher := NewBcryptHasher(99)
	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
}
