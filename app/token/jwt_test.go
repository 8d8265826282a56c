package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"student-registry/app/domain"
)

const testSecret = "test-signing-secret"

func TestJWTManager_RoundTrip(t *testing.T) {
	m := NewJWTManager(testSecret, time.Hour)

	signed, err := m.Issue(42, "ana@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	authCtx, err := m.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, int64(42), authCtx.UserID)
	assert.Equal(t, "ana@example.com", authCtx.Email)
}

func TestJWTManager_ExpiredToken(t *testing.T) {
	m := NewJWTManager(testSecret, time.Hour)

	issuedAt := time.Now()
	m.now = func() time.Time { return issuedAt }

	signed, err := m.Issue(7, "old@example.com")
	require.NoError(t, err)

	// Verification inside the TTL still succeeds.
	m.now = func() time.Time { return issuedAt.Add(59 * time.Minute) }
	_, err = m.Verify(signed)
	require.NoError(t, err)

	// Past the TTL the token is rejected as expired.
	m.now = func() time.Time { return issuedAt.Add(61 * time.Minute) }
	_, err = m.Verify(signed)
	assert.ErrorIs(t, err, domain.ErrSessionExpired)
}

func TestJWTManager_WrongSecret(t *testing.T) {
	m := NewJWTManager(testSecret, time.Hour)
	other := NewJWTManager("different-secret", time.Hour)

	signed, err := m.Issue(1, "a@b.com")
	require.NoError(t, err)

	_, err = other.Verify(signed)
	assert.ErrorIs(t, err, domain.ErrInvalidSession)
}

func TestJWTManager_GarbageToken(t *testing.T) {
	m := NewJWTManager(testSecret, time.Hour)

	_, err := m.Verify("definitely.not.ajwt")
	assert.ErrorIs(t, err, domain.ErrInvalidSession)
}

func TestJWTManager_TokensCarryUniqueIDs(t *testing.T) {
	m := NewJWTManager(testSecret, time.Hour)

	first, err := m.Issue(1, "a@b.com")
	require.NoError(t, err)
	second, err := m.Issue(1, "a@b.com")
	require.NoError(t, err)

	// Same subject, but each token gets its own jti.
	assert.NotEqual(t, first, second)
}
