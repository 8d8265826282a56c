package usecase

import (
	"context"
	"io"
	"log/slog"

	"student-registry/app/domain"
	"student-registry/app/port"
)

// mockUserRepository implements port.UserRepository for testing.
type mockUserRepository struct {
	users map[string]*domain.User

	createErr error
	existsErr error

	createCalls int
	existsCalls int
	getCalls    int
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{users: make(map[string]*domain.User)}
}

func (m *mockUserRepository) Create(_ context.Context, name, email, passwordHash string) (*domain.User, error) {
	m.createCalls++
	if m.createErr != nil {
		return nil, m.createErr
	}
	if _, ok := m.users[email]; ok {
		return nil, domain.ErrEmailAlreadyRegistered
	}
	user := &domain.User{
		ID:           int64(len(m.users) + 1),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
	}
	m.users[email] = user
	return user, nil
}

func (m *mockUserRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	m.getCalls++
	user, ok := m.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (m *mockUserRepository) EmailExists(_ context.Context, email string) (bool, error) {
	m.existsCalls++
	if m.existsErr != nil {
		return false, m.existsErr
	}
	_, ok := m.users[email]
	return ok, nil
}

func (m *mockUserRepository) storeAccesses() int {
	return m.createCalls + m.existsCalls + m.getCalls
}

// mockHasher implements port.PasswordHasher with reversible fakes.
type mockHasher struct {
	hashErr   error
	verifyErr error
}

func (m *mockHasher) Hash(plain string) (string, error) {
	if m.hashErr != nil {
		return "", m.hashErr
	}
	return "hashed:" + plain, nil
}

func (m *mockHasher) Verify(plain, hash string) error {
	if m.verifyErr != nil {
		return m.verifyErr
	}
	if hash != "hashed:"+plain {
		return domain.ErrPasswordMismatch
	}
	return nil
}

// mockTokenIssuer implements port.TokenIssuer.
type mockTokenIssuer struct {
	issueErr  error
	verifyErr error
	authCtx   *domain.AuthContext
}

func (m *mockTokenIssuer) Issue(userID int64, email string) (string, error) {
	if m.issueErr != nil {
		return "", m.issueErr
	}
	return "token-for:" + email, nil
}

func (m *mockTokenIssuer) Verify(token string) (*domain.AuthContext, error) {
	if m.verifyErr != nil {
		return nil, m.verifyErr
	}
	return m.authCtx, nil
}

func newTestAuthUsecase(repo *mockUserRepository, hasher port.PasswordHasher, tokens port.TokenIssuer) *AuthUsecase {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewAuthUsecase(repo, hasher, tokens, logger)
}
