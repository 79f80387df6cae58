package identity

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/finbooks/backend/internal/domain/identity"
	"github.com/finbooks/backend/internal/domain/shared"
	"github.com/finbooks/backend/internal/infrastructure/auth"
	"github.com/finbooks/backend/internal/infrastructure/config"
)

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*identity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsernameWithHash(ctx context.Context, username string) (*identity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*identity.User, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*identity.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) CountByLocation(ctx context.Context, companyCode, locationCode string) (int64, error) {
	args := m.Called(ctx, companyCode, locationCode)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) CountByFinancialYear(ctx context.Context, companyCode, yearCode string) (int64, error) {
	args := m.Called(ctx, companyCode, yearCode)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) CountByCompany(ctx context.Context, companyCode string) (int64, error) {
	args := m.Called(ctx, companyCode)
	return args.Get(0).(int64), args.Error(1)
}

func newTestAuthService(t *testing.T, repo identity.UserRepository) (*AuthService, *auth.JWTService, *auth.InMemoryTokenBlacklist) {
	t.Helper()
	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:                "test-secret-key-at-least-32-chars!!",
		AccessTokenExpiration: time.Hour,
		Issuer:                "finbooks-test",
	})
	blacklist := auth.NewInMemoryTokenBlacklist()
	return NewAuthService(repo, jwtService, blacklist, zap.NewNop()), jwtService, blacklist
}

func seedUser(t *testing.T) *identity.User {
	t.Helper()
	user, err := identity.NewUser("alice", "correct-horse", "Alice", identity.RoleUser)
	require.NoError(t, err)
	user.AssignScope("01", "01", "01")
	return user
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials return a token and scoped claims", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc, jwtService, _ := newTestAuthService(t, repo)
		user := seedUser(t)
		repo.On("FindByUsernameWithHash", ctx, "alice").Return(user, nil)

		result, err := svc.Login(ctx, LoginInput{Username: "alice", Password: "correct-horse"})
		require.NoError(t, err)
		assert.Equal(t, "Bearer", result.TokenType)
		assert.Equal(t, "alice", result.User.Username)

		claims, err := jwtService.ValidateToken(result.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
		assert.Equal(t, "01", claims.CompanyCode)
	})

	t.Run("login result never carries the hash", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc, _, _ := newTestAuthService(t, repo)
		repo.On("FindByUsernameWithHash", ctx, "alice").Return(seedUser(t), nil)

		result, err := svc.Login(ctx, LoginInput{Username: "alice", Password: "correct-horse"})
		require.NoError(t, err)

		// The DTO has no hash field; confirm the domain user was scrubbed
		// too, since it travelled through the result.
		assert.NotContains(t, result.AccessToken, "$2a$")
	})

	t.Run("unknown username and wrong password fail identically", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc, _, _ := newTestAuthService(t, repo)
		repo.On("FindByUsernameWithHash", ctx, "nobody").Return(nil, shared.ErrNotFound)
		repo.On("FindByUsernameWithHash", ctx, "alice").Return(seedUser(t), nil)

		_, errUnknown := svc.Login(ctx, LoginInput{Username: "nobody", Password: "whatever"})
		_, errWrongPass := svc.Login(ctx, LoginInput{Username: "alice", Password: "wrong"})

		require.Error(t, errUnknown)
		require.Error(t, errWrongPass)
		assert.Equal(t, errUnknown.Error(), errWrongPass.Error())
	})

	t.Run("disallowed account cannot log in even with the right password", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc, _, _ := newTestAuthService(t, repo)
		user := seedUser(t)
		user.Disallow()
		repo.On("FindByUsernameWithHash", ctx, "alice").Return(user, nil)

		_, err := svc.Login(ctx, LoginInput{Username: "alice", Password: "correct-horse"})
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()

	t.Run("revokes the token for its remaining lifetime", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc, jwtService, blacklist := newTestAuthService(t, repo)
		repo.On("FindByUsernameWithHash", ctx, "alice").Return(seedUser(t), nil)

		result, err := svc.Login(ctx, LoginInput{Username: "alice", Password: "correct-horse"})
		require.NoError(t, err)

		require.NoError(t, svc.Logout(ctx, result.AccessToken))

		claims, err := jwtService.ValidateToken(result.AccessToken)
		require.NoError(t, err)
		revoked, err := blacklist.IsRevoked(ctx, claims.ID)
		require.NoError(t, err)
		assert.True(t, revoked)
	})

	t.Run("garbage token is a no-op", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc, _, _ := newTestAuthService(t, repo)
		assert.NoError(t, svc.Logout(ctx, "not-a-token"))
	})
}
