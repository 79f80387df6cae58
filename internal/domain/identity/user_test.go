package identity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("creates user with hashed password", func(t *testing.T) {
		user, err := NewUser("kashif", "abc@123", "Kashif Mehmood", RoleUser)

		require.NoError(t, err)
		assert.Equal(t, "kashif", user.Username)
		assert.Equal(t, "Kashif Mehmood", user.FullName)
		assert.Equal(t, RoleUser, user.Role)
		assert.True(t, user.IsAllowed)
		assert.NotEmpty(t, user.PasswordHash)
		assert.NotContains(t, user.PasswordHash, "abc@123")
	})

	t.Run("normalizes username to lowercase", func(t *testing.T) {
		user, err := NewUser("  Kashif ", "abc@123", "", RoleUser)

		require.NoError(t, err)
		assert.Equal(t, "kashif", user.Username)
	})

	t.Run("rejects short username", func(t *testing.T) {
		_, err := NewUser("ab", "abc@123", "", RoleUser)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least 3 characters")
	})

	t.Run("rejects invalid username characters", func(t *testing.T) {
		_, err := NewUser("kashif khan", "abc@123", "", RoleUser)

		assert.Error(t, err)
	})

	t.Run("rejects short password", func(t *testing.T) {
		_, err := NewUser("kashif", "abc", "", RoleUser)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least 6 characters")
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		_, err := NewUser("kashif", "abc@123", "", Role("superuser"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "user or admin")
	})
}

func TestVerifyPassword(t *testing.T) {
	user, err := NewUser("kashif", "abc@123", "", RoleUser)
	require.NoError(t, err)

	t.Run("matches the original password", func(t *testing.T) {
		assert.True(t, user.VerifyPassword("abc@123"))
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		assert.False(t, user.VerifyPassword("wrong"))
	})

	t.Run("rejects against an empty hash", func(t *testing.T) {
		ghost := &User{}
		assert.False(t, ghost.VerifyPassword("abc@123"))
	})
}

func TestSetPassword(t *testing.T) {
	user, err := NewUser("kashif", "abc@123", "", RoleUser)
	require.NoError(t, err)
	oldHash := user.PasswordHash

	require.NoError(t, user.SetPassword("new@456"))

	assert.NotEqual(t, oldHash, user.PasswordHash)
	assert.True(t, user.VerifyPassword("new@456"))
	assert.False(t, user.VerifyPassword("abc@123"))
}

func TestMenus(t *testing.T) {
	t.Run("deduplicates and trims menu names", func(t *testing.T) {
		user, err := NewUser("kashif", "abc@123", "", RoleUser)
		require.NoError(t, err)

		user.SetMenus([]string{"sales", " sales ", "", "purchases"})

		assert.Equal(t, []string{"sales", "purchases"}, user.AccessibleMenus)
		assert.True(t, user.HasMenu("sales"))
		assert.False(t, user.HasMenu("reports"))
	})

	t.Run("admin may open every menu", func(t *testing.T) {
		admin, err := NewUser("boss", "abc@123", "", RoleAdmin)
		require.NoError(t, err)

		assert.True(t, admin.HasMenu("anything"))
	})
}

func TestAllowGate(t *testing.T) {
	user, err := NewUser("kashif", "abc@123", "", RoleUser)
	require.NoError(t, err)

	assert.True(t, user.CanLogin())

	user.Disallow()
	assert.False(t, user.CanLogin())

	user.Allow()
	assert.True(t, user.CanLogin())
}

func TestAssignScope(t *testing.T) {
	user, err := NewUser("kashif", "abc@123", "", RoleUser)
	require.NoError(t, err)

	user.AssignScope("01", "02", "01")

	assert.Equal(t, "01", user.CompanyCode)
	assert.Equal(t, "02", user.LocationCode)
	assert.Equal(t, "01", user.YearCode)
}

func TestHashIsSalted(t *testing.T) {
	a, err := NewUser("usera", "abc@123", "", RoleUser)
	require.NoError(t, err)
	b, err := NewUser("userb", "abc@123", "", RoleUser)
	require.NoError(t, err)

	assert.NotEqual(t, a.PasswordHash, b.PasswordHash)
	assert.True(t, strings.HasPrefix(a.PasswordHash, "$2a$"))
}
