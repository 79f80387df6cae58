package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finbooks/backend/internal/domain/company"
	"github.com/finbooks/backend/internal/domain/shared"
)

func mustCompany(t *testing.T, code, name string) *company.Company {
	t.Helper()
	c, err := company.NewCompany(code, name)
	require.NoError(t, err)
	return c
}

func TestGormCompanyRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates and reads back", func(t *testing.T) {
		repo := NewGormCompanyRepository(newTestDatabase(t))

		c := mustCompany(t, "01", "Acme Traders")
		require.NoError(t, repo.Create(ctx, c))

		found, err := repo.FindByCode(ctx, "01")
		require.NoError(t, err)
		assert.Equal(t, c.ID, found.ID)
		assert.Equal(t, "Acme Traders", found.Name)
		assert.True(t, found.IsActive)
	})

	t.Run("duplicate code is rejected by the unique index", func(t *testing.T) {
		repo := NewGormCompanyRepository(newTestDatabase(t))

		require.NoError(t, repo.Create(ctx, mustCompany(t, "01", "First")))

		err := repo.Create(ctx, mustCompany(t, "01", "Second"))
		require.Error(t, err)
		assert.ErrorIs(t, err, shared.ErrAlreadyExists)
	})
}

func TestGormCompanyRepository_CodeSequence(t *testing.T) {
	ctx := context.Background()
	repo := NewGormCompanyRepository(newTestDatabase(t))

	t.Run("first code in an empty system", func(t *testing.T) {
		codes, err := repo.ListCodes(ctx)
		require.NoError(t, err)
		assert.Equal(t, "01", company.NextCode(codes))
	})

	t.Run("next code follows the highest existing one", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, mustCompany(t, "01", "First")))
		require.NoError(t, repo.Create(ctx, mustCompany(t, "02", "Second")))
		require.NoError(t, repo.Create(ctx, mustCompany(t, "05", "Fifth")))

		codes, err := repo.ListCodes(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"01", "02", "05"}, codes)
		assert.Equal(t, "06", company.NextCode(codes))
	})
}

func TestGormCompanyRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := NewGormCompanyRepository(newTestDatabase(t))

	c := mustCompany(t, "01", "Acme Traders")
	require.NoError(t, repo.Create(ctx, c))

	t.Run("persists field changes", func(t *testing.T) {
		require.NoError(t, c.Rename("Acme Trading Co"))
		c.Deactivate()
		require.NoError(t, repo.Update(ctx, c))

		found, err := repo.FindByID(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, "Acme Trading Co", found.Name)
		assert.False(t, found.IsActive)
	})

	t.Run("unknown id reports not found", func(t *testing.T) {
		ghost := mustCompany(t, "99", "Ghost")
		err := repo.Update(ctx, ghost)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormCompanyRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewGormCompanyRepository(newTestDatabase(t))

	c := mustCompany(t, "01", "Acme Traders")
	require.NoError(t, repo.Create(ctx, c))

	require.NoError(t, repo.Delete(ctx, c.ID))

	_, err := repo.FindByID(ctx, c.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, c.ID), shared.ErrNotFound)
}

func TestGormCompanyRepository_FindAll(t *testing.T) {
	ctx := context.Background()
	repo := NewGormCompanyRepository(newTestDatabase(t))

	require.NoError(t, repo.Create(ctx, mustCompany(t, "01", "Acme Traders")))
	require.NoError(t, repo.Create(ctx, mustCompany(t, "02", "Beta Mills")))
	require.NoError(t, repo.Create(ctx, mustCompany(t, "03", "Gamma Steel")))

	t.Run("paginates", func(t *testing.T) {
		filter := shared.Filter{Page: 1, PageSize: 2, SortBy: "code", SortOrder: "asc"}
		companies, total, err := repo.FindAll(ctx, filter)
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, companies, 2)
		assert.Equal(t, "01", companies[0].Code)
		assert.Equal(t, "02", companies[1].Code)
	})

	t.Run("searches by name", func(t *testing.T) {
		filter := shared.DefaultFilter()
		filter.Search = "Mills"
		companies, total, err := repo.FindAll(ctx, filter)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, companies, 1)
		assert.Equal(t, "02", companies[0].Code)
	})

	t.Run("unknown sort field falls back to the default", func(t *testing.T) {
		filter := shared.Filter{Page: 1, PageSize: 10, SortBy: "password; DROP TABLE companies", SortOrder: "asc"}
		companies, _, err := repo.FindAll(ctx, filter)
		require.NoError(t, err)
		assert.Len(t, companies, 3)
	})
}

func TestGormCompanyRepository_ExistsByCode(t *testing.T) {
	ctx := context.Background()
	repo := NewGormCompanyRepository(newTestDatabase(t))

	require.NoError(t, repo.Create(ctx, mustCompany(t, "01", "Acme Traders")))

	exists, err := repo.ExistsByCode(ctx, "01")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByCode(ctx, "02")
	require.NoError(t, err)
	assert.False(t, exists)
}
