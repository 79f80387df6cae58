package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finbooks/backend/internal/domain/company"
	"github.com/finbooks/backend/internal/domain/shared"
)

func mustLocation(t *testing.T, companyCode, code, name string) *company.Location {
	t.Helper()
	l, err := company.NewLocation(companyCode, code, name)
	require.NoError(t, err)
	return l
}

func TestGormLocationRepository_CompoundUniqueness(t *testing.T) {
	ctx := context.Background()
	repo := NewGormLocationRepository(newTestDatabase(t))

	require.NoError(t, repo.Create(ctx, mustLocation(t, "01", "01", "Head Office")))

	t.Run("duplicate within the company conflicts", func(t *testing.T) {
		err := repo.Create(ctx, mustLocation(t, "01", "01", "Duplicate"))
		assert.ErrorIs(t, err, shared.ErrAlreadyExists)
	})

	t.Run("same code under another company is fine", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, mustLocation(t, "02", "01", "Warehouse")))

		found, err := repo.FindByCode(ctx, "02", "01")
		require.NoError(t, err)
		assert.Equal(t, "Warehouse", found.Name)
	})
}

func TestGormLocationRepository_ListCodes(t *testing.T) {
	ctx := context.Background()
	repo := NewGormLocationRepository(newTestDatabase(t))

	require.NoError(t, repo.Create(ctx, mustLocation(t, "01", "01", "Head Office")))
	require.NoError(t, repo.Create(ctx, mustLocation(t, "01", "03", "Warehouse")))
	require.NoError(t, repo.Create(ctx, mustLocation(t, "02", "01", "Other Head Office")))

	codes, err := repo.ListCodes(ctx, "01")
	require.NoError(t, err)
	assert.Equal(t, []string{"01", "03"}, codes)
	assert.Equal(t, "04", company.NextCode(codes))
}

func TestGormLocationRepository_FindByCompany(t *testing.T) {
	ctx := context.Background()
	repo := NewGormLocationRepository(newTestDatabase(t))

	require.NoError(t, repo.Create(ctx, mustLocation(t, "01", "01", "Head Office")))
	require.NoError(t, repo.Create(ctx, mustLocation(t, "01", "02", "Warehouse")))
	require.NoError(t, repo.Create(ctx, mustLocation(t, "02", "01", "Elsewhere")))

	filter := shared.Filter{Page: 1, PageSize: 10, SortBy: "code", SortOrder: "asc"}
	locations, total, err := repo.FindByCompany(ctx, "01", filter)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, locations, 2)
	assert.Equal(t, "01", locations[0].Code)
	assert.Equal(t, "02", locations[1].Code)
}

func TestGormLocationRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := NewGormLocationRepository(newTestDatabase(t))

	l := mustLocation(t, "01", "01", "Head Office")
	require.NoError(t, repo.Create(ctx, l))

	l.MarkHeadOffice(true)
	require.NoError(t, repo.Update(ctx, l))

	found, err := repo.FindByID(ctx, l.ID)
	require.NoError(t, err)
	assert.True(t, found.IsHeadOffice)
}
