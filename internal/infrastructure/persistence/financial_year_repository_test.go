package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finbooks/backend/internal/domain/company"
	"github.com/finbooks/backend/internal/domain/shared"
)

func mustYear(t *testing.T, companyCode, code, title string, start, end time.Time) *company.FinancialYear {
	t.Helper()
	fy, err := company.NewFinancialYear(companyCode, code, title, start, end)
	require.NoError(t, err)
	return fy
}

func yearSpan(year int) (time.Time, time.Time) {
	start := time.Date(year, time.July, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year+1, time.June, 30, 0, 0, 0, 0, time.UTC)
	return start, end
}

func TestGormFinancialYearRepository_DefaultSingleton(t *testing.T) {
	ctx := context.Background()
	repo := NewGormFinancialYearRepository(newTestDatabase(t))

	start23, end23 := yearSpan(2023)
	start24, end24 := yearSpan(2024)

	fy23 := mustYear(t, "01", "01", "FY 2023-24", start23, end23)
	fy23.SetDefault(true)
	require.NoError(t, repo.Create(ctx, fy23))

	fy24 := mustYear(t, "01", "02", "FY 2024-25", start24, end24)
	require.NoError(t, repo.Create(ctx, fy24))

	t.Run("creating a new default clears the previous one", func(t *testing.T) {
		fy24.SetDefault(true)
		require.NoError(t, repo.Update(ctx, fy24))

		def, err := repo.FindDefault(ctx, "01")
		require.NoError(t, err)
		assert.Equal(t, "02", def.Code)

		prev, err := repo.FindByCode(ctx, "01", "01")
		require.NoError(t, err)
		assert.False(t, prev.IsDefault)
	})

	t.Run("flipping the default back restores the singleton", func(t *testing.T) {
		fy23.SetDefault(true)
		require.NoError(t, repo.Update(ctx, fy23))

		def, err := repo.FindDefault(ctx, "01")
		require.NoError(t, err)
		assert.Equal(t, "01", def.Code)

		flipped, err := repo.FindByCode(ctx, "01", "02")
		require.NoError(t, err)
		assert.False(t, flipped.IsDefault)
	})

	t.Run("defaults are scoped per company", func(t *testing.T) {
		other := mustYear(t, "02", "01", "FY 2023-24", start23, end23)
		other.SetDefault(true)
		require.NoError(t, repo.Create(ctx, other))

		def, err := repo.FindDefault(ctx, "01")
		require.NoError(t, err)
		assert.Equal(t, "01", def.Code)

		otherDef, err := repo.FindDefault(ctx, "02")
		require.NoError(t, err)
		assert.Equal(t, "02", otherDef.CompanyCode)
		assert.Equal(t, "01", otherDef.Code)
	})
}

func TestGormFinancialYearRepository_FindDefault(t *testing.T) {
	ctx := context.Background()
	repo := NewGormFinancialYearRepository(newTestDatabase(t))

	t.Run("no default flagged reports not found", func(t *testing.T) {
		start, end := yearSpan(2023)
		require.NoError(t, repo.Create(ctx, mustYear(t, "01", "01", "FY 2023-24", start, end)))

		_, err := repo.FindDefault(ctx, "01")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormFinancialYearRepository_CompoundUniqueness(t *testing.T) {
	ctx := context.Background()
	repo := NewGormFinancialYearRepository(newTestDatabase(t))

	start, end := yearSpan(2023)

	require.NoError(t, repo.Create(ctx, mustYear(t, "01", "01", "FY 2023-24", start, end)))

	t.Run("same code within the company conflicts", func(t *testing.T) {
		err := repo.Create(ctx, mustYear(t, "01", "01", "Duplicate", start, end))
		assert.ErrorIs(t, err, shared.ErrAlreadyExists)
	})

	t.Run("same code under another company is fine", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, mustYear(t, "02", "01", "FY 2023-24", start, end)))

		exists, err := repo.ExistsByCode(ctx, "02", "01")
		require.NoError(t, err)
		assert.True(t, exists)
	})
}

func TestGormFinancialYearRepository_ListCodes(t *testing.T) {
	ctx := context.Background()
	repo := NewGormFinancialYearRepository(newTestDatabase(t))

	start23, end23 := yearSpan(2023)
	start24, end24 := yearSpan(2024)

	require.NoError(t, repo.Create(ctx, mustYear(t, "01", "01", "FY 2023-24", start23, end23)))
	require.NoError(t, repo.Create(ctx, mustYear(t, "01", "02", "FY 2024-25", start24, end24)))
	require.NoError(t, repo.Create(ctx, mustYear(t, "02", "07", "FY 2023-24", start23, end23)))

	codes, err := repo.ListCodes(ctx, "01")
	require.NoError(t, err)
	assert.Equal(t, []string{"01", "02"}, codes)
	assert.Equal(t, "03", company.NextCode(codes))
}
