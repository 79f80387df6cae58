package company

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewFinancialYear(t *testing.T) {
	t.Run("creates a valid year", func(t *testing.T) {
		fy, err := NewFinancialYear("1", "1", "FY 2025-26", date(2025, 7, 1), date(2026, 6, 30))

		require.NoError(t, err)
		assert.Equal(t, "01", fy.CompanyCode)
		assert.Equal(t, "01", fy.Code)
		assert.Equal(t, "FY 2025-26", fy.Title)
		assert.True(t, fy.IsActive)
		assert.False(t, fy.IsDefault)
	})

	t.Run("normalizes dates to noon UTC", func(t *testing.T) {
		karachi := time.FixedZone("PKT", 5*3600)
		start := time.Date(2025, 7, 1, 23, 30, 0, 0, karachi)
		fy, err := NewFinancialYear("01", "01", "FY", start, date(2026, 6, 30))

		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC), fy.StartDate)
		assert.Equal(t, time.Date(2026, 6, 30, 12, 0, 0, 0, time.UTC), fy.EndDate)
	})

	t.Run("rejects end date before start date", func(t *testing.T) {
		_, err := NewFinancialYear("01", "01", "FY", date(2026, 6, 30), date(2025, 7, 1))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "after start date")
	})

	t.Run("rejects end date equal to start date", func(t *testing.T) {
		_, err := NewFinancialYear("01", "01", "FY", date(2025, 7, 1), date(2025, 7, 1))

		assert.Error(t, err)
	})

	t.Run("rejects spans shorter than 30 days", func(t *testing.T) {
		_, err := NewFinancialYear("01", "01", "FY", date(2025, 7, 1), date(2025, 7, 30))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least 30 days")
	})

	t.Run("accepts a span of exactly 30 days", func(t *testing.T) {
		_, err := NewFinancialYear("01", "01", "FY", date(2025, 7, 1), date(2025, 7, 31))

		assert.NoError(t, err)
	})

	t.Run("rejects empty title", func(t *testing.T) {
		_, err := NewFinancialYear("01", "01", "  ", date(2025, 7, 1), date(2026, 6, 30))

		assert.Error(t, err)
	})

	t.Run("rejects empty code", func(t *testing.T) {
		_, err := NewFinancialYear("01", "", "FY", date(2025, 7, 1), date(2026, 6, 30))

		assert.Error(t, err)
	})
}

func TestFinancialYearSetDates(t *testing.T) {
	fy, err := NewFinancialYear("01", "01", "FY", date(2025, 7, 1), date(2026, 6, 30))
	require.NoError(t, err)

	t.Run("rejects an invalid replacement span", func(t *testing.T) {
		err := fy.SetDates(date(2026, 1, 1), date(2026, 1, 15))

		assert.Error(t, err)
		assert.Equal(t, time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC), fy.StartDate)
	})

	t.Run("applies a valid replacement span", func(t *testing.T) {
		err := fy.SetDates(date(2026, 7, 1), date(2027, 6, 30))

		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC), fy.StartDate)
	})
}

func TestFinancialYearPeriod(t *testing.T) {
	fy, err := NewFinancialYear("01", "01", "FY", date(2025, 7, 1), date(2026, 6, 30))
	require.NoError(t, err)

	assert.Equal(t, "2025-07-01 to 2026-06-30", fy.Period())
}

func TestFinancialYearContains(t *testing.T) {
	fy, err := NewFinancialYear("01", "01", "FY", date(2025, 7, 1), date(2026, 6, 30))
	require.NoError(t, err)

	assert.True(t, fy.Contains(date(2025, 7, 1)))
	assert.True(t, fy.Contains(date(2026, 6, 30)))
	assert.True(t, fy.Contains(date(2025, 12, 25)))
	assert.False(t, fy.Contains(date(2025, 6, 30)))
	assert.False(t, fy.Contains(date(2026, 7, 1)))
}
