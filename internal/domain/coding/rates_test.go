package coding

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testScope() RateScope {
	return RateScope{CompanyCode: "01", LocationCode: "01", YearCode: "01"}
}

func TestNewDiscountRate(t *testing.T) {
	t.Run("creates rate within bounds", func(t *testing.T) {
		rate, err := NewDiscountRate(testScope(), "0101.21", decimal.NewFromFloat(12.5))

		require.NoError(t, err)
		assert.True(t, rate.Rate.Equal(decimal.NewFromFloat(12.5)))
	})

	t.Run("rejects negative rate", func(t *testing.T) {
		_, err := NewDiscountRate(testScope(), "0101.21", decimal.NewFromInt(-1))

		assert.Error(t, err)
	})

	t.Run("rejects rate above 100", func(t *testing.T) {
		_, err := NewDiscountRate(testScope(), "0101.21", decimal.NewFromFloat(100.01))

		assert.Error(t, err)
	})

	t.Run("accepts the boundary values", func(t *testing.T) {
		_, err := NewDiscountRate(testScope(), "0101.21", decimal.Zero)
		assert.NoError(t, err)

		_, err = NewDiscountRate(testScope(), "0101.21", decimal.NewFromInt(100))
		assert.NoError(t, err)
	})

	t.Run("rejects incomplete scope", func(t *testing.T) {
		scope := RateScope{CompanyCode: "01"}
		_, err := NewDiscountRate(scope, "0101.21", decimal.NewFromInt(5))

		assert.Error(t, err)
	})
}

func TestNewTaxRate(t *testing.T) {
	t.Run("creates rate", func(t *testing.T) {
		rate, err := NewTaxRate(testScope(), "0101.21", decimal.NewFromInt(17))

		require.NoError(t, err)
		assert.Equal(t, "0101.21", rate.HSCode)
	})

	t.Run("rejects empty hs code", func(t *testing.T) {
		_, err := NewTaxRate(testScope(), "  ", decimal.NewFromInt(17))

		assert.Error(t, err)
	})
}

func TestNewItemDescriptionCode(t *testing.T) {
	t.Run("creates item code with canonical company code", func(t *testing.T) {
		item, err := NewItemDescriptionCode("1", "0101.21", "Pure-bred horses")

		require.NoError(t, err)
		assert.Equal(t, "01", item.CompanyCode)
		assert.Equal(t, "0101.21", item.HSCode)
	})

	t.Run("rejects empty hs code", func(t *testing.T) {
		_, err := NewItemDescriptionCode("01", "", "Horses")

		assert.Error(t, err)
	})

	t.Run("rejects empty description", func(t *testing.T) {
		_, err := NewItemDescriptionCode("01", "0101.21", " ")

		assert.Error(t, err)
	})
}

func TestNewAccount(t *testing.T) {
	t.Run("creates level 1 account without parent", func(t *testing.T) {
		a, err := NewAccount("01", "01", 1, "1", "", "Assets")

		require.NoError(t, err)
		assert.Equal(t, 1, a.Level)
		assert.Empty(t, a.ParentCode)
	})

	t.Run("requires parent below level 1", func(t *testing.T) {
		_, err := NewAccount("01", "01", 2, "101", "", "Current Assets")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Parent account code")
	})

	t.Run("rejects parent on level 1", func(t *testing.T) {
		_, err := NewAccount("01", "01", 1, "1", "0", "Assets")

		assert.Error(t, err)
	})

	t.Run("rejects out of range level", func(t *testing.T) {
		_, err := NewAccount("01", "01", 5, "10101", "101", "Petty Cash")

		assert.Error(t, err)
	})
}
