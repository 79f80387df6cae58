package company

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompany(t *testing.T) {
	t.Run("creates company with canonical code", func(t *testing.T) {
		c, err := NewCompany("1", "Acme Traders")

		require.NoError(t, err)
		assert.Equal(t, "01", c.Code)
		assert.Equal(t, "Acme Traders", c.Name)
		assert.True(t, c.IsActive)
		assert.NotEmpty(t, c.ID)
	})

	t.Run("rejects non-numeric codes", func(t *testing.T) {
		_, err := NewCompany("AB", "Acme Traders")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "exactly two digits")
	})

	t.Run("rejects codes wider than two digits", func(t *testing.T) {
		_, err := NewCompany("100", "Acme Traders")

		assert.Error(t, err)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewCompany("01", "   ")

		assert.Error(t, err)
	})
}

func TestNewLocation(t *testing.T) {
	t.Run("creates location under company", func(t *testing.T) {
		l, err := NewLocation("1", "2", "Main Warehouse")

		require.NoError(t, err)
		assert.Equal(t, "01", l.CompanyCode)
		assert.Equal(t, "02", l.Code)
		assert.True(t, l.IsActive)
		assert.False(t, l.IsDefault)
		assert.False(t, l.IsHeadOffice)
	})

	t.Run("rejects non-numeric location code", func(t *testing.T) {
		_, err := NewLocation("01", "HO", "Head Office")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "exactly two digits")
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewLocation("01", "01", "")

		assert.Error(t, err)
	})
}

func TestCompanyLifecycle(t *testing.T) {
	c, err := NewCompany("01", "Acme Traders")
	require.NoError(t, err)

	c.Deactivate()
	assert.False(t, c.IsActive)

	c.Activate()
	assert.True(t, c.IsActive)

	c.SetTaxIdentifiers(" 1234567-8 ", "09-87-6543")
	assert.Equal(t, "1234567-8", c.NTN)

	require.NoError(t, c.Rename("Acme Traders (Pvt) Ltd"))
	assert.Equal(t, "Acme Traders (Pvt) Ltd", c.Name)
}
