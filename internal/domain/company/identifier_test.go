package company

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCode(t *testing.T) {
	t.Run("pads single digit numbers", func(t *testing.T) {
		assert.Equal(t, "01", FormatCode("1"))
		assert.Equal(t, "09", FormatCode("9"))
	})

	t.Run("keeps two digit codes unchanged", func(t *testing.T) {
		assert.Equal(t, "01", FormatCode("01"))
		assert.Equal(t, "42", FormatCode("42"))
	})

	t.Run("keeps wider numbers unchanged", func(t *testing.T) {
		assert.Equal(t, "123", FormatCode("123"))
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		assert.Equal(t, "05", FormatCode(" 5 "))
	})

	t.Run("passes non-numeric codes through", func(t *testing.T) {
		assert.Equal(t, "HO", FormatCode("HO"))
		assert.Equal(t, "1a", FormatCode("1a"))
		assert.Equal(t, "", FormatCode(""))
	})

	t.Run("passes negative values through", func(t *testing.T) {
		assert.Equal(t, "-1", FormatCode("-1"))
	})

	t.Run("is idempotent", func(t *testing.T) {
		for _, raw := range []string{"1", "01", "9", "42", "123", "HO", "", " 5 "} {
			once := FormatCode(raw)
			assert.Equal(t, once, FormatCode(once), "format must be stable for %q", raw)
		}
	})
}

func TestNextCode(t *testing.T) {
	t.Run("starts at 01 for empty scope", func(t *testing.T) {
		assert.Equal(t, "01", NextCode(nil))
		assert.Equal(t, "01", NextCode([]string{}))
	})

	t.Run("increments the maximum, not the count", func(t *testing.T) {
		assert.Equal(t, "06", NextCode([]string{"01", "02", "05"}))
	})

	t.Run("is order independent", func(t *testing.T) {
		assert.Equal(t, "06", NextCode([]string{"05", "01", "02"}))
	})

	t.Run("ignores non-numeric codes", func(t *testing.T) {
		assert.Equal(t, "03", NextCode([]string{"01", "HO", "02", ""}))
	})

	t.Run("still starts at 01 when every code is malformed", func(t *testing.T) {
		assert.Equal(t, "01", NextCode([]string{"HO", "abc"}))
	})

	t.Run("crosses into three digits past 99", func(t *testing.T) {
		assert.Equal(t, "100", NextCode([]string{"99"}))
	})
}
