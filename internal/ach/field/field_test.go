package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumeric(t *testing.T) {
	t.Run("ZeroLeftPads", func(t *testing.T) {
		v, err := Numeric("123", 6)
		require.NoError(t, err)
		assert.Equal(t, "000123", v)
	})

	t.Run("ExactWidthUnchanged", func(t *testing.T) {
		v, err := Numeric("123456", 6)
		require.NoError(t, err)
		assert.Equal(t, "123456", v)
	})

	t.Run("TooLong", func(t *testing.T) {
		_, err := Numeric("1234567", 6)
		assert.ErrorIs(t, err, ErrFieldTooLong)
	})

	t.Run("NonDigit", func(t *testing.T) {
		for _, value := range []string{"12a4", "12.4", "-124", "", " 12"} {
			_, err := Numeric(value, 6)
			assert.ErrorIs(t, err, ErrNotNumeric, "value %q", value)
		}
	})
}

func TestAlphaNumeric(t *testing.T) {
	t.Run("SpaceRightPadsAndUppercases", func(t *testing.T) {
		v, err := AlphaNumeric("Your Bank", 23)
		require.NoError(t, err)
		assert.Equal(t, "YOUR BANK              ", v)
		assert.Len(t, v, 23)
	})

	t.Run("OverlongTruncatesSilently", func(t *testing.T) {
		// Unlike Numeric, a matching value past the declared width is
		// cut, not rejected.
		v, err := AlphaNumeric("ABCDEFGH", 4)
		require.NoError(t, err)
		assert.Equal(t, "ABCD", v)
	})

	t.Run("TruncatesAtFirstInvalidCharacter", func(t *testing.T) {
		v, err := AlphaNumeric("AB@CD", 6)
		require.NoError(t, err)
		assert.Equal(t, "AB    ", v)
	})

	t.Run("NoValidPrefix", func(t *testing.T) {
		_, err := AlphaNumeric("@@@", 6)
		assert.ErrorIs(t, err, ErrInvalidAlphaNumeric)
		_, err = AlphaNumeric("", 6)
		assert.ErrorIs(t, err, ErrInvalidAlphaNumeric)
	})
}

func TestBinary(t *testing.T) {
	for _, value := range []string{"0", "1"} {
		v, err := Binary(value)
		require.NoError(t, err)
		assert.Equal(t, value, v)
	}
	for _, value := range []string{"", "2", "10", "true"} {
		_, err := Binary(value)
		assert.ErrorIs(t, err, ErrInvalidBinary, "value %q", value)
	}
}

func TestRightJustify(t *testing.T) {
	assert.Equal(t, " 123456789", RightJustify("123456789", 10))
	assert.Equal(t, "1234567890", RightJustify("1234567890", 10))
	// No class validation and no truncation: bank-provided values pass
	// through.
	assert.Equal(t, "12-345", RightJustify("12-345", 6))
	assert.Equal(t, "12345678901", RightJustify("12345678901", 10))
}

func TestRuns(t *testing.T) {
	assert.Equal(t, "0000", Zeros(4))
	assert.Equal(t, "    ", Spaces(4))
	assert.Equal(t, "", Zeros(0))
	assert.Equal(t, "", Spaces(-1))
}
