package bitwise

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestParseByteOrder(t *testing.T) {
	order, err := ParseByteOrder("little")
	require.NoError(t, err, "little is a known order")
	assert.Equal(t, LittleEndian, order, "little should map to LittleEndian")

	order, err = ParseByteOrder("big")
	require.NoError(t, err, "big is a known order")
	assert.Equal(t, BigEndian, order, "big should map to BigEndian")

	for _, name := range []string{"", "Little", "middle", "be"} {
		_, err := ParseByteOrder(name)
		assert.Error(t, err, "%q is not a byte order name", name)
	}
}

func TestParseWordWidth(t *testing.T) {
	for _, bits := range []int{16, 32, 64} {
		width, err := ParseWordWidth(bits)
		require.NoError(t, err, "%d is a supported width", bits)
		assert.Equal(t, bits/8, width.Bytes(), "Bytes should be an eighth of the bit count")
	}

	for _, bits := range []int{0, 8, 24, 128} {
		_, err := ParseWordWidth(bits)
		assert.Error(t, err, "%d bits is not a word width", bits)
	}
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"dec", "decimal"} {
		format, err := ParseFormat(name)
		require.NoError(t, err, "%q is a known format name", name)
		assert.Equal(t, Decimal, format, "Both spellings should map to Decimal")
	}

	for _, name := range []string{"hex", "hexadecimal"} {
		format, err := ParseFormat(name)
		require.NoError(t, err, "%q is a known format name", name)
		assert.Equal(t, Hex, format, "Both spellings should map to Hex")
	}

	_, err := ParseFormat("octal")
	assert.Error(t, err, "Unknown format names should be rejected")
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "little", LittleEndian.String(), "Orders should print their parse names")
	assert.Equal(t, "big", BigEndian.String(), "Orders should print their parse names")
	assert.Equal(t, "32-bit", Width32.String(), "Widths should print with their unit")
	assert.Equal(t, "decimal", Decimal.String(), "Formats should print their long names")
	assert.Equal(t, "hex", Hex.String(), "Formats should print their long names")
}
