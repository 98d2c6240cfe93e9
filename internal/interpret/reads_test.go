package interpret_test

import (
	"fmt"
	"github.com/fukicycle/bitwise-visualizer/internal/interpret"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"math"
	"testing"
)

func TestReadUint(t *testing.T) {
	sequence := []byte{0x78, 0x56, 0x34, 0x12, 0xEF, 0xCD, 0xAB, 0x89}

	cases := []struct {
		size      int
		bigEndian bool
		expected  uint64
	}{
		{1, false, 0x78},
		{1, true, 0x78},
		{2, false, 0x5678},
		{2, true, 0x7856},
		{4, false, 0x12345678},
		{4, true, 0x78563412},
		{8, false, 0x89ABCDEF12345678},
		{8, true, 0x78563412EFCDAB89},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("size %d big=%v", c.size, c.bigEndian), func(t *testing.T) {
			t.Parallel()

			value, ok := interpret.ReadUint(sequence, c.size, c.bigEndian)
			require.True(t, ok, "Read should succeed when the buffer holds enough bytes")
			assert.Equal(t, c.expected, value, "Assembled value should match expected integer")
		})
	}
}

func TestReadUintShortBuffer(t *testing.T) {
	cases := []struct {
		buf  []byte
		size int
	}{
		{nil, 1},
		{[]byte{}, 1},
		{[]byte{0x01}, 2},
		{[]byte{0x01, 0x02, 0x03}, 4},
		{[]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07}, 8},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("%d bytes as size %d", len(c.buf), c.size), func(t *testing.T) {
			t.Parallel()

			value, ok := interpret.ReadUint(c.buf, c.size, false)
			assert.False(t, ok, "Read should report a buffer shorter than the requested size")
			assert.Zero(t, value, "Failed read should not carry a value")
		})
	}
}

func TestReadUintUnsupportedSize(t *testing.T) {
	for _, size := range []int{0, 3, 5, 6, 7, 9} {
		_, ok := interpret.ReadUint(make([]byte, 16), size, false)
		assert.False(t, ok, "Size %d is not a machine integer width and should be rejected", size)
	}
}

func TestSignExtend(t *testing.T) {
	cases := []struct {
		raw      uint64
		size     int
		expected int64
	}{
		{0x00, 1, 0},
		{0x7F, 1, 127},
		{0x80, 1, -128},
		{0xFF, 1, -1},
		{0x7FFF, 2, 32767},
		{0x8000, 2, -32768},
		{0xCFC7, 2, -12345},
		{0x7FFFFFFF, 4, 2147483647},
		{0x80000000, 4, -2147483648},
		{0xFFFFFFFF, 4, -1},
		{0x8000000000000000, 8, math.MinInt64},
		{0xFFFFFFFFFFFFFFFF, 8, -1},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("%#x as %d bytes", c.raw, c.size), func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, c.expected, interpret.SignExtend(c.raw, c.size), "Sign extended value should match expected integer")
		})
	}
}

func TestReadUintFloatPatterns(t *testing.T) {
	// 1.0 as an IEEE 754 single is 0x3F800000; the read only assembles bits, so the
	// pattern must come back exactly for either order
	value, ok := interpret.ReadUint([]byte{0x00, 0x00, 0x80, 0x3F}, 4, false)
	require.True(t, ok, "Read should succeed for a four byte buffer")
	assert.Equal(t, float32(1.0), math.Float32frombits(uint32(value)), "Little endian pattern should decode to 1.0")

	value, ok = interpret.ReadUint([]byte{0x3F, 0x80, 0x00, 0x00}, 4, true)
	require.True(t, ok, "Read should succeed for a four byte buffer")
	assert.Equal(t, float32(1.0), math.Float32frombits(uint32(value)), "Big endian pattern should decode to 1.0")

	value, ok = interpret.ReadUint([]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xF0, 0xFF}, 8, false)
	require.True(t, ok, "Read should succeed for an eight byte buffer")
	assert.True(t, math.IsInf(math.Float64frombits(value), -1), "Negative infinity pattern should decode to -Inf")
}
