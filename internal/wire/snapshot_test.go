package wire_test

import (
	"bytes"
	"github.com/fukicycle/bitwise-visualizer/internal/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

// rawSnapshot builds a snapshot stream by hand, so tests do not depend on the encoder they
// are checking.
func rawSnapshot(order uint8, width uint8, flags uint8, payload []byte) []byte {
	out := []byte{'B', 'V', 'I', 'S', 1, order, width, flags}
	out = append(out,
		byte(len(payload)>>24),
		byte(len(payload)>>16),
		byte(len(payload)>>8),
		byte(len(payload)),
	)

	return append(out, payload...)
}

func TestSnapshotWriteTo(t *testing.T) {
	snap := &wire.Snapshot{
		Magic:   wire.Magic,
		Version: wire.Version,
		Order:   wire.OrderLittle,
		Width:   32,
		Flags:   0,
		Payload: []uint8{0x78, 0x56, 0x34, 0x12},
	}

	var output bytes.Buffer
	count, err := snap.WriteTo(&output)
	require.NoError(t, err, "WriteTo should not throw an error for valid input")
	assert.EqualValues(t, output.Len(), count, "WriteTo count should match actual number of written bytes")

	expected := rawSnapshot(wire.OrderLittle, 32, 0, []byte{0x78, 0x56, 0x34, 0x12})
	assert.Equal(t, expected, output.Bytes(), "Snapshot encoding should match expected layout")
}

func TestSnapshotRoundTrip(t *testing.T) {
	snap := &wire.Snapshot{
		Magic:   wire.Magic,
		Version: wire.Version,
		Order:   wire.OrderBig,
		Width:   16,
		Flags:   wire.FlagNegative,
		Payload: []uint8{0xCF, 0xC7},
	}

	var output bytes.Buffer
	_, err := snap.WriteTo(&output)
	require.NoError(t, err, "WriteTo should not throw an error for valid input")

	decoded, err := wire.ReadSnapshot(&output)
	require.NoError(t, err, "ReadSnapshot should accept its own encoder's output")

	assert.Equal(t, snap.Order, decoded.Order, "Byte order should survive the round trip")
	assert.Equal(t, snap.Width, decoded.Width, "Word width should survive the round trip")
	assert.Equal(t, snap.Flags, decoded.Flags, "Flags should survive the round trip")
	assert.Equal(t, snap.Payload, decoded.Payload, "Payload should survive the round trip")
	assert.EqualValues(t, len(snap.Payload), decoded.PayloadLength, "Payload length field should match the payload")
}

func TestReadSnapshotRejectsBadHeaders(t *testing.T) {
	payload := []byte{0x78, 0x56, 0x34, 0x12}

	cases := []struct {
		name     string
		stream   []byte
		expected error
	}{
		{
			"wrong magic",
			append([]byte{'B', 'O', 'G', 'U', 1, 0, 32, 0, 0, 0, 0, 4}, payload...),
			wire.ErrBadMagic,
		},
		{
			"future version",
			append([]byte{'B', 'V', 'I', 'S', 2, 0, 32, 0, 0, 0, 0, 4}, payload...),
			wire.ErrUnsupportedVersion,
		},
		{
			"unknown byte order",
			rawSnapshot(7, 32, 0, payload),
			wire.ErrInvalidOrder,
		},
		{
			"unknown word width",
			rawSnapshot(wire.OrderLittle, 33, 0, payload),
			wire.ErrInvalidWidth,
		},
		{
			"payload not a whole number of words",
			rawSnapshot(wire.OrderLittle, 32, 0, payload[:3]),
			wire.ErrMisalignedPayload,
		},
		{
			"empty payload",
			rawSnapshot(wire.OrderLittle, 32, 0, nil),
			wire.ErrMisalignedPayload,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			_, err := wire.ReadSnapshot(bytes.NewReader(c.stream))
			assert.ErrorIs(t, err, c.expected, "ReadSnapshot should reject the stream with the right sentinel")
		})
	}
}

func TestReadSnapshotTruncatedStream(t *testing.T) {
	stream := rawSnapshot(wire.OrderLittle, 32, 0, []byte{0x78, 0x56, 0x34, 0x12})

	for _, cut := range []int{0, 3, 8, 11, 14} {
		_, err := wire.ReadSnapshot(bytes.NewReader(stream[:cut]))
		assert.Error(t, err, "ReadSnapshot should fail on a stream cut to %d bytes", cut)
	}
}
