package interpret

import (
	"encoding/binary"
)

// ReadUint assembles the first size bytes of buf into an unsigned integer under the given
// byte order. size must be 1, 2, 4, or 8; ok is false when buf holds fewer than size bytes
// (or size is not a supported width), and the value is then meaningless and must not be
// shown.
func ReadUint(buf []byte, size int, bigEndian bool) (uint64, bool) {
	if len(buf) < size {
		return 0, false
	}

	var order binary.ByteOrder = binary.LittleEndian
	if bigEndian {
		order = binary.BigEndian
	}

	switch size {
	case 1:
		return uint64(buf[0]), true
	case 2:
		return uint64(order.Uint16(buf)), true
	case 4:
		return uint64(order.Uint32(buf)), true
	case 8:
		return order.Uint64(buf), true
	default:
		return 0, false
	}
}

// SignExtend reinterprets the low size bytes of raw as a two's-complement signed integer.
// Bits above the type's width are ignored, so callers can pass [ReadUint] output directly.
func SignExtend(raw uint64, size int) int64 {
	shift := uint(64 - size*8)
	return int64(raw<<shift) >> shift
}
