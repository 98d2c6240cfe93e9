package bitwise

import (
	"fmt"
)

// ByteOrder selects which end of a value sits at memory position zero.
type ByteOrder uint8

const (
	// LittleEndian stores the least significant byte at position zero.
	LittleEndian ByteOrder = iota

	// BigEndian stores the most significant byte at position zero.
	BigEndian
)

func (o ByteOrder) String() string {
	switch o {
	case LittleEndian:
		return "little"
	case BigEndian:
		return "big"
	default:
		return fmt.Sprintf("ByteOrder(%d)", uint8(o))
	}
}

// ParseByteOrder maps the names "little" and "big" onto their [ByteOrder] values.
func ParseByteOrder(name string) (ByteOrder, error) {
	switch name {
	case "little":
		return LittleEndian, nil
	case "big":
		return BigEndian, nil
	default:
		return 0, fmt.Errorf(`unknown byte order %q; want "little" or "big"`, name)
	}
}

// WordWidth is the machine word size a byte sequence is padded to and grouped by, in
// bits. It also bounds which word values exist: a 16-bit view still exposes every numeric
// reinterpretation the sequence has bytes for.
type WordWidth uint8

const (
	Width16 WordWidth = 16
	Width32 WordWidth = 32
	Width64 WordWidth = 64
)

// Bytes returns the size of a single word in bytes.
func (w WordWidth) Bytes() int {
	return int(w) / 8
}

func (w WordWidth) String() string {
	return fmt.Sprintf("%d-bit", int(w))
}

// ParseWordWidth maps a bit count onto its [WordWidth] value.
func ParseWordWidth(bits int) (WordWidth, error) {
	switch bits {
	case 16, 32, 64:
		return WordWidth(bits), nil
	default:
		return 0, fmt.Errorf("unsupported word width %d; want 16, 32, or 64", bits)
	}
}

// Format is the textual notation of an input value.
type Format uint8

const (
	// Decimal is base-10 notation with an optional leading sign.
	Decimal Format = iota

	// Hex is base-16 notation with case-insensitive digits, an optional leading sign, and
	// an optional 0x prefix.
	Hex
)

func (f Format) String() string {
	switch f {
	case Decimal:
		return "decimal"
	case Hex:
		return "hex"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// ParseFormat maps the names "dec", "decimal", "hex", and "hexadecimal" onto their
// [Format] values.
func ParseFormat(name string) (Format, error) {
	switch name {
	case "dec", "decimal":
		return Decimal, nil
	case "hex", "hexadecimal":
		return Hex, nil
	default:
		return 0, fmt.Errorf(`unknown format %q; want "dec" or "hex"`, name)
	}
}
