package bitwise

import (
	"fmt"
	"github.com/fukicycle/bitwise-visualizer/internal/interpret"
	"math"
	"strconv"
)

// NumType enumerates the machine numeric types a byte pattern can be read back as.
type NumType uint8

const (
	Int8 NumType = iota
	Uint8
	Int16
	Uint16
	Int32
	Uint32
	Float32
	Int64
	Uint64
	Float64
)

// NumTypes lists every interpretable type in display order.
var NumTypes = [...]NumType{Int8, Uint8, Int16, Uint16, Int32, Uint32, Float32, Int64, Uint64, Float64}

// Size returns the number of bytes of the type.
func (n NumType) Size() int {
	switch n {
	case Int8, Uint8:
		return 1
	case Int16, Uint16:
		return 2
	case Int32, Uint32, Float32:
		return 4
	case Int64, Uint64, Float64:
		return 8
	default:
		panic(fmt.Sprintf("unknown numeric type %d", uint8(n)))
	}
}

// IsSigned reports whether the type is a signed integer type.
func (n NumType) IsSigned() bool {
	switch n {
	case Int8, Int16, Int32, Int64:
		return true
	default:
		return false
	}
}

// IsFloat reports whether the type is an IEEE 754 floating point type.
func (n NumType) IsFloat() bool {
	return n == Float32 || n == Float64
}

func (n NumType) String() string {
	switch n {
	case Int8:
		return "Int8"
	case Uint8:
		return "Uint8"
	case Int16:
		return "Int16"
	case Uint16:
		return "Uint16"
	case Int32:
		return "Int32"
	case Uint32:
		return "Uint32"
	case Float32:
		return "Float32"
	case Int64:
		return "Int64"
	case Uint64:
		return "Uint64"
	case Float64:
		return "Float64"
	default:
		return fmt.Sprintf("NumType(%d)", uint8(n))
	}
}

// An Interpretation is the result of reading the leading bytes of a sequence as one
// machine numeric type. A sequence shorter than the type is a real state the display must
// show, so an Interpretation is either available with a value or explicitly unavailable.
// An unavailable Interpretation has no value at all, which is not the same thing as a
// value of zero.
type Interpretation struct {
	Type      NumType
	Available bool

	// bits is the order-resolved raw pattern, meaningful only when Available is set
	bits uint64
}

// interpretType reads the leading bytes of sequence as typ under the given byte order.
func interpretType(typ NumType, sequence []byte, order ByteOrder) Interpretation {
	bits, ok := interpret.ReadUint(sequence, typ.Size(), order == BigEndian)
	return Interpretation{Type: typ, Available: ok, bits: bits}
}

// Bits returns the order-resolved raw bit pattern the value decodes from. ok is false
// when the interpretation is unavailable.
func (i Interpretation) Bits() (uint64, bool) {
	if !i.Available {
		return 0, false
	}

	return i.bits, true
}

// Int returns the value of a signed integer interpretation. ok is false when the
// interpretation is unavailable or its type is not a signed integer.
func (i Interpretation) Int() (int64, bool) {
	if !i.Available || !i.Type.IsSigned() {
		return 0, false
	}

	return interpret.SignExtend(i.bits, i.Type.Size()), true
}

// Uint returns the value of an unsigned integer interpretation. ok is false when the
// interpretation is unavailable or its type is not an unsigned integer.
func (i Interpretation) Uint() (uint64, bool) {
	if !i.Available || i.Type.IsSigned() || i.Type.IsFloat() {
		return 0, false
	}

	return i.bits, true
}

// Float returns the value of a floating point interpretation. ok is false when the
// interpretation is unavailable or its type is not a float type. NaN and the infinities
// come back as themselves; they are values here, not errors.
func (i Interpretation) Float() (float64, bool) {
	if !i.Available || !i.Type.IsFloat() {
		return 0, false
	}

	if i.Type == Float32 {
		return float64(math.Float32frombits(uint32(i.bits))), true
	}

	return math.Float64frombits(i.bits), true
}

// String renders the value the way the reinterpretation table shows it, with "n/a" for
// unavailable entries.
func (i Interpretation) String() string {
	if !i.Available {
		return "n/a"
	}

	switch {
	case i.Type.IsFloat():
		value, _ := i.Float()
		bitSize := 64
		if i.Type == Float32 {
			bitSize = 32
		}

		return strconv.FormatFloat(value, 'g', -1, bitSize)
	case i.Type.IsSigned():
		value, _ := i.Int()
		return strconv.FormatInt(value, 10)
	default:
		value, _ := i.Uint()
		return strconv.FormatUint(value, 10)
	}
}
