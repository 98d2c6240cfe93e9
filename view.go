package bitwise

import (
	"fmt"
	"github.com/fukicycle/bitwise-visualizer/internal/encode"
	"github.com/fukicycle/bitwise-visualizer/internal/interpret"
	"math/big"
)

// Reinterpretation reads at most the leading eight bytes of a sequence, the size of the
// largest machine type.
const interpretationWindow = 8

// MinimumBytes returns the fewest whole bytes that hold the magnitude of value; zero
// still needs one. Only the magnitude counts: no byte is reserved for a sign, so the
// caller chooses how much room a negative value's two's-complement image gets.
func MinimumBytes(value *big.Int) int {
	return encode.MinimumLength(value)
}

// PaddedLength rounds length up to a whole number of words of the given width, never
// below a single word.
func PaddedLength(length int, width WordWidth) int {
	return encode.PaddedLength(length, width.Bytes())
}

// EncodeBytes returns value as a sequence of exactly length bytes under the given byte
// order. Negative values become their two's-complement image over length bytes; values
// wider than length keep only their low length bytes, the way an assignment to a narrower
// register would.
func EncodeBytes(value *big.Int, length int, order ByteOrder) []byte {
	return encode.AsBytes(value, length, order == BigEndian)
}

// SignificanceIndex maps a byte's memory position to its significance rank: 0 for the
// least significant byte up to total-1 for the most significant. Little endian stores the
// least significant byte first, so position and rank coincide; big endian reverses them.
func SignificanceIndex(position, total int, order ByteOrder) int {
	if order == BigEndian {
		return total - 1 - position
	}

	return position
}

// ByteCell is one byte of a visualized sequence together with everything the display
// needs to know about it.
type ByteCell struct {
	// Position is the byte's index in memory order, starting at zero.
	Position int

	// Value is the byte itself.
	Value uint8

	// Significance ranks the byte from 0 (least significant) to length-1 (most
	// significant). The rank follows the byte wherever the byte order places it, so a
	// display keyed on it keeps each byte's identity stable across order switches.
	Significance int

	// Bits holds the byte's bits most significant first: Bits[0] is bit 7.
	Bits [8]uint8
}

// Hex returns the byte as two uppercase hex digits.
func (c ByteCell) Hex() string {
	return fmt.Sprintf("%02X", c.Value)
}

// A Word is one word-width group of a sequence, in memory order.
type Word struct {
	// Index is the word's position in memory order, starting at zero.
	Index int

	// Bytes are the word's cells, in memory order.
	Bytes []ByteCell

	// Value is the word read as an unsigned integer under the active byte order.
	Value uint64
}

// Hex returns the word's value as 0x-prefixed hex digits, zero padded to the word width.
func (w Word) Hex() string {
	return fmt.Sprintf("0x%0*X", len(w.Bytes)*2, w.Value)
}

// View is the complete model of one visualization: the value, its padded byte sequence
// under the chosen order, the word grouping, and every numeric reinterpretation of the
// leading bytes. Nothing persists between renders; a View is computed in full by
// [NewView] and never changes afterwards.
type View struct {
	value *big.Int

	// Order is the byte order the sequence was laid out with.
	Order ByteOrder

	// Width is the word width the sequence is padded to and grouped by.
	Width WordWidth

	// MinBytes is the fewest bytes the magnitude needs, before word padding.
	MinBytes int

	// Bytes is the padded sequence in memory order.
	Bytes []ByteCell

	// Words groups Bytes into words in memory order.
	Words []Word

	// Interpretations reads the leading bytes as each machine type, in display order.
	Interpretations []Interpretation
}

// NewView builds the model for value under the given word width and byte order. A nil
// value is treated as zero.
func NewView(value *big.Int, width WordWidth, order ByteOrder) *View {
	if value == nil {
		value = new(big.Int)
	}

	minBytes := encode.MinimumLength(value)
	length := encode.PaddedLength(minBytes, width.Bytes())
	raw := encode.AsBytes(value, length, order == BigEndian)

	view := &View{
		value:    new(big.Int).Set(value),
		Order:    order,
		Width:    width,
		MinBytes: minBytes,
		Bytes:    make([]ByteCell, length),
	}

	for position, b := range raw {
		view.Bytes[position] = ByteCell{
			Position:     position,
			Value:        b,
			Significance: SignificanceIndex(position, length, order),
			Bits:         decomposeBits(b),
		}
	}

	wordBytes := width.Bytes()
	for start := 0; start < length; start += wordBytes {
		wordValue, _ := interpret.ReadUint(raw[start:start+wordBytes], wordBytes, order == BigEndian)
		view.Words = append(view.Words, Word{
			Index: start / wordBytes,
			Bytes: view.Bytes[start : start+wordBytes],
			Value: wordValue,
		})
	}

	window := raw
	if len(window) > interpretationWindow {
		window = window[:interpretationWindow]
	}

	view.Interpretations = make([]Interpretation, 0, len(NumTypes))
	for _, typ := range NumTypes {
		view.Interpretations = append(view.Interpretations, interpretType(typ, window, order))
	}

	return view
}

// Value returns the value the view was built from. The result is a copy; mutating it
// does not affect the view.
func (v *View) Value() *big.Int {
	return new(big.Int).Set(v.value)
}

// ValueText returns the value in decimal.
func (v *View) ValueText() string {
	return v.value.Text(10)
}

// ValueHex returns the value in 0x-prefixed hexadecimal, sign included.
func (v *View) ValueHex() string {
	return fmt.Sprintf("%#x", v.value)
}

// Negative reports whether the view was built from a negative value, in which case the
// sequence holds its two's-complement image.
func (v *View) Negative() bool {
	return v.value.Sign() < 0
}

// RawBytes returns the padded sequence as plain bytes in memory order.
func (v *View) RawBytes() []byte {
	raw := make([]byte, len(v.Bytes))
	for i, cell := range v.Bytes {
		raw[i] = cell.Value
	}

	return raw
}

// Interpretation returns the reinterpretation entry for typ.
func (v *View) Interpretation(typ NumType) Interpretation {
	for _, i := range v.Interpretations {
		if i.Type == typ {
			return i
		}
	}

	return Interpretation{Type: typ}
}

// decomposeBits splits a byte into its bits, most significant first.
func decomposeBits(b uint8) [8]uint8 {
	var bits [8]uint8
	for i := range bits {
		bits[i] = (b >> (7 - i)) & 1
	}

	return bits
}
