package encode

import (
	"math/big"
)

// MinimumLength returns the fewest whole bytes able to hold the magnitude of value. Zero
// still occupies one byte. Only the magnitude is counted: no extra byte is reserved for a
// sign bit, so e.g. both 128 and -128 fit in a single byte.
func MinimumLength(value *big.Int) int {
	// BitLen is the bit length of the absolute value, and 0 for zero
	bits := value.BitLen()
	if bits == 0 {
		return 1
	}

	return (bits + 7) / 8
}

// PaddedLength rounds length up to a whole number of words of wordBytes bytes each, with a
// minimum of a single word.
func PaddedLength(length int, wordBytes int) int {
	if length < wordBytes {
		return wordBytes
	}

	return (length + wordBytes - 1) / wordBytes * wordBytes
}

// AsBytes encodes value as a byte sequence of exactly length bytes, least significant byte
// first unless bigEndian is set. Negative values are encoded as their two's-complement
// image over length bytes; values whose magnitude needs more than length bytes keep only
// their low length bytes, like an assignment to a narrower register. A length of zero or
// less yields an empty sequence.
func AsBytes(value *big.Int, length int, bigEndian bool) []byte {
	if length <= 0 {
		return nil
	}

	// A Euclidean reduction modulo 2^(8*length) always lands in [0, 2^(8*length)): for
	// negative values that is exactly the two's-complement image, and for oversized ones
	// exactly the low bytes.
	norm := new(big.Int).Mod(value, byteModulus(length))

	out := make([]byte, length)
	norm.FillBytes(out)

	if !bigEndian {
		reverseBytes(out)
	}

	return out
}

// FromBytes decodes a byte sequence produced by [AsBytes] back into a non-negative
// integer. The result is the raw value of the bit pattern: a two's-complement image is not
// sign extended, so a caller reconstructing a negative value must subtract
// 2^(8*len(sequence)) itself.
func FromBytes(sequence []byte, bigEndian bool) *big.Int {
	ordered := sequence
	if !bigEndian {
		ordered = make([]byte, len(sequence))
		copy(ordered, sequence)
		reverseBytes(ordered)
	}

	return new(big.Int).SetBytes(ordered)
}

// byteModulus returns 2^(8*length), the number of distinct values a sequence of length
// bytes can hold.
func byteModulus(length int) *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), uint(length)*8)
}

func reverseBytes(sequence []byte) {
	for i, j := 0, len(sequence)-1; i < j; i, j = i+1, j-1 {
		sequence[i], sequence[j] = sequence[j], sequence[i]
	}
}
