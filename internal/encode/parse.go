package encode

import (
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strings"
	"unicode"
)

var (
	// ErrEmptyInput indicates that the input string contains no characters once grouping
	// separators have been stripped.
	ErrEmptyInput = errors.New("input contains no digits")

	// ErrInvalidDigits indicates that the input string contains characters that are not valid
	// digits for the requested base, or that a base prefix is not followed by any digits.
	ErrInvalidDigits = errors.New("input contains characters that are not digits in this base")
)

var decimalRegex = regexp.MustCompile(`^[+-]?[0-9]+$`)

// Note that 'x' and 'X' are not hex digits, so a string starting with '0x' can only ever
// match via the prefix group. A bare prefix with no digits after it does not match at all.
var hexRegex = regexp.MustCompile(`^[+-]?(0[xX])?[0-9a-fA-F]+$`)

// stripSeparators removes every whitespace rune and every '_' from input. Both are treated
// as digit grouping noise wherever they appear, so "1_234 567" and "1234567" are the same
// number.
func stripSeparators(input string) string {
	return strings.Map(func(r rune) rune {
		if r == '_' || unicode.IsSpace(r) {
			return -1
		}

		return r
	}, input)
}

// ParseDecimal parses input as a base-10 integer of arbitrary magnitude. Grouping
// separators (whitespace and '_') may appear anywhere and are ignored; a single leading
// '+' or '-' sign is accepted. Returns [ErrEmptyInput] or [ErrInvalidDigits] on malformed
// input.
func ParseDecimal(input string) (*big.Int, error) {
	input = stripSeparators(input)
	if len(input) == 0 {
		return nil, ErrEmptyInput
	}

	if !decimalRegex.MatchString(input) {
		return nil, fmt.Errorf("%w: %q is not a decimal integer", ErrInvalidDigits, input)
	}

	value, ok := new(big.Int).SetString(input, 10)
	if !ok {
		// The regex admits exactly the strings big.Int accepts in base 10
		panic(fmt.Sprintf("validated decimal input %q rejected by big.Int", input))
	}

	return value, nil
}

// ParseHex parses input as a base-16 integer of arbitrary magnitude. Digits are
// case-insensitive and may follow an optional '0x' or '0X' prefix; grouping separators and
// a leading sign are handled as in [ParseDecimal]. Returns [ErrEmptyInput] or
// [ErrInvalidDigits] on malformed input, including a prefix with no digits after it.
func ParseHex(input string) (*big.Int, error) {
	input = stripSeparators(input)
	if len(input) == 0 {
		return nil, ErrEmptyInput
	}

	if !hexRegex.MatchString(input) {
		return nil, fmt.Errorf("%w: %q is not a hexadecimal integer", ErrInvalidDigits, input)
	}

	// big.Int only understands the 0x prefix in base-detection mode, which would also admit
	// octal and binary prefixes, so strip it here and keep the sign.
	sign, digits := "", input
	if digits[0] == '+' || digits[0] == '-' {
		sign, digits = digits[:1], digits[1:]
	}

	if len(digits) >= 2 && (digits[:2] == "0x" || digits[:2] == "0X") {
		digits = digits[2:]
	}

	value, ok := new(big.Int).SetString(sign+digits, 16)
	if !ok {
		panic(fmt.Sprintf("validated hexadecimal input %q rejected by big.Int", input))
	}

	return value, nil
}
