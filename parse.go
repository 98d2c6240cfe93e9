package bitwise

import (
	"fmt"
	"github.com/fukicycle/bitwise-visualizer/internal/encode"
	"math/big"
)

// ParseValue interprets input as an integer in the given format. All whitespace and '_'
// grouping separators are ignored wherever they appear; hex input may carry an optional
// 0x or 0X prefix; both formats accept a single leading sign. Malformed or empty input
// yields zero rather than an error, so a caller that re-renders on every keystroke never
// has to special-case half-typed values. Use [ParseValueStrict] to tell zero apart from
// failure.
func ParseValue(input string, format Format) *big.Int {
	value, err := ParseValueStrict(input, format)
	if err != nil {
		return new(big.Int)
	}

	return value
}

// ParseValueStrict is [ParseValue] with failures reported instead of collapsed to zero.
func ParseValueStrict(input string, format Format) (*big.Int, error) {
	switch format {
	case Decimal:
		value, err := encode.ParseDecimal(input)
		if err != nil {
			return nil, fmt.Errorf("could not parse %q as decimal: %w", input, err)
		}

		return value, nil
	case Hex:
		value, err := encode.ParseHex(input)
		if err != nil {
			return nil, fmt.Errorf("could not parse %q as hex: %w", input, err)
		}

		return value, nil
	default:
		return nil, fmt.Errorf("cannot parse %q: unknown format %v", input, format)
	}
}
