package num

import (
	"bytes"
	"errors"
	"math"
	"strconv"
	"unsafe"
)

// ParseFloat parses a decimal floating point value for the requested bit
// size. Besides the decimal and exponent forms it accepts INF, -INF and
// NaN. Values whose magnitude exceeds the target size are reported as
// ParseOverflow; values too small to represent round to zero.
func ParseFloat(b []byte, bits int) (float64, *ParseError) {
	if len(b) == 0 {
		return 0, &ParseError{Kind: ParseEmpty}
	}
	switch {
	case bytes.Equal(b, []byte("INF")):
		return math.Inf(1), nil
	case bytes.Equal(b, []byte("-INF")):
		return math.Inf(-1), nil
	case bytes.Equal(b, []byte("NaN")):
		return math.NaN(), nil
	}
	if !isFloatLexical(b) {
		if (b[0] == '+' || b[0] == '-') && len(b) == 1 {
			return 0, &ParseError{Kind: ParseNoDigits}
		}
		return 0, &ParseError{Kind: ParseBadChar}
	}
	lexical := unsafe.String(unsafe.SliceData(b), len(b))
	f, err := strconv.ParseFloat(lexical, bits)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			if math.IsInf(f, 0) {
				return 0, &ParseError{Kind: ParseOverflow}
			}
			return f, nil
		}
		return 0, &ParseError{Kind: ParseBadChar}
	}
	return f, nil
}

func isFloatLexical(value []byte) bool {
	if len(value) == 0 {
		return false
	}
	i := 0
	if value[i] == '+' || value[i] == '-' {
		i++
		if i == len(value) {
			return false
		}
	}
	startDigits := 0
	for i < len(value) && isDigit(value[i]) {
		i++
		startDigits++
	}
	if i < len(value) && value[i] == '.' {
		i++
		fracDigits := 0
		for i < len(value) && isDigit(value[i]) {
			i++
			fracDigits++
		}
		if startDigits == 0 && fracDigits == 0 {
			return false
		}
	} else if startDigits == 0 {
		return false
	}
	if i < len(value) && (value[i] == 'e' || value[i] == 'E') {
		i++
		if i == len(value) {
			return false
		}
		if value[i] == '+' || value[i] == '-' {
			i++
			if i == len(value) {
				return false
			}
		}
		expDigits := 0
		for i < len(value) && isDigit(value[i]) {
			i++
			expDigits++
		}
		if expDigits == 0 {
			return false
		}
	}
	return i == len(value)
}
