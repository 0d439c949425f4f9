package num

// ParseInt parses an optionally signed decimal integer that must fit in
// bitSize bits (8, 16, 32 or 64).
//
// The magnitude is accumulated as a negative number so the minimum value
// of each size parses without overflow.
func ParseInt(b []byte, bitSize int) (int64, *ParseError) {
	if len(b) == 0 {
		return 0, &ParseError{Kind: ParseEmpty}
	}
	if bitSize <= 0 || bitSize > 64 {
		bitSize = 64
	}
	neg := false
	i := 0
	switch b[0] {
	case '+':
		i++
	case '-':
		neg = true
		i++
	}
	if i >= len(b) {
		return 0, &ParseError{Kind: ParseNoDigits}
	}
	limit := -int64(1) << (bitSize - 1)
	if !neg {
		limit++
	}
	cutoff := limit / 10
	var acc int64
	for _, c := range b[i:] {
		if !isDigit(c) {
			return 0, &ParseError{Kind: ParseBadChar}
		}
		if acc < cutoff {
			return 0, &ParseError{Kind: ParseOverflow}
		}
		acc *= 10
		d := int64(c - '0')
		if acc < limit+d {
			return 0, &ParseError{Kind: ParseOverflow}
		}
		acc -= d
	}
	if neg {
		return acc, nil
	}
	return -acc, nil
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
