package xmlpull

import "unicode/utf8"

// parseEntityRef decodes the reference at the start of data, which begins
// with '&'. It returns the number of bytes consumed and the referenced
// code point.
func parseEntityRef(data []byte) (int, rune, error) {
	end := 1
	for end < len(data) && data[end] != ';' {
		if !nameByteLUT[data[end]] && data[end] != '#' {
			return 0, 0, errEntityUnterminated
		}
		end++
	}
	if end == len(data) {
		return 0, 0, errEntityUnterminated
	}
	ref := data[1:end]
	if len(ref) > 0 && ref[0] == '#' {
		r, err := parseCharRef(ref[1:])
		if err != nil {
			return 0, 0, err
		}
		return end + 1, r, nil
	}
	switch string(ref) {
	case "amp":
		return end + 1, '&', nil
	case "lt":
		return end + 1, '<', nil
	case "gt":
		return end + 1, '>', nil
	case "apos":
		return end + 1, '\'', nil
	case "quot":
		return end + 1, '"', nil
	}
	return 0, 0, errEntityUnknown
}

// parseCharRef decodes the digits of "&#NNN;" or "&#xHHH;".
func parseCharRef(ref []byte) (rune, error) {
	base := 10
	if len(ref) > 0 && ref[0] == 'x' {
		base = 16
		ref = ref[1:]
	}
	if len(ref) == 0 {
		return 0, errCharRef
	}
	var value int64
	for _, b := range ref {
		var digit byte
		switch {
		case b >= '0' && b <= '9':
			digit = b - '0'
		case base == 16 && b >= 'a' && b <= 'f':
			digit = b - 'a' + 10
		case base == 16 && b >= 'A' && b <= 'F':
			digit = b - 'A' + 10
		default:
			return 0, errCharRef
		}
		value = value*int64(base) + int64(digit)
		if value > utf8.MaxRune {
			return 0, errCharRef
		}
	}
	r := rune(value)
	if !isValidXMLChar(r) {
		return 0, errCharRef
	}
	return r, nil
}

// isValidXMLChar reports whether r is allowed in an XML document.
func isValidXMLChar(r rune) bool {
	switch {
	case r == 0x9 || r == 0xA || r == 0xD:
		return true
	case r >= 0x20 && r <= 0xD7FF:
		return true
	case r >= 0xE000 && r <= 0xFFFD:
		return true
	case r >= 0x10000 && r <= 0x10FFFF:
		return true
	default:
		return false
	}
}
