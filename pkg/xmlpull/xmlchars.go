package xmlpull

// nameByteLUT marks the bytes allowed in tag and attribute names.
// Bytes >= 0x80 are never name bytes, so multi-byte UTF-8 sequences in
// content cannot be mistaken for structure.
var nameByteLUT = [256]bool{
	'-': true, '.': true,
	'0': true, '1': true, '2': true, '3': true, '4': true,
	'5': true, '6': true, '7': true, '8': true, '9': true,
	':': true,
	'A': true, 'B': true, 'C': true, 'D': true, 'E': true, 'F': true, 'G': true,
	'H': true, 'I': true, 'J': true, 'K': true, 'L': true, 'M': true, 'N': true,
	'O': true, 'P': true, 'Q': true, 'R': true, 'S': true, 'T': true, 'U': true,
	'V': true, 'W': true, 'X': true, 'Y': true, 'Z': true,
	'_': true,
	'a': true, 'b': true, 'c': true, 'd': true, 'e': true, 'f': true, 'g': true,
	'h': true, 'i': true, 'j': true, 'k': true, 'l': true, 'm': true, 'n': true,
	'o': true, 'p': true, 'q': true, 'r': true, 's': true, 't': true, 'u': true,
	'v': true, 'w': true, 'x': true, 'y': true, 'z': true,
}

var whitespaceLUT = [256]bool{
	'\t': true,
	'\n': true,
	'\r': true,
	' ':  true,
}

// IsNameByte reports whether b may appear in a tag or attribute name.
func IsNameByte(b byte) bool {
	return nameByteLUT[b]
}

// IsWhitespace reports whether b is insignificant whitespace.
func IsWhitespace(b byte) bool {
	return whitespaceLUT[b]
}

// isName classifies a peeked value, which may be endOfInput.
func isName(c int) bool {
	return c >= 0 && nameByteLUT[c]
}

func isSpace(c int) bool {
	return c >= 0 && whitespaceLUT[c]
}

// Stop sets for the scanners. Each marks the bytes a scan loop must
// inspect; every other byte is consumed in bulk.
var (
	textStopLUT        = [256]bool{'<': true, '&': true}
	doubleQuoteStopLUT = [256]bool{'"': true, '&': true, '<': true}
	singleQuoteStopLUT = [256]bool{'\'': true, '&': true, '<': true}
	declStopLUT        = [256]bool{'e': true, '?': true}
	doctypeStopLUT     = [256]bool{'"': true, '\'': true, '[': true, ']': true, '<': true, '>': true}
)
