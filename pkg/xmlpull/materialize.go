package xmlpull

import (
	"bytes"
	"unicode/utf8"
)

// Raw returns the bytes of the current token. The slice aliases the
// parser's window and is only valid until the next call to Next.
func (p *Parser) Raw() []byte {
	start := p.win.start
	end := start + p.token.length
	return p.win.buf[start:end:end]
}

// AppendRaw appends the bytes of the current token to dst.
func (p *Parser) AppendRaw(dst []byte) []byte {
	return append(dst, p.Raw()...)
}

// Match reports whether the raw bytes of the current token equal expected.
// No decoding is performed.
func (p *Parser) Match(expected []byte) bool {
	return bytes.Equal(p.Raw(), expected)
}

// String materializes the current token as UTF-8.
//
// CDATA markers are removed and their content copied verbatim. Comments
// inside text are dropped. When decode is true, entity and character
// references outside CDATA are replaced. Bytes are converted from the
// document charset in either case.
func (p *Parser) String(decode bool) (string, error) {
	return p.materialize(0, p.token.length, decode)
}

// TrimmedString is String without leading and trailing whitespace.
func (p *Parser) TrimmedString(decode bool) (string, error) {
	raw := p.Raw()
	lo, hi := 0, len(raw)
	for lo < hi && whitespaceLUT[raw[lo]] {
		lo++
	}
	for hi > lo && whitespaceLUT[raw[hi-1]] {
		hi--
	}
	return p.materialize(lo, hi, decode)
}

// materialize converts raw[lo:hi] of the current token.
func (p *Parser) materialize(lo, hi int, decode bool) (string, error) {
	if lo >= hi {
		return "", nil
	}
	raw := p.Raw()[:hi]
	entities := decode && p.token.entity
	if !p.token.cdata && !entities && p.charset.IsUTF8() && utf8.Valid(raw[lo:]) {
		return string(raw[lo:]), nil
	}
	comments := p.token.event == EventText
	buf := p.scratch[:0]
	var err error
	for i := lo; i < hi; {
		j := nextMarkup(raw, i, comments)
		buf, err = p.appendText(buf, raw[i:j], entities, i)
		if err != nil {
			return "", err
		}
		if j == hi {
			break
		}
		if bytes.HasPrefix(raw[j:], litCDATAOpen) {
			body := j + len(litCDATAOpen)
			k := bytes.Index(raw[body:], litCDATAClose)
			if k < 0 {
				return "", p.syntaxErrorAt(p.win.start+j, errUnterminatedCDATA)
			}
			buf, err = p.decoder.appendDecoded(buf, raw[body:body+k])
			if err != nil {
				return "", err
			}
			i = body + k + len(litCDATAClose)
			continue
		}
		body := j + len(litCommentOpen)
		k := bytes.Index(raw[body:], litCommentClose)
		if k < 0 {
			return "", p.syntaxErrorAt(p.win.start+j, errUnterminatedMarkup)
		}
		i = body + k + len(litCommentClose)
	}
	p.scratch = buf
	return string(buf), nil
}

// nextMarkup returns the index of the next CDATA section, or comment when
// comments is set, in raw[from:], or len(raw).
func nextMarkup(raw []byte, from int, comments bool) int {
	for from < len(raw) {
		k := bytes.IndexByte(raw[from:], '<')
		if k < 0 {
			break
		}
		at := from + k
		rest := raw[at:]
		if bytes.HasPrefix(rest, litCDATAOpen) || (comments && bytes.HasPrefix(rest, litCommentOpen)) {
			return at
		}
		from = at + 1
	}
	return len(raw)
}

// appendText decodes one segment outside CDATA. at is the segment's index
// within the token, used to locate entity errors.
func (p *Parser) appendText(dst, src []byte, entities bool, at int) ([]byte, error) {
	if !entities {
		return p.decoder.appendDecoded(dst, src)
	}
	var err error
	for len(src) > 0 {
		i := bytes.IndexByte(src, '&')
		if i < 0 {
			break
		}
		if dst, err = p.decoder.appendDecoded(dst, src[:i]); err != nil {
			return dst, err
		}
		n, r, refErr := parseEntityRef(src[i:])
		if refErr != nil {
			return dst, p.syntaxErrorAt(p.win.start+at+i, refErr)
		}
		dst = utf8.AppendRune(dst, r)
		src = src[i+n:]
		at += i + n
	}
	return p.decoder.appendDecoded(dst, src)
}
