package xmlpull

import (
	"errors"
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const defaultCharsetLabel = "UTF-8"

// Charset is a resolved document encoding.
type Charset struct {
	enc      encoding.Encoding
	name     string
	identity bool
}

// ResolveCharset looks label up in the IANA registry, falling back to the
// WHATWG label set for aliases such as "utf8" or "latin1".
func ResolveCharset(label string) (Charset, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return Charset{}, &EncodingError{Label: label}
	}
	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil || enc == nil {
		enc, err = htmlindex.Get(label)
		if err != nil {
			return Charset{}, &EncodingError{Label: label, Err: err}
		}
	}
	name := charsetName(enc, label)
	identity := enc == unicode.UTF8 || strings.EqualFold(name, "UTF-8")
	return Charset{enc: enc, name: name, identity: identity}, nil
}

func charsetName(enc encoding.Encoding, label string) string {
	if name, err := ianaindex.MIME.Name(enc); err == nil && name != "" {
		return name
	}
	if name, err := ianaindex.IANA.Name(enc); err == nil && name != "" {
		return name
	}
	return label
}

// Name returns the preferred MIME name of the charset, or its IANA name.
func (c Charset) Name() string {
	return c.name
}

// Encoding returns the underlying codec.
func (c Charset) Encoding() encoding.Encoding {
	return c.enc
}

// IsZero reports whether the charset has not been resolved.
func (c Charset) IsZero() bool {
	return c.enc == nil
}

// IsUTF8 reports whether decoding valid input is the identity mapping.
func (c Charset) IsUTF8() bool {
	return c.identity
}

// charsetDecoder decodes token bytes into UTF-8, reusing one transformer.
type charsetDecoder struct {
	charset Charset
	dec     *encoding.Decoder
}

func (d *charsetDecoder) appendDecoded(dst, src []byte) ([]byte, error) {
	if len(src) == 0 {
		return dst, nil
	}
	if d.charset.identity && utf8.Valid(src) {
		return append(dst, src...), nil
	}
	if d.dec == nil {
		enc := d.charset.enc
		if enc == nil {
			enc = unicode.UTF8
		}
		d.dec = enc.NewDecoder()
	}
	out, err := appendTransformed(dst, src, d.dec)
	if err != nil {
		return dst, &EncodingError{Label: d.charset.name, Err: err}
	}
	return out, nil
}

func appendTransformed(dst, src []byte, t transform.Transformer) ([]byte, error) {
	t.Reset()
	need := len(src) + utf8.UTFMax
	for {
		dst = slices.Grow(dst, need)
		nDst, nSrc, err := t.Transform(dst[len(dst):cap(dst)], src, true)
		dst = dst[:len(dst)+nDst]
		src = src[nSrc:]
		if !errors.Is(err, transform.ErrShortDst) {
			return dst, err
		}
		need = 2*len(src) + utf8.UTFMax
	}
}
