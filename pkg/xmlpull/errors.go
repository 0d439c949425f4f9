package xmlpull

import (
	"errors"
	"fmt"
)

// Error categories. Every error returned by the parser matches exactly one
// of them with errors.Is.
var (
	ErrStructure     = errors.New("malformed markup")
	ErrUnexpectedEOF = errors.New("unexpected end of document")
	ErrEncoding      = errors.New("unsupported encoding")
	ErrEntity        = errors.New("invalid entity reference")
	ErrNumberFormat  = errors.New("invalid number")
	ErrIO            = errors.New("read failure")
)

// markupError is a structural failure with a specific cause.
type markupError struct {
	msg string
}

func (e *markupError) Error() string {
	return e.msg
}

func (e *markupError) Is(target error) bool {
	return target == ErrStructure
}

// entityError is an entity failure with a specific cause.
type entityError struct {
	msg string
}

func (e *entityError) Error() string {
	return e.msg
}

func (e *entityError) Is(target error) bool {
	return target == ErrEntity
}

var (
	errDocumentStart      = &markupError{"document must begin with '<'"}
	errElementName        = &markupError{"expected element name after '<'"}
	errDeclEquals         = &markupError{"expected '=' after encoding"}
	errDeclQuote          = &markupError{"expected quoted encoding value"}
	errStartTag           = &markupError{"expected attribute, '>' or '/>' in start tag"}
	errAttrEquals         = &markupError{"expected '=' after attribute name"}
	errAttrQuote          = &markupError{"expected '\"' or '\\'' to open attribute value"}
	errAfterAttr          = &markupError{"expected attribute, '>' or '/>' after attribute value"}
	errEndTagName         = &markupError{"invalid byte in end tag name"}
	errEmptyEndTag        = &markupError{"missing end tag name"}
	errSelfClosing        = &markupError{"expected '>' after '/'"}
	errTextFollower       = &markupError{"text must be followed by an end tag"}
	errAfterEndTag        = &markupError{"expected start tag, end tag or end of document"}
	errUnbalancedEndTag   = &markupError{"end tag without matching start tag"}
	errUnterminatedCDATA  = &markupError{"unterminated CDATA section"}
	errUnterminatedMarkup = &markupError{"unterminated comment"}

	errEntityUnterminated = &entityError{"entity reference is not terminated by ';'"}
	errEntityUnknown      = &entityError{"unknown entity reference"}
	errCharRef            = &entityError{"invalid character reference"}
)

// SyntaxError reports a failure at a known position in the document.
type SyntaxError struct {
	Offset  int64
	Line    int
	Column  int
	Snippet []byte
	Err     error
}

// Error formats the syntax error with location and cause.
func (e *SyntaxError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("xml syntax error at line %d, column %d: %v", e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("xml syntax error at offset %d: %v", e.Offset, e.Err)
}

// Unwrap exposes the underlying error.
func (e *SyntaxError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// EncodingError reports a charset label that cannot be resolved.
type EncodingError struct {
	Label string
	Err   error
}

// Error formats the encoding error.
func (e *EncodingError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("unsupported encoding %q: %v", e.Label, e.Err)
	}
	return fmt.Sprintf("unsupported encoding %q", e.Label)
}

// Is matches ErrEncoding.
func (e *EncodingError) Is(target error) bool {
	return target == ErrEncoding
}

// Unwrap exposes the registry error, if any.
func (e *EncodingError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NumberFormatError reports a failed numeric conversion of the current token.
type NumberFormatError struct {
	// Type is the Go type the conversion targeted, such as "int32".
	Type string
	// Raw is a copy of the token bytes that failed to convert.
	Raw    string
	Line   int
	Column int
	Err    error
}

// Error formats the conversion failure.
func (e *NumberFormatError) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := fmt.Sprintf("could not parse %q as %s", e.Raw, e.Type)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("line %d, column %d: %s", e.Line, e.Column, msg)
	}
	return msg
}

// Is matches ErrNumberFormat.
func (e *NumberFormatError) Is(target error) bool {
	return target == ErrNumberFormat
}

// Unwrap exposes the parse failure detail.
func (e *NumberFormatError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ReadError reports a failure of the underlying reader.
// It matches both ErrIO and the reader's own error.
type ReadError struct {
	Offset int64
	Err    error
}

// Error formats the read failure.
func (e *ReadError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("xml read error at offset %d: %v", e.Offset, e.Err)
}

// Unwrap exposes ErrIO and the reader error.
func (e *ReadError) Unwrap() []error {
	if e == nil {
		return nil
	}
	return []error{ErrIO, e.Err}
}
