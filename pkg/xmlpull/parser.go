package xmlpull

import (
	"io"
)

// Parser is a pull tokenizer over one XML document.
//
// Each call to Next scans exactly one token and precomputes the event that
// follows it. Token bytes are exposed as views into the parser's window and
// stay valid until the next call to Next. A Parser is not safe for
// concurrent use.
type Parser struct {
	win     window
	err     error
	charset Charset
	decoder charsetDecoder
	opts    parserOptions
	scratch []byte
	token   Token
	event   Event
	next    Event
	depth   int
}

// NewBytes returns a parser over a complete in-memory document.
// The slice is read in place and must not be modified while parsing.
func NewBytes(doc []byte, opts ...Options) *Parser {
	return &Parser{
		win:  newFixedWindow(doc),
		opts: resolveOptions(JoinOptions(opts...)),
		next: EventStartDocument,
	}
}

// NewReader returns a parser that streams the document from r.
// Memory use is bounded by the longest single token, not by the document.
func NewReader(r io.Reader, opts ...Options) *Parser {
	resolved := resolveOptions(JoinOptions(opts...))
	return &Parser{
		win:  newStreamWindow(r, resolved.bufferSize),
		opts: resolved,
		next: EventStartDocument,
	}
}

// Next advances to the next token and returns its event.
//
// After EndDocument every call returns EndDocument again. Errors are
// sticky: once Next fails it returns the same error forever.
func (p *Parser) Next() (Event, error) {
	if p.err != nil {
		return EventNone, p.err
	}
	event := p.next
	p.token = Token{event: event}
	switch event {
	case EventStartTag:
		p.depth++
	case EventEndTag, EventEndTagWithoutText:
		p.depth--
	}
	next, err := p.scan(event)
	if err != nil {
		p.err = err
		return EventNone, err
	}
	p.event = event
	p.next = next
	return event, nil
}

func (p *Parser) scan(event Event) (Event, error) {
	switch event {
	case EventStartDocument:
		return p.scanStartDocument()
	case EventEndDocument:
		p.begin()
		return EventEndDocument, nil
	case EventStartTag:
		return p.scanStartTag()
	case EventEndTag:
		return p.scanEndTag()
	case EventEndTagWithoutText:
		return p.scanEndTagWithoutText()
	case EventAttributeName:
		return p.scanAttributeName()
	case EventAttributeValue:
		return p.scanAttributeValue()
	case EventText:
		return p.scanText()
	default:
		return EventNone, p.syntaxError(errAfterEndTag)
	}
}

// Event returns the current event, or EventNone before the first Next.
func (p *Parser) Event() Event {
	return p.event
}

// PeekEvent returns the event the next call to Next will produce.
func (p *Parser) PeekEvent() Event {
	return p.next
}

// Depth returns the number of open elements. A StartTag counts itself.
func (p *Parser) Depth() int {
	return p.depth
}

// Token returns the flags of the current token.
func (p *Parser) Token() Token {
	return p.token
}

// Charset returns the resolved document charset. It is the zero Charset
// until the first Next has processed the prolog.
func (p *Parser) Charset() Charset {
	return p.charset
}

// Position returns the line and column where the current token starts.
func (p *Parser) Position() Position {
	return p.win.positionAt(p.win.start)
}

// InputOffset returns the absolute offset of the scan cursor. It lies past
// the current token and any lookahead consumed while computing PeekEvent.
func (p *Parser) InputOffset() int64 {
	return p.win.offset()
}

// SkipCurrentTag consumes the current element and all of its descendants.
// Called on a StartTag or inside its attributes, it returns with the parser
// positioned on the element's EndTag or EndTagWithoutText.
func (p *Parser) SkipCurrentTag() error {
	target := p.depth - 1
	if target < 0 {
		return nil
	}
	for {
		event, err := p.Next()
		if err != nil {
			return err
		}
		if p.depth == target && (event == EventEndTag || event == EventEndTagWithoutText) {
			return nil
		}
		if event == EventEndDocument {
			return nil
		}
	}
}

// begin marks the cursor as the start of the current token.
// Bytes before it may be discarded by the window from now on.
func (p *Parser) begin() {
	p.win.start = p.win.pos
}

// end closes the current token span at the cursor.
func (p *Parser) end() {
	p.token.length = p.win.pos - p.win.start
}

// syntaxError builds a SyntaxError located at the cursor.
func (p *Parser) syntaxError(err error) error {
	return p.syntaxErrorAt(p.win.pos, err)
}

func (p *Parser) syntaxErrorAt(pos int, err error) error {
	where := p.win.positionAt(pos)
	return &SyntaxError{
		Offset:  p.win.base + int64(pos),
		Line:    where.Line,
		Column:  where.Column,
		Snippet: p.win.snippet(pos),
		Err:     err,
	}
}

// eofError reports running out of input, preferring the read failure that
// ended it early.
func (p *Parser) eofError() error {
	if err := p.win.failed(); err != nil {
		return p.syntaxError(err)
	}
	return p.syntaxError(ErrUnexpectedEOF)
}
