package xmlpull

// Event identifies the structural event the parser is positioned on.
type Event int8

const (
	EventNone Event = iota
	EventStartDocument
	EventEndDocument
	EventStartTag
	EventEndTag
	EventEndTagWithoutText
	EventAttributeName
	EventAttributeValue
	EventText
)

// String returns a stable name for the event, suitable for debugging.
func (e Event) String() string {
	switch e {
	case EventNone:
		return "None"
	case EventStartDocument:
		return "StartDocument"
	case EventEndDocument:
		return "EndDocument"
	case EventStartTag:
		return "StartTag"
	case EventEndTag:
		return "EndTag"
	case EventEndTagWithoutText:
		return "EndTagWithoutText"
	case EventAttributeName:
		return "AttributeName"
	case EventAttributeValue:
		return "AttributeValue"
	case EventText:
		return "Text"
	default:
		return "Unknown"
	}
}

// Token describes the most recently completed token.
// The span it refers to stays valid until the next call to Next.
type Token struct {
	event  Event
	length int
	quote  byte
	entity bool
	cdata  bool
}

// Event reports the event the token belongs to.
func (t Token) Event() Event {
	return t.event
}

// Len reports the length in bytes of the token's raw span.
func (t Token) Len() int {
	return t.length
}

// Quote returns the quote byte that opened an attribute value, or 0.
func (t Token) Quote() byte {
	return t.quote
}

// InDoubleQuote reports whether an attribute value was double quoted.
func (t Token) InDoubleQuote() bool {
	return t.quote == '"'
}

// HasEntityRef reports whether an '&' was seen outside CDATA while scanning.
func (t Token) HasEntityRef() bool {
	return t.entity
}

// HasMarkup reports whether the span contains CDATA sections or comments
// that are removed when the value is materialized.
func (t Token) HasMarkup() bool {
	return t.cdata
}
