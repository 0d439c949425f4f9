// Package xmlecho replays the events of an xmlpull.Parser as normalized
// markup: no prolog, comments or DOCTYPE, double-quoted attributes, and
// entity-escaped text.
package xmlecho

import (
	"bufio"
	"fmt"
	"io"

	"github.com/jacoelho/xmlpull/pkg/xmlpull"
)

// Options controls how events are rendered.
type Options struct {
	// Trim drops leading and trailing whitespace from text.
	Trim bool
}

// Stats summarizes one replayed document.
type Stats struct {
	Charset  string
	Events   int
	Elements int
	MaxDepth int
	Bytes    int64
}

// Copy pulls every event from p and writes the markup to w.
// It stops at EndDocument or at the first error.
func Copy(w io.Writer, p *xmlpull.Parser, opts Options) (Stats, error) {
	out := bufio.NewWriter(w)
	var (
		stats   Stats
		open    bool
		scratch []byte
	)
	for {
		event, err := p.Next()
		if err != nil {
			return stats, err
		}
		stats.Events++
		stats.MaxDepth = max(stats.MaxDepth, p.Depth())

		switch event {
		case xmlpull.EventStartDocument:
			stats.Charset = p.Charset().Name()
		// Names are ASCII in every supported charset, so they are copied raw.
		case xmlpull.EventStartTag:
			stats.Elements++
			if open {
				scratch = append(scratch, '>')
			}
			scratch = append(scratch, '<')
			scratch = p.AppendRaw(scratch)
			open = true
		case xmlpull.EventAttributeName:
			scratch = append(scratch, ' ')
			scratch = p.AppendRaw(scratch)
			scratch = append(scratch, '=', '"')
		case xmlpull.EventAttributeValue:
			value, err := p.String(true)
			if err != nil {
				return stats, err
			}
			scratch = appendEscaped(scratch, value, true)
			scratch = append(scratch, '"')
		case xmlpull.EventText:
			value, err := text(p, opts.Trim)
			if err != nil {
				return stats, err
			}
			if open {
				scratch = append(scratch, '>')
				open = false
			}
			scratch = appendText(scratch, value)
		case xmlpull.EventEndTag:
			if open {
				scratch = append(scratch, '>')
				open = false
			}
			scratch = append(scratch, '<', '/')
			scratch = p.AppendRaw(scratch)
			scratch = append(scratch, '>')
		case xmlpull.EventEndTagWithoutText:
			scratch = append(scratch, '/', '>')
			open = false
		case xmlpull.EventEndDocument:
			stats.Bytes = p.InputOffset()
			if _, err := out.Write(scratch); err != nil {
				return stats, fmt.Errorf("write markup: %w", err)
			}
			if err := out.Flush(); err != nil {
				return stats, fmt.Errorf("flush markup: %w", err)
			}
			return stats, nil
		}
		if len(scratch) >= 4096 {
			if _, err := out.Write(scratch); err != nil {
				return stats, fmt.Errorf("write markup: %w", err)
			}
			scratch = scratch[:0]
		}
	}
}

func text(p *xmlpull.Parser, trim bool) (string, error) {
	if trim {
		return p.TrimmedString(true)
	}
	return p.String(true)
}

// appendText writes element content. Content the parser would treat as
// insignificant on its own is kept in a CDATA section so it survives a
// second parse.
func appendText(dst []byte, value string) []byte {
	if !significant(value) {
		dst = append(dst, "<![CDATA["...)
		dst = append(dst, value...)
		return append(dst, "]]>"...)
	}
	return appendEscaped(dst, value, false)
}

func significant(value string) bool {
	for i := 0; i < len(value); i++ {
		if !xmlpull.IsWhitespace(value[i]) {
			return true
		}
	}
	return false
}

func appendEscaped(dst []byte, value string, attr bool) []byte {
	for i := 0; i < len(value); i++ {
		switch c := value[i]; c {
		case '&':
			dst = append(dst, "&amp;"...)
		case '<':
			dst = append(dst, "&lt;"...)
		case '>':
			dst = append(dst, "&gt;"...)
		case '"':
			if attr {
				dst = append(dst, "&quot;"...)
			} else {
				dst = append(dst, c)
			}
		case '\t', '\n', '\r':
			if attr {
				dst = append(dst, "&#x"...)
				dst = append(dst, "0123456789ABCDEF"[c>>4], "0123456789ABCDEF"[c&0xF])
				dst = append(dst, ';')
			} else {
				dst = append(dst, c)
			}
		default:
			dst = append(dst, c)
		}
	}
	return dst
}
