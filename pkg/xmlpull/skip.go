package xmlpull

// skip consumes insignificant whitespace, comments and DOCTYPE
// declarations. It reports how many bytes were consumed so callers can tell
// a separating gap from an adjacent delimiter.
func (p *Parser) skip() (int, error) {
	from := p.win.offset()
	for {
		c := p.win.skipWhile(&whitespaceLUT)
		if c != '<' || p.win.peek(1) != '!' {
			break
		}
		if p.win.hasPrefix(litCommentOpen) {
			if err := p.skipSection(litCommentOpen, litCommentClose); err != nil {
				return 0, err
			}
			continue
		}
		if p.win.hasPrefix(litDoctype) {
			if err := p.skipDoctype(); err != nil {
				return 0, err
			}
			continue
		}
		break
	}
	return int(p.win.offset() - from), nil
}

// skipSection consumes open, everything up to closer, and closer itself.
func (p *Parser) skipSection(open, closer []byte) error {
	p.win.move(len(open))
	if !p.win.seekLiteral(closer) {
		return p.eofError()
	}
	p.win.move(len(closer))
	return nil
}

// skipDoctype consumes "<!DOCTYPE ...>", including an internal subset in
// brackets. Quoted literals and comments inside it may contain any of the
// delimiters.
func (p *Parser) skipDoctype() error {
	p.win.move(len(litDoctype))
	depth := 0
	for {
		c := p.win.skipUntil(&doctypeStopLUT)
		switch c {
		case endOfInput:
			return p.eofError()
		case '"', '\'':
			p.win.move(1)
			if !p.win.seekLiteral([]byte{byte(c)}) {
				return p.eofError()
			}
		case '<':
			if p.win.hasPrefix(litCommentOpen) {
				if err := p.skipSection(litCommentOpen, litCommentClose); err != nil {
					return err
				}
				continue
			}
		case '[':
			depth++
		case ']':
			if depth > 0 {
				depth--
			}
		case '>':
			if depth == 0 {
				p.win.move(1)
				return nil
			}
		}
		p.win.move(1)
	}
}
