package xmlpull

var (
	litBOM          = []byte("\xEF\xBB\xBF")
	litDecl         = []byte("<?xml")
	litPIOpen       = []byte("<?")
	litPIClose      = []byte("?>")
	litEncoding     = []byte("encoding")
	litCommentOpen  = []byte("<!--")
	litCommentClose = []byte("-->")
	litDoctype      = []byte("<!DOCTYPE")
	litCDATAOpen    = []byte("<![CDATA[")
	litCDATAClose   = []byte("]]>")
)

// scanStartDocument consumes the prolog and resolves the charset. It leaves
// the cursor on the name of the root element.
func (p *Parser) scanStartDocument() (Event, error) {
	p.begin()
	if p.win.hasPrefix(litBOM) {
		p.win.move(len(litBOM))
		p.begin()
	}
	if p.opts.charset != "" {
		charset, err := ResolveCharset(p.opts.charset)
		if err != nil {
			return EventNone, err
		}
		p.setCharset(charset)
	}
	if _, err := p.skip(); err != nil {
		return EventNone, err
	}
	p.begin()
	if p.win.hasPrefix(litDecl) {
		if c := p.win.peek(len(litDecl)); isSpace(c) || c == '?' {
			if err := p.scanDeclaration(); err != nil {
				return EventNone, err
			}
		}
	}
	for {
		if _, err := p.skip(); err != nil {
			return EventNone, err
		}
		p.begin()
		if !p.win.hasPrefix(litPIOpen) {
			break
		}
		p.win.move(len(litPIOpen))
		if !p.win.seekLiteral(litPIClose) {
			return EventNone, p.eofError()
		}
		p.win.move(len(litPIClose))
	}
	if p.charset.IsZero() {
		charset, err := ResolveCharset(p.opts.defaultCharset)
		if err != nil {
			return EventNone, err
		}
		p.setCharset(charset)
	}
	switch c := p.win.peek(0); {
	case c == endOfInput:
		return EventNone, p.eofError()
	case c != '<':
		return EventNone, p.syntaxError(errDocumentStart)
	}
	switch c := p.win.peek(1); {
	case c == endOfInput:
		return EventNone, p.eofError()
	case !isName(c):
		return EventNone, p.syntaxError(errElementName)
	}
	p.win.move(1)
	return EventStartTag, nil
}

func (p *Parser) setCharset(charset Charset) {
	p.charset = charset
	p.decoder = charsetDecoder{charset: charset}
}

// scanDeclaration consumes "<?xml ... ?>". The encoding pseudo-attribute is
// only looked at while no charset is known.
func (p *Parser) scanDeclaration() error {
	p.win.move(len(litDecl))
	if p.charset.IsZero() {
		for {
			c := p.win.skipUntil(&declStopLUT)
			switch {
			case c == endOfInput:
				return p.eofError()
			case c == '?' && p.win.peek(1) == '>':
				p.win.move(len(litPIClose))
				return nil
			case c == 'e' && p.win.hasPrefix(litEncoding):
				p.win.move(len(litEncoding))
				if err := p.scanEncoding(); err != nil {
					return err
				}
			default:
				p.win.move(1)
				continue
			}
			break
		}
	}
	if !p.win.seekLiteral(litPIClose) {
		return p.eofError()
	}
	p.win.move(len(litPIClose))
	return nil
}

// scanEncoding reads `= "label"` and resolves the label.
func (p *Parser) scanEncoding() error {
	c := p.win.skipWhile(&whitespaceLUT)
	if c == endOfInput {
		return p.eofError()
	}
	if c != '=' {
		return p.syntaxError(errDeclEquals)
	}
	p.win.move(1)
	quote := p.win.skipWhile(&whitespaceLUT)
	if quote == endOfInput {
		return p.eofError()
	}
	if quote != '"' && quote != '\'' {
		return p.syntaxError(errDeclQuote)
	}
	p.win.move(1)
	labelOffset := p.win.offset()
	var label []byte
	for {
		c = p.win.peek(0)
		if c == endOfInput {
			return p.eofError()
		}
		if c == quote {
			break
		}
		label = append(label, byte(c))
		p.win.move(1)
	}
	charset, err := ResolveCharset(string(label))
	if err != nil {
		return p.syntaxErrorAt(int(labelOffset-p.win.base), err)
	}
	p.win.move(1)
	p.setCharset(charset)
	return nil
}

// scanStartTag scans an element name. The cursor is on its first byte.
func (p *Parser) scanStartTag() (Event, error) {
	p.begin()
	c := p.win.skipWhile(&nameByteLUT)
	p.end()
	if c == '>' {
		p.win.move(1)
		return p.afterStartTag()
	}
	gap, err := p.skip()
	if err != nil {
		return EventNone, err
	}
	switch c = p.win.peek(0); {
	case c == endOfInput:
		return EventNone, p.eofError()
	case c == '/':
		p.win.move(1)
		return EventEndTagWithoutText, nil
	case c == '>':
		p.win.move(1)
		return p.afterStartTag()
	case gap > 0 && isName(c):
		return EventAttributeName, nil
	}
	return EventNone, p.syntaxError(errStartTag)
}

// afterStartTag decides what follows '>': a child element, the closing tag
// or text. Text starts right after '>', so the lookahead is undone for it.
func (p *Parser) afterStartTag() (Event, error) {
	mark := p.win.offset()
	if _, err := p.skip(); err != nil {
		return EventNone, err
	}
	if p.win.peek(0) == '<' {
		switch c := p.win.peek(1); {
		case isName(c):
			p.win.move(1)
			return EventStartTag, nil
		case c == '/':
			p.win.move(2)
			return EventEndTag, nil
		}
	}
	p.win.seek(mark)
	return EventText, nil
}

// scanAttributeName scans a name and the following `=` up to the opening
// quote of the value.
func (p *Parser) scanAttributeName() (Event, error) {
	p.begin()
	p.win.skipWhile(&nameByteLUT)
	p.end()
	c := p.win.skipWhile(&whitespaceLUT)
	if c == endOfInput {
		return EventNone, p.eofError()
	}
	if c != '=' {
		return EventNone, p.syntaxError(errAttrEquals)
	}
	p.win.move(1)
	c = p.win.skipWhile(&whitespaceLUT)
	if c == endOfInput {
		return EventNone, p.eofError()
	}
	if c != '"' && c != '\'' {
		return EventNone, p.syntaxError(errAttrQuote)
	}
	return EventAttributeValue, nil
}

// scanAttributeValue scans a quoted value. The cursor is on the opening
// quote; the token excludes both quotes.
func (p *Parser) scanAttributeValue() (Event, error) {
	quote := byte(p.win.peek(0))
	p.win.move(1)
	p.begin()
	p.token.quote = quote
	stop := &doubleQuoteStopLUT
	if quote == '\'' {
		stop = &singleQuoteStopLUT
	}
	for {
		c := p.win.skipUntil(stop)
		switch {
		case c == endOfInput:
			return EventNone, p.eofError()
		case c == int(quote):
			p.end()
			p.win.move(1)
			return p.afterAttributeValue()
		case c == '&':
			p.token.entity = true
			p.win.move(1)
		case p.win.hasPrefix(litCDATAOpen):
			p.token.cdata = true
			if err := p.skipSection(litCDATAOpen, litCDATAClose); err != nil {
				return EventNone, err
			}
		default:
			p.win.move(1)
		}
	}
}

func (p *Parser) afterAttributeValue() (Event, error) {
	if _, err := p.skip(); err != nil {
		return EventNone, err
	}
	switch c := p.win.peek(0); {
	case c == endOfInput:
		return EventNone, p.eofError()
	case isName(c):
		return EventAttributeName, nil
	case c == '>':
		p.win.move(1)
		return p.afterStartTag()
	case c == '/':
		p.win.move(1)
		return EventEndTagWithoutText, nil
	}
	return EventNone, p.syntaxError(errAfterAttr)
}

// scanText scans element content up to the next end tag. CDATA sections
// and comments stay inside the token and are removed on materialization.
func (p *Parser) scanText() (Event, error) {
	p.begin()
	for {
		c := p.win.skipUntil(&textStopLUT)
		switch {
		case c == endOfInput:
			return EventNone, p.eofError()
		case c == '&':
			p.token.entity = true
			p.win.move(1)
		case p.win.peek(1) == '/':
			p.end()
			p.win.move(2)
			return EventEndTag, nil
		case p.win.hasPrefix(litCDATAOpen):
			p.token.cdata = true
			if err := p.skipSection(litCDATAOpen, litCDATAClose); err != nil {
				return EventNone, err
			}
		case p.win.hasPrefix(litCommentOpen):
			p.token.cdata = true
			if err := p.skipSection(litCommentOpen, litCommentClose); err != nil {
				return EventNone, err
			}
		case p.win.peek(1) == endOfInput:
			return EventNone, p.eofError()
		default:
			return EventNone, p.syntaxError(errTextFollower)
		}
	}
}

// scanEndTag scans the name of an end tag. The cursor is past "</".
func (p *Parser) scanEndTag() (Event, error) {
	p.begin()
	c := p.win.skipWhile(&nameByteLUT)
	p.end()
	switch {
	case c == endOfInput:
		return EventNone, p.eofError()
	case c != '>':
		return EventNone, p.syntaxError(errEndTagName)
	case p.token.length == 0:
		return EventNone, p.syntaxError(errEmptyEndTag)
	}
	p.win.move(1)
	return p.afterEndTag()
}

// scanEndTagWithoutText finishes "/>". The token is empty.
func (p *Parser) scanEndTagWithoutText() (Event, error) {
	p.begin()
	switch c := p.win.peek(0); {
	case c == endOfInput:
		return EventNone, p.eofError()
	case c != '>':
		return EventNone, p.syntaxError(errSelfClosing)
	}
	p.win.move(1)
	return p.afterEndTag()
}

// afterEndTag decides what follows a closed element.
func (p *Parser) afterEndTag() (Event, error) {
	if _, err := p.skip(); err != nil {
		return EventNone, err
	}
	c := p.win.peek(0)
	if c == endOfInput {
		if p.depth > 0 {
			return EventNone, p.eofError()
		}
		if err := p.win.failed(); err != nil {
			return EventNone, p.syntaxError(err)
		}
		return EventEndDocument, nil
	}
	if c == '<' {
		switch next := p.win.peek(1); {
		case next == '/':
			if p.depth == 0 {
				return EventNone, p.syntaxError(errUnbalancedEndTag)
			}
			p.win.move(2)
			return EventEndTag, nil
		case isName(next):
			p.win.move(1)
			return EventStartTag, nil
		case next == endOfInput:
			return EventNone, p.eofError()
		}
	}
	return EventNone, p.syntaxError(errAfterEndTag)
}
