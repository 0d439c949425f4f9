package xmlpull

import "github.com/jacoelho/xmlpull/internal/num"

// Int16 parses the raw bytes of the current token as a decimal int16.
func (p *Parser) Int16() (int16, error) {
	v, err := p.parseInt(16, "int16")
	return int16(v), err
}

// Int32 parses the raw bytes of the current token as a decimal int32.
func (p *Parser) Int32() (int32, error) {
	v, err := p.parseInt(32, "int32")
	return int32(v), err
}

// Int64 parses the raw bytes of the current token as a decimal int64.
func (p *Parser) Int64() (int64, error) {
	return p.parseInt(64, "int64")
}

// Float32 parses the raw bytes of the current token as a float32.
func (p *Parser) Float32() (float32, error) {
	v, err := p.parseFloat(32, "float32")
	return float32(v), err
}

// Float64 parses the raw bytes of the current token as a float64.
func (p *Parser) Float64() (float64, error) {
	return p.parseFloat(64, "float64")
}

func (p *Parser) parseInt(bits int, typ string) (int64, error) {
	raw := p.Raw()
	v, perr := num.ParseInt(raw, bits)
	if perr != nil {
		return 0, p.numberError(typ, raw, perr)
	}
	return v, nil
}

func (p *Parser) parseFloat(bits int, typ string) (float64, error) {
	raw := p.Raw()
	v, perr := num.ParseFloat(raw, bits)
	if perr != nil {
		return 0, p.numberError(typ, raw, perr)
	}
	return v, nil
}

func (p *Parser) numberError(typ string, raw []byte, perr *num.ParseError) error {
	where := p.Position()
	return &NumberFormatError{
		Type:   typ,
		Raw:    string(raw),
		Line:   where.Line,
		Column: where.Column,
		Err:    perr,
	}
}
