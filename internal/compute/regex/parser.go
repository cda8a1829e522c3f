package regex

import (
	"unicode"

	"github.com/yosuke-oka/understanding-computation/internal/compute/cerr"
)

// Parse parses src against the grammar in spec §4.8:
//
//	choose := concat ( '|' choose )?
//	concat := repeat concat?      (* empty allowed here *)
//	repeat := atom ('*')?
//	atom    := '(' choose ')' | literal
//	literal := any alphabetic character (ASCII letter)
//
// Parse reports a *cerr.Error of kind cerr.ParseError (recoverable, per
// spec §7) if src does not match the grammar or leaves residual input.
func Parse(src string) (Pattern, error) {
	p := &parser{input: []rune(src)}
	pat, err := p.choose()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.input) {
		return nil, cerr.New(cerr.ParseError, "residual input at position %d: %q", p.pos, string(p.input[p.pos:]))
	}
	return pat, nil
}

type parser struct {
	input []rune
	pos   int
}

func (p *parser) peek() (rune, bool) {
	if p.pos >= len(p.input) {
		return 0, false
	}
	return p.input[p.pos], true
}

func (p *parser) advance() rune {
	c := p.input[p.pos]
	p.pos++
	return c
}

// choose := concat ( '|' choose )?
func (p *parser) choose() (Pattern, error) {
	left, err := p.concat()
	if err != nil {
		return nil, err
	}

	if c, ok := p.peek(); ok && c == '|' {
		p.advance()
		right, err := p.choose()
		if err != nil {
			return nil, err
		}
		return Choose{Left: left, Right: right}, nil
	}

	return left, nil
}

// concat := repeat concat?  (empty allowed, i.e. concat may parse nothing)
func (p *parser) concat() (Pattern, error) {
	if !p.atStartOfRepeat() {
		return Empty{}, nil
	}

	left, err := p.repeat()
	if err != nil {
		return nil, err
	}

	if p.atStartOfRepeat() {
		right, err := p.concat()
		if err != nil {
			return nil, err
		}
		return Concat{Left: left, Right: right}, nil
	}

	return left, nil
}

// atStartOfRepeat reports whether the remaining input can begin a repeat
// (i.e. an atom): either '(' or a literal character. '|' , ')' , '*' , and
// end of input cannot.
func (p *parser) atStartOfRepeat() bool {
	c, ok := p.peek()
	if !ok {
		return false
	}
	if c == '|' || c == ')' || c == '*' {
		return false
	}
	return true
}

// repeat := atom ('*')?
func (p *parser) repeat() (Pattern, error) {
	atom, err := p.atom()
	if err != nil {
		return nil, err
	}

	if c, ok := p.peek(); ok && c == '*' {
		p.advance()
		return Repeat{Sub: atom}, nil
	}

	return atom, nil
}

// atom := '(' choose ')' | literal
func (p *parser) atom() (Pattern, error) {
	c, ok := p.peek()
	if !ok {
		return nil, cerr.New(cerr.ParseError, "unexpected end of input, expected atom")
	}

	if c == '(' {
		p.advance()
		inner, err := p.choose()
		if err != nil {
			return nil, err
		}
		closing, ok := p.peek()
		if !ok || closing != ')' {
			return nil, cerr.New(cerr.ParseError, "expected ')' at position %d", p.pos)
		}
		p.advance()
		return inner, nil
	}

	return p.literal()
}

// literal := any alphabetic character (ASCII letter)
func (p *parser) literal() (Pattern, error) {
	c, ok := p.peek()
	if !ok || !isAlpha(c) {
		return nil, cerr.New(cerr.ParseError, "expected letter at position %d, got %q", p.pos, string(c))
	}
	p.advance()
	return Literal{Char: c}, nil
}

func isAlpha(c rune) bool {
	return unicode.IsLetter(c) && c < unicode.MaxASCII
}
