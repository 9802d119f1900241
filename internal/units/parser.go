package units

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxExponent bounds the magnitude of a term exponent, both as written and
// after like terms are merged.
const MaxExponent = 64

// Parser turns a unit expression string into an Expression. The grammar is
// flat and left to right:
//
//	expr := first (('*' | '/') term)*
//	first := '1' | term
//	term := symbol ('^' ['+' | '-'] integer)?
//
// Each '/' negates the exponent of the single term that follows it, so
// "m/s^2" is m·s^-2 and "kg/m/s" is kg·m^-1·s^-1. Parentheses and
// implicit multiplication are not supported.
type Parser struct {
	lexer    *Lexer
	current  Token
	previous Token
	registry *Registry
	input    string
}

// NewParser creates a parser that resolves symbols against reg.
func NewParser(reg *Registry) *Parser {
	return &Parser{registry: reg}
}

// Parse parses input into a normalized expression.
func (p *Parser) Parse(input string) (Expression, error) {
	p.input = input
	p.lexer = NewLexer(input)
	p.current = Token{}
	p.previous = Token{}
	p.advance()

	if p.current.Type == TokenEOF {
		return Expression{}, p.malformed(p.current.Position, "empty unit expression")
	}

	var terms []Term
	var starts []int
	if p.current.Type == TokenNumber {
		if p.current.Value != "1" {
			return Expression{}, p.malformed(p.current.Position, "numeric factors are not supported")
		}
		p.advance()
	} else {
		starts = append(starts, p.current.Position)
		term, err := p.parseTerm(1)
		if err != nil {
			return Expression{}, err
		}
		terms = append(terms, term)
	}

	for p.current.Type == TokenStar || p.current.Type == TokenSlash {
		sign := 1
		if p.current.Type == TokenSlash {
			sign = -1
		}
		p.advance()

		starts = append(starts, p.current.Position)
		term, err := p.parseTerm(sign)
		if err != nil {
			return Expression{}, err
		}
		terms = append(terms, term)
	}

	if p.current.Type != TokenEOF {
		return Expression{}, p.unexpected()
	}

	e, overflow := newExpression(input, terms)
	if overflow >= 0 {
		return Expression{}, p.malformed(starts[overflow], "exponent out of range")
	}
	return e, nil
}

func (p *Parser) parseTerm(sign int) (Term, error) {
	if p.current.Type != TokenIdent {
		if p.current.Type == TokenEOF {
			return Term{}, p.malformed(p.current.Position, fmt.Sprintf("expected unit after %q", p.previous.Value))
		}
		return Term{}, p.malformed(p.current.Position, fmt.Sprintf("expected unit, found %q", p.current.Value))
	}

	tok := p.current
	unit, err := p.registry.Lookup(tok.Value)
	if err != nil {
		return Term{}, &UnknownUnitError{Symbol: tok.Value, Expression: p.input, Position: tok.Position}
	}
	p.advance()

	exp := 1
	if p.current.Type == TokenCaret {
		p.advance()
		exp, err = p.parseExponent()
		if err != nil {
			return Term{}, err
		}
	}

	return Term{Unit: unit, Exponent: sign * exp}, nil
}

func (p *Parser) parseExponent() (int, error) {
	pos := p.current.Position
	neg := false
	switch p.current.Type {
	case TokenMinus:
		neg = true
		p.advance()
	case TokenPlus:
		p.advance()
	}

	if p.current.Type != TokenNumber {
		return 0, p.malformed(p.current.Position, "expected integer exponent after '^'")
	}
	if strings.Contains(p.current.Value, ".") {
		return 0, p.malformed(pos, "exponent must be an integer")
	}

	n, err := strconv.Atoi(p.current.Value)
	if err != nil || n > MaxExponent {
		return 0, p.malformed(pos, "exponent out of range")
	}
	p.advance()

	if neg {
		n = -n
	}
	return n, nil
}

// unexpected explains why parsing stopped before the end of input.
func (p *Parser) unexpected() error {
	tok := p.current
	switch tok.Type {
	case TokenIdent, TokenNumber:
		return p.malformed(tok.Position, fmt.Sprintf("implicit multiplication is not supported, use '*' before %q", tok.Value))
	case TokenIllegal:
		return p.malformed(tok.Position, fmt.Sprintf("unexpected character %q", tok.Value))
	default:
		return p.malformed(tok.Position, fmt.Sprintf("unexpected %q", tok.Value))
	}
}

func (p *Parser) advance() {
	p.previous = p.current
	p.current = p.lexer.NextToken()
}

func (p *Parser) malformed(pos int, reason string) error {
	return &MalformedExpressionError{Expression: p.input, Position: pos, Reason: reason}
}
