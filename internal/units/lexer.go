package units

import (
	"fmt"
	"strings"
)

// TokenType identifies a lexical token of a unit expression.
type TokenType int

const (
	TokenEOF TokenType = iota
	TokenIllegal

	TokenIdent  // m, kg, °C
	TokenNumber // 2, 1.5

	TokenStar  // * or ·
	TokenSlash // /
	TokenCaret // ^
	TokenPlus  // +
	TokenMinus // -
)

// middleDot is accepted as a multiplication sign so that the canonical
// rendering of an expression can be parsed back.
const middleDot = "·"

// Token is a lexical token with its byte offset in the input.
type Token struct {
	Type     TokenType
	Value    string
	Position int
}

func (t Token) String() string {
	switch t.Type {
	case TokenEOF:
		return "EOF"
	case TokenIllegal:
		return fmt.Sprintf("ILLEGAL(%s)", t.Value)
	default:
		return fmt.Sprintf("%s(%s)", t.Type, t.Value)
	}
}

func (tt TokenType) String() string {
	switch tt {
	case TokenEOF:
		return "EOF"
	case TokenIllegal:
		return "ILLEGAL"
	case TokenIdent:
		return "IDENT"
	case TokenNumber:
		return "NUMBER"
	case TokenStar:
		return "STAR"
	case TokenSlash:
		return "SLASH"
	case TokenCaret:
		return "CARET"
	case TokenPlus:
		return "PLUS"
	case TokenMinus:
		return "MINUS"
	default:
		return "UNKNOWN"
	}
}

// Lexer splits a unit expression into tokens. It works on bytes; any
// byte above 127 is treated as part of an identifier, which lets symbols
// such as µm, Ω and °C through without decoding runes.
type Lexer struct {
	input    string
	position int
	readPos  int
	ch       byte
}

// NewLexer creates a lexer positioned at the first byte of input.
func NewLexer(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

// NextToken returns the next token. After the end of input it keeps
// returning EOF.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()
	pos := l.position

	if strings.HasPrefix(l.input[min(pos, len(l.input)):], middleDot) {
		for range len(middleDot) {
			l.readChar()
		}
		return Token{Type: TokenStar, Value: middleDot, Position: pos}
	}

	var tok Token
	switch l.ch {
	case '*':
		tok = newToken(TokenStar, l.ch, pos)
	case '/':
		tok = newToken(TokenSlash, l.ch, pos)
	case '^':
		tok = newToken(TokenCaret, l.ch, pos)
	case '+':
		tok = newToken(TokenPlus, l.ch, pos)
	case '-':
		tok = newToken(TokenMinus, l.ch, pos)
	case 0:
		return Token{Type: TokenEOF, Position: pos}
	default:
		switch {
		case isLetter(l.ch):
			return Token{Type: TokenIdent, Value: l.readIdentifier(), Position: pos}
		case isDigit(l.ch) || l.ch == '.':
			return Token{Type: TokenNumber, Value: l.readNumber(), Position: pos}
		default:
			tok = newToken(TokenIllegal, l.ch, pos)
		}
	}

	l.readChar()
	return tok
}

// Tokenize returns every token up to and including EOF. It stops at the
// first illegal character.
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)

		switch tok.Type {
		case TokenEOF:
			return tokens, nil
		case TokenIllegal:
			return tokens, fmt.Errorf("illegal character %q at position %d", tok.Value, tok.Position)
		}
	}
}

func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}
	l.position = l.readPos
	l.readPos++
}

func (l *Lexer) readIdentifier() string {
	start := l.position
	for l.ch != 0 && (isLetter(l.ch) || isDigit(l.ch)) {
		if strings.HasPrefix(l.input[l.position:], middleDot) {
			break
		}
		l.readChar()
	}
	return l.input[start:l.position]
}

func (l *Lexer) readNumber() string {
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' {
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	return l.input[start:l.position]
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

func newToken(tokenType TokenType, ch byte, pos int) Token {
	return Token{Type: tokenType, Value: string(ch), Position: pos}
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_' || ch > 127
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// isSymbol reports whether s lexes as exactly one identifier token, which
// is what the registry requires of every symbol and alias.
func isSymbol(s string) bool {
	if s == "" {
		return false
	}
	l := NewLexer(s)
	tok := l.NextToken()
	return tok.Type == TokenIdent && tok.Value == s && l.NextToken().Type == TokenEOF
}
