package lexer

import (
	"fmt"
	"strconv"
)

// TokenType identifies the kind of a Token.
type TokenType int

// Token types produced by the Lexer.
const (
	// EOF marks the end of the token stream.
	EOF TokenType = iota
	Number
	Plus
	Minus
	Star
	Slash
	LParen
	RParen
)

var tokenNames = map[TokenType]string{
	EOF:    "EOF",
	Number: "Number",
	Plus:   "Plus",
	Minus:  "Minus",
	Star:   "Star",
	Slash:  "Slash",
	LParen: "LParen",
	RParen: "RParen",
}

var operators = map[rune]TokenType{
	'+': Plus,
	'-': Minus,
	'*': Star,
	'/': Slash,
	'(': LParen,
	')': RParen,
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "TokenType(" + strconv.Itoa(int(t)) + ")"
}

// EOFToken creates a new EOF token at the given position.
func EOFToken(pos Position) Token {
	return Token{Type: EOF, Pos: pos}
}

// Position of a token.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) GoString() string {
	return fmt.Sprintf("Position{Offset: %d, Line: %d, Column: %d}", p.Offset, p.Line, p.Column)
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// A Token returned by a Lexer.
type Token struct {
	Type  TokenType
	Value string
	// Number is the parsed value of a Number token.
	Number float64
	Pos    Position
}

// EOF returns true if this Token is an EOF token.
func (t Token) EOF() bool {
	return t.Type == EOF
}

func (t Token) String() string {
	if t.EOF() {
		return "<EOF>"
	}
	return t.Value
}

func (t Token) GoString() string {
	if t.Pos == (Position{}) {
		return fmt.Sprintf("Token{%s, %q}", t.Type, t.Value)
	}
	return fmt.Sprintf("Token@%s{%s, %q}", t.Pos.String(), t.Type, t.Value)
}

// ConsumeAll reads all tokens from a Lexer, up to and including the EOF token.
func ConsumeAll(lexer *Lexer) ([]Token, error) {
	tokens := make([]Token, 0, 16)
	for {
		token, err := lexer.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
		if token.Type == EOF {
			return tokens, nil
		}
	}
}

// Tokenize scans input in its entirety.
//
// The returned slice always ends with exactly one EOF token.
func Tokenize(input string, options ...Option) ([]Token, error) {
	return ConsumeAll(Lex(input, options...))
}
