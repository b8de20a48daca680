package lexer

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// An Option modifies the behaviour of the Lexer.
type Option func(l *Lexer)

// LenientDecimals accepts numbers with a leading or trailing decimal point, eg. ".5" and "5.".
//
// Numbers containing more than one decimal point are always rejected.
func LenientDecimals() Option {
	return func(l *Lexer) {
		l.lenientDecimals = true
	}
}

// Lexer scans an arithmetic expression into Tokens.
type Lexer struct {
	input           string
	pos             Position
	lenientDecimals bool
}

// Lex returns a Lexer over input.
func Lex(input string, options ...Option) *Lexer {
	l := &Lexer{
		input: input,
		pos:   Position{Line: 1, Column: 1},
	}
	for _, option := range options {
		option(l)
	}
	return l
}

// Next consumes and returns the next token.
//
// Once the input is exhausted Next returns an EOF token on every call.
func (l *Lexer) Next() (Token, error) {
	l.skipWhitespace()
	if l.done() {
		return EOFToken(l.pos), nil
	}
	pos := l.pos
	rn := l.peek()
	if typ, ok := operators[rn]; ok {
		l.read()
		return Token{Type: typ, Value: string(rn), Pos: pos}, nil
	}
	if isNumberRune(rn) {
		return l.scanNumber()
	}
	if rn == utf8.RuneError {
		if _, size := utf8.DecodeRuneInString(l.input[pos.Offset:]); size == 1 {
			return Token{}, Errorf(pos, "invalid UTF-8 byte %q", l.input[pos.Offset:pos.Offset+1])
		}
	}
	return Token{}, Errorf(pos, "unexpected character %q", rn)
}

func (l *Lexer) scanNumber() (Token, error) {
	pos := l.pos
	for !l.done() && isNumberRune(l.peek()) {
		l.read()
	}
	text := l.input[pos.Offset:l.pos.Offset]
	switch dots := strings.Count(text, "."); {
	case text == "." || dots > 1:
		return Token{}, Errorf(pos, "malformed number %q", text)
	case dots == 1 && !l.lenientDecimals && (text[0] == '.' || text[len(text)-1] == '.'):
		return Token{}, Errorf(pos, "malformed number %q (expected digits on both sides of the decimal point)", text)
	}
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return Token{}, Errorf(pos, "number %q out of range", text)
		}
		return Token{}, Errorf(pos, "invalid number %q", text)
	}
	return Token{Type: Number, Value: text, Number: value, Pos: pos}, nil
}

func (l *Lexer) skipWhitespace() {
	for !l.done() && unicode.IsSpace(l.peek()) {
		l.read()
	}
}

func (l *Lexer) done() bool {
	return l.pos.Offset >= len(l.input)
}

func (l *Lexer) peek() rune {
	rn, _ := utf8.DecodeRuneInString(l.input[l.pos.Offset:])
	return rn
}

func (l *Lexer) read() {
	rn, size := utf8.DecodeRuneInString(l.input[l.pos.Offset:])
	l.pos.Offset += size
	if rn == '\n' {
		l.pos.Line++
		l.pos.Column = 1
	} else {
		l.pos.Column++
	}
}

func isNumberRune(rn rune) bool {
	return (rn >= '0' && rn <= '9') || rn == '.'
}
