package calc

import (
	"errors"
	"fmt"

	"github.com/alecthomas/calc/lexer"
)

// ErrDivisionByZero is wrapped by the MathError returned when dividing by zero.
var ErrDivisionByZero = errors.New("division by zero")

// Error represents an error while evaluating an expression.
//
// The error will contain positional information if available.
type Error interface {
	error
	// Unadorned message.
	Message() string
	// Position error occurred.
	Position() lexer.Position
}

var (
	_ Error = &SyntaxError{}
	_ Error = &MathError{}
)

// SyntaxError is returned for malformed input.
//
// This includes unrecognised characters, unexpected tokens, unbalanced parentheses, empty
// expressions and trailing input.
type SyntaxError struct {
	Pos lexer.Position
	// Cursor is the index of the offending token in the token stream, for errors raised by the
	// parser.
	Cursor int
	// Unexpected token, if the error was raised by the parser.
	Unexpected *lexer.Token
	// Expected describes what the parser was looking for.
	Expected string
	// Msg overrides the default message.
	Msg string
	// Err is the underlying error, if any.
	Err error
}

func (s *SyntaxError) Error() string { return lexer.FormatError(s.Pos, s.Message()) }

// Message returns the error without positional information.
func (s *SyntaxError) Message() string {
	msg := s.Msg
	if msg == "" {
		switch {
		case s.Unexpected == nil:
			msg = "syntax error"
		case s.Unexpected.EOF():
			msg = "unexpected end of input"
		default:
			msg = fmt.Sprintf("unexpected token %q", s.Unexpected.Value)
		}
	}
	if s.Expected != "" {
		msg += fmt.Sprintf(" (expected %s)", s.Expected)
	}
	return msg
}

// Position of the offending token or character.
func (s *SyntaxError) Position() lexer.Position { return s.Pos }

func (s *SyntaxError) Unwrap() error { return s.Err }

// MathError is returned when an arithmetic operation cannot be performed.
type MathError struct {
	Pos lexer.Position
	// Op is the operator that failed, eg. "/".
	Op  string
	Err error
}

func (m *MathError) Error() string { return lexer.FormatError(m.Pos, m.Message()) }

// Message returns the error without positional information.
func (m *MathError) Message() string { return m.Err.Error() }

// Position of the failing operator.
func (m *MathError) Position() lexer.Position { return m.Pos }

func (m *MathError) Unwrap() error { return m.Err }

// wrapLexerError converts a tokenization failure into a SyntaxError.
func wrapLexerError(err error) error {
	var lerr *lexer.Error
	if errors.As(err, &lerr) {
		return &SyntaxError{Pos: lerr.Pos, Msg: lerr.Message, Err: lerr}
	}
	return err
}
