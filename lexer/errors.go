package lexer

import "fmt"

// Error represents an error while lexing.
type Error struct {
	Message string
	Pos     Position
}

// Errorf creats a new Error at the given position.
func Errorf(pos Position, format string, args ...interface{}) *Error {
	return &Error{
		Message: fmt.Sprintf(format, args...),
		Pos:     pos,
	}
}

func (e *Error) Error() string {
	return FormatError(e.Pos, e.Message)
}

// FormatError formats an error in the form "[<line>:<column>: ]<message>"
func FormatError(pos Position, message string) string {
	if pos.Line == 0 {
		return message
	}
	return fmt.Sprintf("%d:%d: %s", pos.Line, pos.Column, message)
}
