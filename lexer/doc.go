// Package lexer converts arithmetic expressions into tokens.
//
// The primary types are Lexer, which scans a string one Token at a time, and PeekingLexer, which
// buffers a complete token stream and exposes a read cursor over it. Every token stream ends with
// exactly one EOF token.
package lexer
