package lexer_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alecthomas/calc/lexer"
)

func types(tokens []lexer.Token) []lexer.TokenType {
	out := make([]lexer.TokenType, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, t.Type)
	}
	return out
}

func TestTokenize(t *testing.T) {
	tokens, err := lexer.Tokenize("2 + 3 * (4 - 1) / 5")
	require.NoError(t, err)
	require.Equal(t, []lexer.TokenType{
		lexer.Number, lexer.Plus, lexer.Number, lexer.Star, lexer.LParen, lexer.Number,
		lexer.Minus, lexer.Number, lexer.RParen, lexer.Slash, lexer.Number, lexer.EOF,
	}, types(tokens))
}

func TestTokenizePositions(t *testing.T) {
	tokens, err := lexer.Tokenize("12 +\n 3.5")
	require.NoError(t, err)
	require.Equal(t, []lexer.Token{
		{Type: lexer.Number, Value: "12", Number: 12, Pos: lexer.Position{Offset: 0, Line: 1, Column: 1}},
		{Type: lexer.Plus, Value: "+", Pos: lexer.Position{Offset: 3, Line: 1, Column: 4}},
		{Type: lexer.Number, Value: "3.5", Number: 3.5, Pos: lexer.Position{Offset: 6, Line: 2, Column: 2}},
		{Type: lexer.EOF, Pos: lexer.Position{Offset: 9, Line: 2, Column: 5}},
	}, tokens)
}

func TestTokenizeEmpty(t *testing.T) {
	for _, input := range []string{"", "   ", "\t\n"} {
		tokens, err := lexer.Tokenize(input)
		require.NoError(t, err)
		require.Len(t, tokens, 1)
		require.True(t, tokens[0].EOF())
	}
}

func TestNextAfterEOF(t *testing.T) {
	lex := lexer.Lex("1")
	tok, err := lex.Next()
	require.NoError(t, err)
	require.Equal(t, lexer.Number, tok.Type)
	for i := 0; i < 3; i++ {
		tok, err = lex.Next()
		require.NoError(t, err)
		require.True(t, tok.EOF())
	}
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"0", 0},
		{"127", 127},
		{"1.1", 1.1},
		{"12.25", 12.25},
		{"007", 7},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			tokens, err := lexer.Tokenize(test.input)
			require.NoError(t, err)
			require.Len(t, tokens, 2)
			require.Equal(t, lexer.Number, tokens[0].Type)
			require.Equal(t, test.input, tokens[0].Value)
			require.Equal(t, test.expected, tokens[0].Number)
		})
	}
}

func TestMalformedNumbers(t *testing.T) {
	tests := []struct {
		input string
		err   string
	}{
		{".5", `1:1: malformed number ".5" (expected digits on both sides of the decimal point)`},
		{"5.", `1:1: malformed number "5." (expected digits on both sides of the decimal point)`},
		{"1 + 5.5.5", `1:5: malformed number "5.5.5"`},
		{".", `1:1: malformed number "."`},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			_, err := lexer.Tokenize(test.input)
			require.EqualError(t, err, test.err)
			var lerr *lexer.Error
			require.True(t, errors.As(err, &lerr))
		})
	}
}

func TestLenientDecimals(t *testing.T) {
	tokens, err := lexer.Tokenize(".5 5.", lexer.LenientDecimals())
	require.NoError(t, err)
	require.Equal(t, 0.5, tokens[0].Number)
	require.Equal(t, 5.0, tokens[1].Number)

	_, err = lexer.Tokenize("5.5.5", lexer.LenientDecimals())
	require.EqualError(t, err, `1:1: malformed number "5.5.5"`)
	_, err = lexer.Tokenize(".", lexer.LenientDecimals())
	require.Error(t, err)
}

func TestUnexpectedCharacter(t *testing.T) {
	_, err := lexer.Tokenize("2 + x")
	require.EqualError(t, err, `1:5: unexpected character 'x'`)
	var lerr *lexer.Error
	require.True(t, errors.As(err, &lerr))
	require.Equal(t, lexer.Position{Offset: 4, Line: 1, Column: 5}, lerr.Pos)

	_, err = lexer.Tokenize("1 ^ 2")
	require.EqualError(t, err, `1:3: unexpected character '^'`)

	_, err = lexer.Tokenize("é")
	require.EqualError(t, err, `1:1: unexpected character 'é'`)
}

func TestInvalidUTF8(t *testing.T) {
	_, err := lexer.Tokenize("\xff")
	require.EqualError(t, err, `1:1: invalid UTF-8 byte "\xff"`)

	_, err = lexer.Tokenize("1 + \xc3")
	require.EqualError(t, err, `1:5: invalid UTF-8 byte "\xc3"`)

	// A correctly encoded replacement character is an ordinary unexpected character.
	_, err = lexer.Tokenize("\uFFFD")
	require.EqualError(t, err, "1:1: unexpected character '\uFFFD'")
}

func TestNumberOutOfRange(t *testing.T) {
	_, err := lexer.Tokenize("1 + " + strings.Repeat("9", 400))
	var lerr *lexer.Error
	require.True(t, errors.As(err, &lerr))
	require.Equal(t, lexer.Position{Offset: 4, Line: 1, Column: 5}, lerr.Pos)
	require.Contains(t, lerr.Message, "out of range")
}

func TestTokenTypeString(t *testing.T) {
	require.Equal(t, "Number", lexer.Number.String())
	require.Equal(t, "Slash", lexer.Slash.String())
	require.Equal(t, "TokenType(99)", lexer.TokenType(99).String())
}

func TestTokenString(t *testing.T) {
	require.Equal(t, "<EOF>", lexer.EOFToken(lexer.Position{}).String())
	tok := lexer.Token{Type: lexer.Plus, Value: "+", Pos: lexer.Position{Offset: 2, Line: 1, Column: 3}}
	require.Equal(t, "+", tok.String())
	require.Equal(t, `Token@1:3{Plus, "+"}`, tok.GoString())
}
