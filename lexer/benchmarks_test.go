package lexer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var benchInput = strings.Repeat("(12.5 + 3) * -4 / 2 - ", 100) + "1"

func BenchmarkTokenize(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := Tokenize(benchInput)
		require.NoError(b, err)
	}
}

func BenchmarkPeekingLexer(b *testing.B) {
	tokens, err := Tokenize(benchInput)
	require.NoError(b, err)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		lex := NewPeekingLexer(tokens)
		for !lex.Next().EOF() {
		}
	}
}
