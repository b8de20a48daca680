package calc_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alecthomas/calc"
)

func TestGrammar(t *testing.T) {
	grammar, err := calc.ParseGrammar()
	require.NoError(t, err)
	for _, name := range []string{"Expression", "Term", "Factor", "Primary", "number", "digits", "digit"} {
		require.Contains(t, grammar, name)
	}
	require.Len(t, grammar, 7)
	require.Equal(t, calc.GrammarStart, "Expression")
}
