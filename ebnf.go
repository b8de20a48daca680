package calc

import (
	"strings"

	"golang.org/x/exp/ebnf"
)

// Grammar accepted by the Evaluator, in the EBNF dialect of golang.org/x/exp/ebnf.
//
// Upper-case productions are parsed; lower-case productions are lexical tokens. Whitespace may
// appear between tokens. Leading and trailing decimal points are only accepted with the
// LenientDecimals option.
const Grammar = `Expression = Term { ( "+" | "-" ) Term } .
Term       = Factor { ( "*" | "/" ) Factor } .
Factor     = [ "-" ] Primary .
Primary    = number | "(" Expression ")" .
number     = digits [ "." digits ] .
digits     = digit { digit } .
digit      = "0" … "9" .
`

// GrammarStart is the start production of Grammar.
const GrammarStart = "Expression"

// ParseGrammar parses and verifies Grammar.
func ParseGrammar() (ebnf.Grammar, error) {
	grammar, err := ebnf.Parse("grammar.ebnf", strings.NewReader(Grammar))
	if err != nil {
		return nil, err
	}
	if err := ebnf.Verify(grammar, GrammarStart); err != nil {
		return nil, err
	}
	return grammar, nil
}
