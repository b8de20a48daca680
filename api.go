package calc

import (
	"github.com/alecthomas/calc/lexer"
)

// DefaultMaxDepth is the default limit on parenthesis nesting.
const DefaultMaxDepth = 256

// An Evaluator tokenizes, parses and evaluates arithmetic expressions.
//
// An Evaluator holds only its configuration and is safe for concurrent use.
type Evaluator struct {
	ieeeDivision bool
	maxDepth     int
	lexOptions   []lexer.Option
	tracers      []Tracer
	tracer       Tracer
}

// New creates an Evaluator.
func New(options ...Option) (*Evaluator, error) {
	e := &Evaluator{maxDepth: DefaultMaxDepth}
	for _, option := range options {
		if err := option(e); err != nil {
			return nil, err
		}
	}
	switch len(e.tracers) {
	case 0:
		e.tracer = NopTracer
	case 1:
		e.tracer = e.tracers[0]
	default:
		e.tracer = multiTracer(e.tracers)
	}
	return e, nil
}

// MustNew creates an Evaluator or panics.
func MustNew(options ...Option) *Evaluator {
	e, err := New(options...)
	if err != nil {
		panic(err)
	}
	return e
}

var defaultEvaluator = MustNew()

// Evaluate an expression.
//
// With no options a shared default Evaluator is used.
func Evaluate(expr string, options ...Option) (float64, error) {
	if len(options) == 0 {
		return defaultEvaluator.Evaluate(expr)
	}
	e, err := New(options...)
	if err != nil {
		return 0, err
	}
	return e.Evaluate(expr)
}

// Evaluate an expression.
//
// Errors are either a *SyntaxError or a *MathError.
func (e *Evaluator) Evaluate(expr string) (float64, error) {
	node, err := e.Parse(expr)
	if err != nil {
		return 0, err
	}
	return e.Eval(node)
}

// Tokenize an expression.
//
// The returned tokens always end with a single EOF token.
func (e *Evaluator) Tokenize(expr string) ([]lexer.Token, error) {
	tokens, err := lexer.Tokenize(expr, e.lexOptions...)
	if err != nil {
		return nil, wrapLexerError(err)
	}
	return tokens, nil
}

// Parse an expression into a syntax tree without evaluating it.
func (e *Evaluator) Parse(expr string) (Node, error) {
	tokens, err := e.Tokenize(expr)
	if err != nil {
		return nil, err
	}
	return e.ParseTokens(tokens)
}

// ParseTokens parses a token stream, as produced by Tokenize, into a syntax tree.
//
// The tokens are not modified.
func (e *Evaluator) ParseTokens(tokens []lexer.Token) (Node, error) {
	p := &parser{
		lex:      lexer.NewPeekingLexer(tokens),
		tracer:   e.tracer,
		maxDepth: e.maxDepth,
	}
	return p.parse()
}
