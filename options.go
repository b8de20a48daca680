package calc

import (
	"fmt"

	"github.com/alecthomas/calc/lexer"
)

// An Option to modify the behaviour of the Evaluator.
type Option func(e *Evaluator) error

// IEEEDivision makes division by zero follow IEEE 754 semantics, returning ±Inf or NaN, instead
// of failing with a MathError.
func IEEEDivision() Option {
	return func(e *Evaluator) error {
		e.ieeeDivision = true
		return nil
	}
}

// LenientDecimals accepts numbers with a leading or trailing decimal point, eg. ".5" and "5.".
func LenientDecimals() Option {
	return func(e *Evaluator) error {
		e.lexOptions = append(e.lexOptions, lexer.LenientDecimals())
		return nil
	}
}

// MaxDepth limits how deeply parentheses may be nested.
//
// A depth of 0 removes the limit. The default is DefaultMaxDepth.
func MaxDepth(depth int) Option {
	return func(e *Evaluator) error {
		if depth < 0 {
			return fmt.Errorf("invalid maximum depth %d", depth)
		}
		e.maxDepth = depth
		return nil
	}
}

// WithTracer reports tokenizing, parsing and evaluation steps to tracer.
//
// May be given multiple times, in which case every tracer receives every event.
func WithTracer(tracer Tracer) Option {
	return func(e *Evaluator) error {
		if tracer == nil {
			return fmt.Errorf("tracer must not be nil")
		}
		e.tracers = append(e.tracers, tracer)
		return nil
	}
}
