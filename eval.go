package calc

import (
	"fmt"

	"github.com/alecthomas/calc/lexer"
)

// Eval computes the value of a parsed expression.
//
// Trees built by hand are checked as they are evaluated: a missing operand, an unknown node or
// an unknown operator is reported as a *SyntaxError.
func (e *Evaluator) Eval(node Node) (float64, error) {
	return e.eval(node, 0)
}

func (e *Evaluator) eval(node Node, depth int) (float64, error) {
	switch n := node.(type) {
	case *Number:
		return n.Value, nil

	case *Group:
		return e.eval(n.Expr, depth)

	case *Negation:
		value, err := e.eval(n.Operand, depth+1)
		if err != nil {
			return 0, err
		}
		e.tracer.Record(Event{Kind: ApplyEvent, Rule: "negate", Value: -value, Depth: depth})
		return -value, nil

	case *BinaryOp:
		left, err := e.eval(n.Left, depth+1)
		if err != nil {
			return 0, err
		}
		right, err := e.eval(n.Right, depth+1)
		if err != nil {
			return 0, err
		}
		value, err := e.apply(n, left, right)
		if err != nil {
			return 0, err
		}
		e.tracer.Record(Event{Kind: ApplyEvent, Rule: opSymbols[n.Op], Value: value, Depth: depth})
		return value, nil

	case nil:
		return 0, &SyntaxError{Msg: "missing expression"}
	}
	return 0, &SyntaxError{Pos: node.Position(), Msg: fmt.Sprintf("unsupported node %T", node)}
}

func (e *Evaluator) apply(n *BinaryOp, left, right float64) (float64, error) {
	switch n.Op {
	case lexer.Plus:
		return left + right, nil
	case lexer.Minus:
		return left - right, nil
	case lexer.Star:
		return left * right, nil
	case lexer.Slash:
		if right == 0 && !e.ieeeDivision {
			return 0, &MathError{Pos: n.Pos, Op: opSymbols[n.Op], Err: ErrDivisionByZero}
		}
		return left / right, nil
	}
	return 0, &SyntaxError{Pos: n.Pos, Msg: fmt.Sprintf("unsupported operator %s", n.Op)}
}
