package calc

import (
	"fmt"
	"io"
	"strings"
)

// Parenthesize renders n with every operation in explicit parentheses, making the applied
// precedence and associativity visible.
//
//	Parenthesize(2 + 3 * -4) == "(2 + (3 * (-4)))"
func Parenthesize(n Node) string {
	switch n := n.(type) {
	case *Number:
		return n.String()
	case *Negation:
		return "(-" + Parenthesize(n.Operand) + ")"
	case *BinaryOp:
		return fmt.Sprintf("(%s %s %s)", Parenthesize(n.Left), opSymbols[n.Op], Parenthesize(n.Right))
	case *Group:
		return Parenthesize(n.Expr)
	}
	return fmt.Sprintf("<%T>", n)
}

// Dump writes an indented tree of n to w, one node per line.
func Dump(w io.Writer, n Node) error {
	indent := 0
	return Visit(n, func(n Node, next func() error) error {
		if _, err := fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", indent), describe(n)); err != nil {
			return err
		}
		indent++
		err := next()
		indent--
		return err
	})
}

func describe(n Node) string {
	switch n := n.(type) {
	case *Number:
		return fmt.Sprintf("Number %s @ %s", n, n.Pos)
	case *Negation:
		return fmt.Sprintf("Negation @ %s", n.Pos)
	case *BinaryOp:
		return fmt.Sprintf("BinaryOp %s @ %s", opSymbols[n.Op], n.Pos)
	case *Group:
		return fmt.Sprintf("Group @ %s", n.Pos)
	}
	return fmt.Sprintf("%T", n)
}
