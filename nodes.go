package calc

import (
	"strconv"

	"github.com/alecthomas/calc/lexer"
)

// A Node in the syntax tree of a parsed expression.
type Node interface {
	// Position of the token that introduced the node.
	Position() lexer.Position
	// String renders the node as an expression equivalent to its source.
	String() string
	children() []Node
}

var opSymbols = map[lexer.TokenType]string{
	lexer.Plus:  "+",
	lexer.Minus: "-",
	lexer.Star:  "*",
	lexer.Slash: "/",
}

// Number is a numeric literal.
type Number struct {
	Pos   lexer.Position
	Value float64
	// Text of the literal as written, if known.
	Text string
}

func (n *Number) Position() lexer.Position { return n.Pos }
func (n *Number) children() []Node         { return nil }

func (n *Number) String() string {
	if n.Text != "" {
		return n.Text
	}
	return formatFloat(n.Value)
}

// Negation is a unary minus.
type Negation struct {
	Pos     lexer.Position
	Operand Node
}

func (n *Negation) Position() lexer.Position { return n.Pos }
func (n *Negation) children() []Node         { return []Node{n.Operand} }
func (n *Negation) String() string           { return "-" + n.Operand.String() }

// BinaryOp applies one of + - * / to two operands.
type BinaryOp struct {
	// Pos is the position of the operator.
	Pos   lexer.Position
	Op    lexer.TokenType
	Left  Node
	Right Node
}

func (b *BinaryOp) Position() lexer.Position { return b.Pos }
func (b *BinaryOp) children() []Node         { return []Node{b.Left, b.Right} }

func (b *BinaryOp) String() string {
	return b.Left.String() + " " + opSymbols[b.Op] + " " + b.Right.String()
}

// Group is a parenthesised sub-expression.
type Group struct {
	Pos  lexer.Position
	Expr Node
}

func (g *Group) Position() lexer.Position { return g.Pos }
func (g *Group) children() []Node         { return []Node{g.Expr} }
func (g *Group) String() string           { return "(" + g.Expr.String() + ")" }

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
