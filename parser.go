package calc

import (
	"fmt"

	"github.com/alecthomas/calc/lexer"
)

// parser is a recursive descent parser for the grammar:
//
//	expression := term (('+' | '-') term)*
//	term       := factor (('*' | '/') factor)*
//	factor     := ['-'] primary
//	primary    := NUMBER | '(' expression ')'
//
// A parser is used for a single parse.
type parser struct {
	lex      *lexer.PeekingLexer
	tracer   Tracer
	maxDepth int
	// Parenthesis nesting depth.
	depth int
	// Rule nesting level, for tracing.
	level int
}

func (p *parser) parse() (Node, error) {
	node, err := p.expression()
	if err != nil {
		return nil, err
	}
	if tok := p.lex.Peek(); !tok.EOF() {
		return nil, &SyntaxError{
			Pos:        tok.Pos,
			Cursor:     p.lex.Cursor(),
			Unexpected: &tok,
			Msg:        fmt.Sprintf("unexpected trailing input %q", tok.Value),
		}
	}
	return node, nil
}

func (p *parser) expression() (Node, error) {
	return p.binary("expression", p.term, lexer.Plus, lexer.Minus)
}

func (p *parser) term() (Node, error) {
	return p.binary("term", p.factor, lexer.Star, lexer.Slash)
}

// binary parses a left-associative sequence of operands separated by any of ops.
func (p *parser) binary(rule string, operand func() (Node, error), ops ...lexer.TokenType) (Node, error) {
	p.enter(rule)
	left, err := operand()
	if err != nil {
		return nil, err
	}
	for {
		op := p.lex.Peek()
		if !isOneOf(op.Type, ops) {
			break
		}
		p.next()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		left = &BinaryOp{Pos: op.Pos, Op: op.Type, Left: left, Right: right}
	}
	p.exit(rule)
	return left, nil
}

func (p *parser) factor() (Node, error) {
	p.enter("factor")
	minus := p.lex.Peek()
	if minus.Type != lexer.Minus {
		node, err := p.primary()
		if err != nil {
			return nil, err
		}
		p.exit("factor")
		return node, nil
	}
	p.next()
	operand, err := p.primary()
	if err != nil {
		return nil, err
	}
	p.exit("factor")
	return &Negation{Pos: minus.Pos, Operand: operand}, nil
}

func (p *parser) primary() (Node, error) {
	p.enter("primary")
	tok := p.lex.Peek()
	switch tok.Type {
	case lexer.Number:
		p.next()
		p.exit("primary")
		return &Number{Pos: tok.Pos, Value: tok.Number, Text: tok.Value}, nil

	case lexer.LParen:
		cursor := p.lex.Cursor()
		p.next()
		p.depth++
		if p.maxDepth > 0 && p.depth > p.maxDepth {
			return nil, &SyntaxError{
				Pos:    tok.Pos,
				Cursor: cursor,
				Msg:    fmt.Sprintf("expression nested too deeply (maximum depth %d)", p.maxDepth),
			}
		}
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		closing := p.lex.Peek()
		if closing.Type != lexer.RParen {
			return nil, p.unexpected(closing, `")"`)
		}
		p.next()
		p.depth--
		p.exit("primary")
		return &Group{Pos: tok.Pos, Expr: expr}, nil
	}
	return nil, p.unexpected(tok, `number or "("`)
}

// unexpected creates a SyntaxError for the peeked token tok, which the parser cannot accept.
func (p *parser) unexpected(tok lexer.Token, expected string) *SyntaxError {
	return &SyntaxError{Pos: tok.Pos, Cursor: p.lex.Cursor(), Unexpected: &tok, Expected: expected}
}

func (p *parser) next() lexer.Token {
	tok := p.lex.Next()
	p.tracer.Record(Event{Kind: TokenEvent, Token: tok, Depth: p.level})
	return tok
}

func (p *parser) enter(rule string) {
	p.tracer.Record(Event{Kind: EnterEvent, Rule: rule, Token: p.lex.Peek(), Depth: p.level})
	p.level++
}

func (p *parser) exit(rule string) {
	p.level--
	p.tracer.Record(Event{Kind: ExitEvent, Rule: rule, Depth: p.level})
}

func isOneOf(t lexer.TokenType, types []lexer.TokenType) bool {
	for _, candidate := range types {
		if t == candidate {
			return true
		}
	}
	return false
}
