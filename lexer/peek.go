package lexer

// PeekingLexer is a read cursor over a buffered token stream.
//
// The underlying tokens are never modified, and the final EOF token acts as a sentinel: once
// reached, Peek and Next keep returning it.
type PeekingLexer struct {
	cursor int
	tokens []Token
}

// Upgrade a Lexer to a PeekingLexer by consuming all of its tokens.
func Upgrade(lex *Lexer) (*PeekingLexer, error) {
	tokens, err := ConsumeAll(lex)
	if err != nil {
		return nil, err
	}
	return &PeekingLexer{tokens: tokens}, nil
}

// NewPeekingLexer creates a PeekingLexer over an existing token stream.
//
// If tokens does not end with an EOF token one is added to a copy of the stream.
func NewPeekingLexer(tokens []Token) *PeekingLexer {
	if len(tokens) == 0 || !tokens[len(tokens)-1].EOF() {
		var pos Position
		if len(tokens) > 0 {
			pos = tokens[len(tokens)-1].Pos
		}
		tokens = append(tokens[:len(tokens):len(tokens)], EOFToken(pos))
	}
	return &PeekingLexer{tokens: tokens}
}

// Cursor is the index of the next token to be returned by Peek or Next.
func (p *PeekingLexer) Cursor() int {
	return p.cursor
}

// Next consumes and returns the next token.
func (p *PeekingLexer) Next() Token {
	t := p.tokens[p.cursor]
	if p.cursor < len(p.tokens)-1 {
		p.cursor++
	}
	return t
}

// Peek at the next token without consuming it.
func (p *PeekingLexer) Peek() Token {
	return p.tokens[p.cursor]
}

