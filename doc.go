// Package calc evaluates arithmetic expressions such as "2 + 3 * (4 - 1)".
//
// Expressions consist of decimal numbers, the binary operators + - * /, unary minus and
// parentheses. The grammar is:
//
//	expression := term (('+' | '-') term)*
//	term       := factor (('*' | '/') factor)*
//	factor     := ['-'] primary
//	primary    := NUMBER | '(' expression ')'
//
// Multiplication and division bind tighter than addition and subtraction, and all binary
// operators are left-associative, so "10 / 2 / 5" is 1.
//
// Evaluation happens in three steps, each of which is exposed: Tokenize converts the input into
// tokens, Parse builds a syntax tree, and Eval computes its value. Evaluate does all three.
//
//	v, err := calc.Evaluate("(2 + 3) * 4")
//
// Malformed input fails with a *SyntaxError. Division by zero fails with a *MathError wrapping
// ErrDivisionByZero, unless the IEEEDivision option is used.
package calc
