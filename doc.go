/*
Package notation converts arithmetic expressions between infix,
postfix (reverse Polish) and prefix (Polish) notation, and evaluates
them.

Operands are single decimal digits and the only operators are the
binary + - * and /. Infix expressions may use parentheses. Whitespace
is ignored on input; the postfix and prefix forms produced here
separate their tokens with a single space.

	InfixToPostfix("(1+2)*3")	// "1 2 + 3 *"
	InfixToPrefix("3-2-1")	// "- - 3 2 1"
	EvalPostfix("1 2 + 3 *")	// 9
	PostfixToInfix("23+")	// "(2+3)"
	PrefixToInfix("+23")	// "(2+3)"

Operators of equal priority associate to the left. The infix forms
rebuilt from postfix or prefix input parenthesise every operation.

Characters that play no part in a notation are skipped rather
than reported, so "1a+2" converts exactly as "1+2" does. Failures
(division by zero, too few or too many operands) are reported as an
*Error wrapping ErrDivisionByZero, ErrInvalidOperator or ErrMalformed.

All functions are pure and safe for concurrent use.
*/
package notation
