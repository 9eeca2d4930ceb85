package notation

import "golang.org/x/xerrors"

// IsOperator reports whether c is one of the binary
// operators + - * and /.
func IsOperator(c byte) bool {
	switch c {
	case '+', '-', '*', '/':
		return true
	}
	return false
}

// Priority returns the binding priority of c: 2 for * and /,
// 1 for + and -. Anything else, including a parenthesis,
// has priority 0, lower than any operator.
func Priority(c byte) int {
	switch c {
	case '+', '-':
		return 1
	case '*', '/':
		return 2
	}
	return 0
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

var arith = map[byte]func(x, y int) (int, error){
	'+': add,
	'-': sub,
	'*': mul,
	'/': quo,
}

// apply returns x op y.
func apply(op byte, x, y int) (int, error) {
	f := arith[op]
	if f == nil {
		return 0, xerrors.Errorf("operator %q: %w", op, ErrInvalidOperator)
	}
	return f(x, y)
}

func add(x, y int) (int, error) {
	return x + y, nil
}

func sub(x, y int) (int, error) {
	return x - y, nil
}

func mul(x, y int) (int, error) {
	return x * y, nil
}

// quo truncates towards zero.
func quo(x, y int) (int, error) {
	if y == 0 {
		return 0, xerrors.Errorf("%d/%d: %w", x, y, ErrDivisionByZero)
	}
	return x / y, nil
}
