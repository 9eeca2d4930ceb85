package notation

// PrefixToInfix rebuilds the infix form of the prefix
// expression expr, wrapping every operation in parentheses:
// "*+234" becomes "((2+3)*4)".
//
// The expression is scanned from its end, so the operand on
// top of the stack is the left-hand one.
func PrefixToInfix(expr string) (string, error) {
	var s stack[string]
	for i := len(expr) - 1; i >= 0; i-- {
		c := expr[i]
		switch {
		case isDigit(c):
			s.push(expr[i : i+1])
		case IsOperator(c):
			if s.len() < 2 {
				return "", &Error{"PrefixToInfix", expr, i, ErrMalformed}
			}
			arg := s.popN(2)
			s.push(group(arg[1], c, arg[0]))
		}
	}
	if s.len() != 1 {
		return "", &Error{"PrefixToInfix", expr, len(expr), ErrMalformed}
	}
	return s.pop(), nil
}
