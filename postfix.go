package notation

// EvalPostfix evaluates the postfix expression expr.
// Each digit is an operand; each operator replaces the
// two operands below it on the stack with its result, the
// deeper one on the left. Other characters are skipped.
func EvalPostfix(expr string) (int, error) {
	var s stack[int]
	for i := 0; i < len(expr); i++ {
		c := expr[i]
		switch {
		case isDigit(c):
			s.push(int(c - '0'))
		case IsOperator(c):
			if s.len() < 2 {
				return 0, &Error{"EvalPostfix", expr, i, ErrMalformed}
			}
			arg := s.popN(2)
			v, err := apply(c, arg[0], arg[1])
			if err != nil {
				return 0, &Error{"EvalPostfix", expr, i, err}
			}
			s.push(v)
		}
	}
	if s.len() != 1 {
		return 0, &Error{"EvalPostfix", expr, len(expr), ErrMalformed}
	}
	return s.pop(), nil
}

// PostfixToInfix rebuilds the infix form of the postfix
// expression expr, wrapping every operation in parentheses:
// "23+4*" becomes "((2+3)*4)".
func PostfixToInfix(expr string) (string, error) {
	var s stack[string]
	for i := 0; i < len(expr); i++ {
		c := expr[i]
		switch {
		case isDigit(c):
			s.push(expr[i : i+1])
		case IsOperator(c):
			if s.len() < 2 {
				return "", &Error{"PostfixToInfix", expr, i, ErrMalformed}
			}
			arg := s.popN(2)
			s.push(group(arg[0], c, arg[1]))
		}
	}
	if s.len() != 1 {
		return "", &Error{"PostfixToInfix", expr, len(expr), ErrMalformed}
	}
	return s.pop(), nil
}

func group(x string, op byte, y string) string {
	return "(" + x + string(op) + y + ")"
}
