package notation

// InfixToPostfix converts the infix expression expr to
// postfix, separating tokens with a single space:
// "(1+2)*3" becomes "1 2 + 3 *".
//
// An operator first moves to the output every stacked
// operator of the same or higher priority, so operators of
// equal priority associate to the left: "3-2-1" becomes
// "3 2 - 1 -". Unmatched parentheses are dropped.
func InfixToPostfix(expr string) string {
	var out []byte
	var ops stack[byte]
	for i := 0; i < len(expr); i++ {
		c := expr[i]
		switch {
		case isDigit(c):
			out = append(out, c)
		case IsOperator(c):
			for !ops.empty() && ops.peek() != '(' && Priority(c) <= Priority(ops.peek()) {
				out = append(out, ops.pop())
			}
			ops.push(c)
		case c == '(':
			ops.push(c)
		case c == ')':
			out = unwind(&ops, out, '(')
		}
	}
	return words(drain(&ops, out, '('))
}

// InfixToPrefix converts the infix expression expr to
// prefix, separating tokens with a single space:
// "3-2-1" becomes "- - 3 2 1".
//
// The expression is scanned from its end, so a closing
// parenthesis opens a group and an opening one closes it,
// and tokens are produced last first. Stacked operators
// only give way to one of strictly lower priority, which
// keeps operators of equal priority associating to the left
// once the output is reversed.
func InfixToPrefix(expr string) string {
	var out []byte
	var ops stack[byte]
	for i := len(expr) - 1; i >= 0; i-- {
		c := expr[i]
		switch {
		case isDigit(c):
			out = append(out, c)
		case IsOperator(c):
			for !ops.empty() && ops.peek() != ')' && Priority(c) < Priority(ops.peek()) {
				out = append(out, ops.pop())
			}
			ops.push(c)
		case c == ')':
			ops.push(c)
		case c == '(':
			out = unwind(&ops, out, ')')
		}
	}
	out = drain(&ops, out, ')')
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return words(out)
}

// unwind moves operators from ops to out until the group
// opener open has been popped or ops is empty.
func unwind(ops *stack[byte], out []byte, open byte) []byte {
	for !ops.empty() {
		c := ops.pop()
		if c == open {
			break
		}
		out = append(out, c)
	}
	return out
}

// drain moves all remaining operators from ops to out,
// discarding any unmatched group opener.
func drain(ops *stack[byte], out []byte, open byte) []byte {
	for !ops.empty() {
		if c := ops.pop(); c != open {
			out = append(out, c)
		}
	}
	return out
}

// words returns the tokens in toks separated by spaces.
func words(toks []byte) string {
	if len(toks) == 0 {
		return ""
	}
	b := make([]byte, 0, 2*len(toks)-1)
	b = append(b, toks[0])
	for _, c := range toks[1:] {
		b = append(b, ' ', c)
	}
	return string(b)
}
