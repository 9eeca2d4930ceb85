package notation_test

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"golang.org/x/xerrors"
	gc "gopkg.in/check.v1"

	"github.com/rogpeppe/notation"
)

type referenceSuite struct{}

var _ = gc.Suite(&referenceSuite{})

var errRefDivisionByZero = fmt.Errorf("division by zero")

// refEval evaluates an infix expression by recursive
// descent, giving * and / precedence over + and - and
// associating to the left.
func refEval(expr string) (int, error) {
	p := &refParser{s: strings.Replace(expr, " ", "", -1)}
	v, err := p.additive()
	if err != nil {
		return 0, err
	}
	if p.pos != len(p.s) {
		return 0, fmt.Errorf("unexpected %q", p.s[p.pos:])
	}
	return v, nil
}

type refParser struct {
	s   string
	pos int
}

func (p *refParser) peek() byte {
	if p.pos >= len(p.s) {
		return 0
	}
	return p.s[p.pos]
}

func (p *refParser) additive() (int, error) {
	x, err := p.multiplicative()
	if err != nil {
		return 0, err
	}
	for p.peek() == '+' || p.peek() == '-' {
		op := p.s[p.pos]
		p.pos++
		y, err := p.multiplicative()
		if err != nil {
			return 0, err
		}
		if op == '+' {
			x += y
		} else {
			x -= y
		}
	}
	return x, nil
}

func (p *refParser) multiplicative() (int, error) {
	x, err := p.primary()
	if err != nil {
		return 0, err
	}
	for p.peek() == '*' || p.peek() == '/' {
		op := p.s[p.pos]
		p.pos++
		y, err := p.primary()
		if err != nil {
			return 0, err
		}
		if op == '*' {
			x *= y
			continue
		}
		if y == 0 {
			return 0, errRefDivisionByZero
		}
		x /= y
	}
	return x, nil
}

func (p *refParser) primary() (int, error) {
	c := p.peek()
	switch {
	case '0' <= c && c <= '9':
		p.pos++
		return int(c - '0'), nil
	case c == '(':
		p.pos++
		v, err := p.additive()
		if err != nil {
			return 0, err
		}
		if p.peek() != ')' {
			return 0, fmt.Errorf("expected ')' at %d", p.pos)
		}
		p.pos++
		return v, nil
	}
	return 0, fmt.Errorf("unexpected token at %d", p.pos)
}

// exprGenerator generates random well formed infix
// expressions.
type exprGenerator struct {
	rand *rand.Rand
}

// generate returns an expression nested no deeper
// than maxDepth. If maxDepth is 0, the result is a
// single digit.
func (g exprGenerator) generate(maxDepth int) string {
	if maxDepth == 0 || g.rand.Intn(maxDepth+1) == 0 {
		return strconv.Itoa(g.rand.Intn(10))
	}
	if g.rand.Intn(4) == 0 {
		return "(" + g.generate(maxDepth-1) + ")"
	}
	op := "+-*/"[g.rand.Intn(4)]
	sp := ""
	if g.rand.Intn(3) == 0 {
		sp = " "
	}
	return g.generate(maxDepth-1) + sp + string(op) + sp + g.generate(maxDepth-1)
}

func (*referenceSuite) TestRefEval(c *gc.C) {
	v, err := refEval("1+2*(3-4)/2")
	c.Assert(err, gc.IsNil)
	c.Assert(v, gc.Equals, 0)
	_, err = refEval("1/(2-2)")
	c.Assert(err, gc.Equals, errRefDivisionByZero)
}

func (*referenceSuite) TestAgainstReference(c *gc.C) {
	g := exprGenerator{rand.New(rand.NewSource(1))}
	for i := 0; i < 2000; i++ {
		expr := g.generate(4)
		comment := gc.Commentf("expr %q", expr)
		want, refErr := refEval(expr)
		c.Assert(refErr == nil || refErr == errRefDivisionByZero, gc.Equals, true, comment)

		postfix := notation.InfixToPostfix(expr)
		got, err := notation.EvalPostfix(postfix)
		if refErr != nil {
			c.Assert(xerrors.Is(err, notation.ErrDivisionByZero), gc.Equals, true, comment)
			continue
		}
		c.Assert(err, gc.IsNil, comment)
		c.Assert(got, gc.Equals, want, comment)

		// The fully parenthesised infix forms rebuilt from the
		// postfix and prefix conversions keep the same value.
		infix, err := notation.PostfixToInfix(postfix)
		c.Assert(err, gc.IsNil, comment)
		v, err := refEval(infix)
		c.Assert(err, gc.IsNil, comment)
		c.Assert(v, gc.Equals, got, comment)

		infix, err = notation.PrefixToInfix(notation.InfixToPrefix(expr))
		c.Assert(err, gc.IsNil, comment)
		v, err = refEval(infix)
		c.Assert(err, gc.IsNil, comment)
		c.Assert(v, gc.Equals, want, comment)
	}
}
