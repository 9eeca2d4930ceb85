package notation

import (
	"fmt"
	"strings"

	"golang.org/x/xerrors"
)

// Notation identifies the way an expression is written.
type Notation int

const (
	Infix Notation = iota + 1
	Postfix
	Prefix
)

var notationNames = []struct {
	name string
	n    Notation
}{
	{"infixa", Infix},
	{"pós-fixa", Postfix},
	{"pré-fixa", Prefix},
	{"pos-fixa", Postfix},
	{"pre-fixa", Prefix},
	{"infix", Infix},
	{"postfix", Postfix},
	{"prefix", Prefix},
}

// ParseNotation returns the notation named by s, ignoring
// case and surrounding space. It accepts the Portuguese
// names "infixa", "pós-fixa" and "pré-fixa" (with or
// without accents) as well as "infix", "postfix" and
// "prefix".
func ParseNotation(s string) (Notation, error) {
	name := strings.TrimSpace(s)
	for _, nn := range notationNames {
		if strings.EqualFold(name, nn.name) {
			return nn.n, nil
		}
	}
	return 0, xerrors.Errorf("%q: %w", s, ErrUnknownNotation)
}

func (n Notation) String() string {
	switch n {
	case Infix:
		return "infix"
	case Postfix:
		return "postfix"
	case Prefix:
		return "prefix"
	}
	return fmt.Sprintf("Notation(%d)", int(n))
}

func (n Notation) MarshalText() ([]byte, error) {
	switch n {
	case Infix, Postfix, Prefix:
		return []byte(n.String()), nil
	}
	return nil, xerrors.Errorf("%v: %w", n, ErrUnknownNotation)
}

func (n *Notation) UnmarshalText(data []byte) error {
	m, err := ParseNotation(string(data))
	if err != nil {
		return err
	}
	*n = m
	return nil
}

// Result holds an expression in all three notations,
// together with its value.
type Result struct {
	// Notation records the notation the expression was given in.
	Notation Notation `json:"notation"`
	Infix    string   `json:"infix"`
	Postfix  string   `json:"postfix"`
	Prefix   string   `json:"prefix"`
	Value    int      `json:"value"`
}

// Convert derives the other two notations of expr, which
// is written in notation n, and evaluates it. The field
// for n holds expr unchanged. Infix forms derived from
// postfix or prefix input are fully parenthesised.
//
// The value of infix or prefix input is computed by
// evaluating the derived postfix form; prefix input is
// first converted to infix and the postfix form derived
// from that, so "*+234" has the value 20.
func Convert(expr string, n Notation) (*Result, error) {
	r := &Result{Notation: n}
	var err error
	switch n {
	case Infix:
		r.Infix = expr
		r.Postfix = InfixToPostfix(expr)
		r.Prefix = InfixToPrefix(expr)
		r.Value, err = EvalPostfix(r.Postfix)
	case Postfix:
		r.Postfix = expr
		if r.Value, err = EvalPostfix(expr); err != nil {
			return nil, err
		}
		r.Infix, err = PostfixToInfix(expr)
		r.Prefix = InfixToPrefix(r.Infix)
	case Prefix:
		r.Prefix = expr
		if r.Infix, err = PrefixToInfix(expr); err != nil {
			return nil, err
		}
		r.Postfix = InfixToPostfix(r.Infix)
		r.Value, err = EvalPostfix(r.Postfix)
	default:
		return nil, xerrors.Errorf("%v: %w", n, ErrUnknownNotation)
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}
