package notation_test

import (
	"encoding/json"

	"golang.org/x/xerrors"
	gc "gopkg.in/check.v1"

	"github.com/rogpeppe/notation"
)

type convertSuite struct{}

var _ = gc.Suite(&convertSuite{})

var parseNotationTests = []struct {
	name string
	n    notation.Notation
}{
	{"infixa", notation.Infix},
	{"INFIXA", notation.Infix},
	{" Infixa\n", notation.Infix},
	{"pós-fixa", notation.Postfix},
	{"PÓS-FIXA", notation.Postfix},
	{"pos-fixa", notation.Postfix},
	{"pré-fixa", notation.Prefix},
	{"Pré-Fixa", notation.Prefix},
	{"pre-fixa", notation.Prefix},
	{"infix", notation.Infix},
	{"postfix", notation.Postfix},
	{"Prefix", notation.Prefix},
}

func (*convertSuite) TestParseNotation(c *gc.C) {
	for _, test := range parseNotationTests {
		n, err := notation.ParseNotation(test.name)
		c.Assert(err, gc.IsNil, gc.Commentf("%q", test.name))
		c.Check(n, gc.Equals, test.n, gc.Commentf("%q", test.name))
	}
	for _, name := range []string{"", "infixo", "pós fixa", "rpn"} {
		_, err := notation.ParseNotation(name)
		c.Check(xerrors.Is(err, notation.ErrUnknownNotation), gc.Equals, true, gc.Commentf("%q", name))
	}
}

var convertTests = []struct {
	about  string
	expr   string
	n      notation.Notation
	result notation.Result
}{{
	about: "infix input",
	expr:  "(1+2)*3",
	n:     notation.Infix,
	result: notation.Result{
		Notation: notation.Infix,
		Infix:    "(1+2)*3",
		Postfix:  "1 2 + 3 *",
		Prefix:   "* + 1 2 3",
		Value:    9,
	},
}, {
	about: "postfix input",
	expr:  "23+",
	n:     notation.Postfix,
	result: notation.Result{
		Notation: notation.Postfix,
		Infix:    "(2+3)",
		Postfix:  "23+",
		Prefix:   "+ 2 3",
		Value:    5,
	},
}, {
	about: "prefix input",
	expr:  "*+234",
	n:     notation.Prefix,
	result: notation.Result{
		Notation: notation.Prefix,
		Infix:    "((2+3)*4)",
		Postfix:  "2 3 + 4 *",
		Prefix:   "*+234",
		Value:    20,
	},
}, {
	about: "prefix input with subtraction",
	expr:  "- 9 - 5 2",
	n:     notation.Prefix,
	result: notation.Result{
		Notation: notation.Prefix,
		Infix:    "(9-(5-2))",
		Postfix:  "9 5 2 - -",
		Prefix:   "- 9 - 5 2",
		Value:    6,
	},
}, {
	about: "prefix input with division",
	expr:  "/82",
	n:     notation.Prefix,
	result: notation.Result{
		Notation: notation.Prefix,
		Infix:    "(8/2)",
		Postfix:  "8 2 /",
		Prefix:   "/82",
		Value:    4,
	},
}}

func (*convertSuite) TestConvert(c *gc.C) {
	for i, test := range convertTests {
		c.Logf("test %d: %s", i, test.about)
		r, err := notation.Convert(test.expr, test.n)
		c.Assert(err, gc.IsNil)
		c.Check(*r, gc.DeepEquals, test.result)
	}
}

func (*convertSuite) TestConvertErrors(c *gc.C) {
	_, err := notation.Convert("9/(3-3)", notation.Infix)
	c.Check(xerrors.Is(err, notation.ErrDivisionByZero), gc.Equals, true)

	_, err = notation.Convert("12+3", notation.Postfix)
	c.Check(xerrors.Is(err, notation.ErrMalformed), gc.Equals, true)

	_, err = notation.Convert("+1", notation.Prefix)
	c.Check(xerrors.Is(err, notation.ErrMalformed), gc.Equals, true)

	_, err = notation.Convert("1+1", notation.Notation(0))
	c.Check(xerrors.Is(err, notation.ErrUnknownNotation), gc.Equals, true)
}

func (*convertSuite) TestResultJSON(c *gc.C) {
	r, err := notation.Convert("1+2*3", notation.Infix)
	c.Assert(err, gc.IsNil)
	data, err := json.Marshal(r)
	c.Assert(err, gc.IsNil)
	c.Assert(string(data), gc.Equals, `{"notation":"infix","infix":"1+2*3","postfix":"1 2 3 * +","prefix":"+ 1 * 2 3","value":7}`)

	var r1 notation.Result
	err = json.Unmarshal([]byte(`{"notation":"pós-fixa","value":3}`), &r1)
	c.Assert(err, gc.IsNil)
	c.Assert(r1.Notation, gc.Equals, notation.Postfix)

	err = json.Unmarshal([]byte(`{"notation":"octal"}`), &r1)
	c.Assert(xerrors.Is(err, notation.ErrUnknownNotation), gc.Equals, true)
}

func (*convertSuite) TestNotationString(c *gc.C) {
	c.Check(notation.Infix.String(), gc.Equals, "infix")
	c.Check(notation.Postfix.String(), gc.Equals, "postfix")
	c.Check(notation.Prefix.String(), gc.Equals, "prefix")
	c.Check(notation.Notation(9).String(), gc.Equals, "Notation(9)")
}
