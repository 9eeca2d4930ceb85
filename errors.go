package notation

import (
	"fmt"

	"golang.org/x/xerrors"
)

var (
	// ErrDivisionByZero is reported when the right operand
	// of a division is zero.
	ErrDivisionByZero = xerrors.New("division by zero")

	// ErrInvalidOperator is reported when an operator
	// has no arithmetic defined for it.
	ErrInvalidOperator = xerrors.New("invalid operator")

	// ErrMalformed is reported when an operator finds fewer
	// than two operands, or when a scan does not end with
	// exactly one operand.
	ErrMalformed = xerrors.New("malformed expression")

	// ErrUnknownNotation is reported for a notation name
	// that ParseNotation does not recognise.
	ErrUnknownNotation = xerrors.New("unknown notation")
)

// Error records a failed evaluation or conversion.
type Error struct {
	Op     string // the function that failed, e.g. "EvalPostfix"
	Expr   string // its input
	Offset int    // byte offset in Expr; len(Expr) when the failure is at the end
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %q: offset %d: %v", e.Op, e.Expr, e.Offset, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
