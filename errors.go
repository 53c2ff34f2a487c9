package bigbigint

import "errors"

// ErrDivisionByZero is returned by DivMod, Div, Mod and their compound
// forms when the divisor is zero. Division by zero is a deterministic,
// recoverable error; it never terminates the process.
var ErrDivisionByZero = errors.New("bigbigint: division by zero")
