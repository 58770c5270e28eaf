package qbf

import (
	"errors"
	"fmt"
)

// ErrUsage is matched, through errors.Is, by every error raised when a
// formula is built from incompatible operands.
var ErrUsage = errors.New("invalid formula construction")

// A WidthMismatchError is raised when an operation that structurally
// requires operands of equal width is given values of different widths.
type WidthMismatchError struct {
	Op          string // Name of the faulty operation
	Left, Right int    // Widths of the operands
}

func (e *WidthMismatchError) Error() string {
	return fmt.Sprintf("%s: width mismatch between operands (%d vs %d)", e.Op, e.Left, e.Right)
}

func (e *WidthMismatchError) Unwrap() error {
	return ErrUsage
}

// RequireSameWidth panics with a *WidthMismatchError if a and b have different widths.
func RequireSameWidth(op string, a, b Valuer) {
	if wa, wb := a.Base().Width(), b.Base().Width(); wa != wb {
		panic(&WidthMismatchError{Op: op, Left: wa, Right: wb})
	}
}

// Build calls fn and returns the formula it built.
// Operations over domain values panic when misused, e.g when adding binary
// integers of different widths; if fn panics with an error matching
// ErrUsage, Build returns that error instead. Other panics are propagated.
func Build(fn func() Formula) (f Formula, err error) {
	defer func() {
		if r := recover(); r != nil {
			if rerr, ok := r.(error); ok && errors.Is(rerr, ErrUsage) {
				f, err = nil, rerr
				return
			}
			panic(r)
		}
	}()
	return fn(), nil
}
