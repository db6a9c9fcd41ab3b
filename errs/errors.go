// Package errs defines the sentinel errors returned by linfit.
//
// Call sites wrap these with context using fmt.Errorf("%w: ...", ...), so
// callers should compare with errors.Is rather than by equality.
package errs

import "errors"

var (
	// ErrInvalidInput is returned when an operation receives input it cannot
	// evaluate at all: an empty dataset or value list, mismatched column
	// lengths, non-finite values, or an invalid option or coefficient count.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDegenerateInput is returned when a least-squares quantity would
	// divide by zero because a column has no variance, e.g. all x values are
	// equal (slope) or all y values are equal (R²).
	ErrDegenerateInput = errors.New("degenerate input")
)
