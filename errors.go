package sha256step

import "github.com/pkg/errors"

var (
	// ErrInputTooLarge is returned when the bit length of a message does not
	// fit in the 64-bit length field of the padding.
	ErrInputTooLarge = errors.New("input too large")

	// ErrInvariantViolation means one stage handed another data it cannot
	// accept. It always indicates a bug.
	ErrInvariantViolation = errors.New("invariant violation")
)
