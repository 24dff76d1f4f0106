package radixnum

import "errors"

var (
	// ErrInvalidDigit is returned when a digit or character is outside
	// [0, radix).
	ErrInvalidDigit = errors.New("radixnum: invalid digit")

	// ErrInvalidRadix is returned when a radix is outside [MinRadix, MaxRadix].
	ErrInvalidRadix = errors.New("radixnum: invalid radix")

	// ErrUnderflow is returned by Sub when the subtrahend is larger than the
	// minuend; Nat cannot represent negative values.
	ErrUnderflow = errors.New("radixnum: subtraction underflow")

	// ErrRadixUnsupported is returned by Text when the radix exceeds the
	// size of the digit table.
	ErrRadixUnsupported = errors.New("radixnum: radix unsupported for text")
)
