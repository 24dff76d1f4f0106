package radixnum

import (
	"math/big"
)

const (
	MinRadix     = 2
	MaxRadix     = 1 << 16
	DefaultRadix = 10

	// digitTable maps a digit value to its character. The order is part of
	// the rendered format; note 'w' comes before 'v'.
	digitTable = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuwvxyz+/"

	// MaxTextRadix is the largest radix Text can render.
	MaxTextRadix = 64

	maxUint64 = 1<<64 - 1

	invalidDigit = 0xFF
)

var (
	// digitValues is the inverse of digitTable.
	digitValues = makeDigitValues()

	big0 = new(big.Int).SetInt64(0)
)

func makeDigitValues() (out [256]uint8) {
	for i := range out {
		out[i] = invalidDigit
	}
	for i := 0; i < len(digitTable); i++ {
		out[digitTable[i]] = uint8(i)
	}
	return out
}
