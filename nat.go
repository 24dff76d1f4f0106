package radixnum

import (
	"fmt"
	"math/bits"
)

// Nat is an unsigned integer of arbitrary size, stored as digits in a fixed
// radix, least significant digit first.
//
// The zero value is 0 in DefaultRadix.
type Nat struct {
	radix  uint
	digits []uint16
}

// NatFrom64 creates a Nat holding v with the minimum number of digits
// (at least 1) needed in the given radix. It panics if radix is outside
// [MinRadix, MaxRadix].
func NatFrom64(v uint64, radix uint) Nat {
	mustRadix(radix)

	r := uint64(radix)
	ln := 1
	for t := v / r; t > 0; t /= r {
		ln++
	}

	out := Nat{radix: radix, digits: make([]uint16, ln)}
	for i := range out.digits {
		out.digits[i] = uint16(v % r)
		v /= r
	}
	return out
}

// NatFromDigits creates a Nat from digits ordered least significant first.
// The slice is copied. An empty slice yields zero.
func NatFromDigits(digits []uint16, radix uint) (out Nat, err error) {
	if err := checkRadix(radix); err != nil {
		return out, err
	}
	for i, d := range digits {
		if uint(d) >= radix {
			return out, fmt.Errorf("radixnum: digit at %d out of range: got %d, expected 0..%d: %w",
				i, d, radix-1, ErrInvalidDigit)
		}
	}

	ln := len(digits)
	if ln == 0 {
		ln = 1
	}
	out = Nat{radix: radix, digits: make([]uint16, ln)}
	copy(out.digits, digits)
	return out, nil
}

func checkRadix(radix uint) error {
	if radix < MinRadix || radix > MaxRadix {
		return fmt.Errorf("radixnum: radix %d not in [%d, %d]: %w", radix, MinRadix, MaxRadix, ErrInvalidRadix)
	}
	return nil
}

func mustRadix(radix uint) {
	if err := checkRadix(radix); err != nil {
		panic(err)
	}
}

// Radix returns the radix n's digits are expressed in.
func (n Nat) Radix() uint {
	if n.radix == 0 {
		return DefaultRadix
	}
	return n.radix
}

// Len returns the number of digit slots in n, which may exceed the number of
// significant digits. It is always at least 1.
func (n Nat) Len() int {
	if len(n.digits) == 0 {
		return 1
	}
	return len(n.digits)
}

// At returns the digit at position i, or 0 if i is out of range.
func (n Nat) At(i int) uint16 {
	if i < 0 || i >= len(n.digits) {
		return 0
	}
	return n.digits[i]
}

// Digits returns a copy of n's digits, least significant first.
func (n Nat) Digits() []uint16 {
	out := make([]uint16, n.Len())
	copy(out, n.digits)
	return out
}

// SigDigits returns the number of significant digits in n. Zero has one.
func (n Nat) SigDigits() int {
	for i := len(n.digits) - 1; i > 0; i-- {
		if n.digits[i] != 0 {
			return i + 1
		}
	}
	return 1
}

func (n Nat) IsZero() bool { return n.SigDigits() == 1 && n.At(0) == 0 }

// Clone returns a copy of n that shares no storage with it.
func (n Nat) Clone() Nat {
	return n.resize(n.Len())
}

// Trim returns a copy of n with its length reduced to its significant digits.
func (n Nat) Trim() Nat {
	return n.resize(n.SigDigits())
}

// resize returns a copy of n with ln digit slots. Digits past ln are
// discarded, so callers must not pass less than SigDigits.
func (n Nat) resize(ln int) Nat {
	out := Nat{radix: n.Radix(), digits: make([]uint16, ln)}
	copy(out.digits, n.digits)
	return out
}

// AsUint64 converts n to a uint64. Values outside the range silently wrap;
// see IsUint64 if you want to check before you convert.
func (n Nat) AsUint64() uint64 {
	r := uint64(n.Radix())
	var b uint64 = 1
	var sum uint64
	for i := 0; i < n.Len(); i++ {
		sum += b * uint64(n.At(i))
		b *= r
	}
	return sum
}

// IsUint64 reports whether n can be represented as a uint64.
func (n Nat) IsUint64() bool {
	r := uint64(n.Radix())
	var sum uint64
	for i := n.SigDigits() - 1; i >= 0; i-- {
		hi, lo := bits.Mul64(sum, r)
		if hi != 0 {
			return false
		}
		var carry uint64
		sum, carry = bits.Add64(lo, uint64(n.At(i)), 0)
		if carry != 0 {
			return false
		}
	}
	return true
}

func (n Nat) Cmp(m Nat) int {
	n.mustMatch(m)

	ln := n.SigDigits()
	if lm := m.SigDigits(); ln > lm {
		return 1
	} else if ln < lm {
		return -1
	}
	for i := ln - 1; i >= 0; i-- {
		if a, b := n.At(i), m.At(i); a > b {
			return 1
		} else if a < b {
			return -1
		}
	}
	return 0
}

// Equal reports whether n and m have the same magnitude, regardless of
// their lengths.
func (n Nat) Equal(m Nat) bool { return n.Cmp(m) == 0 }

func (n Nat) GreaterThan(m Nat) bool      { return n.Cmp(m) > 0 }
func (n Nat) GreaterOrEqualTo(m Nat) bool { return n.Cmp(m) >= 0 }
func (n Nat) LessThan(m Nat) bool         { return n.Cmp(m) < 0 }
func (n Nat) LessOrEqualTo(m Nat) bool    { return n.Cmp(m) <= 0 }

// Add returns n + m. The result always has one more digit than the longer
// operand to hold the carry, even if it ends up zero.
func (n Nat) Add(m Nat) (v Nat) {
	radix := n.mustMatch(m)
	v = Nat{radix: radix, digits: make([]uint16, maxInt(n.Len(), m.Len())+1)}
	addDigits(v.digits, n.digits, m.digits, uint64(radix))
	return v
}

// AddAssign sets n to n + m. n's previous digits are left untouched, so
// copies of n made before the call keep their value.
func (n *Nat) AddAssign(m Nat) {
	*n = n.Add(m)
}

// Sub returns n - m. Nat is unsigned, so if m > n, ErrUnderflow is returned.
func (n Nat) Sub(m Nat) (v Nat, err error) {
	radix := n.mustMatch(m)
	if n.LessThan(m) {
		return v, fmt.Errorf("radixnum: %s - %s: %w", n, m, ErrUnderflow)
	}
	v = Nat{radix: radix, digits: make([]uint16, maxInt(n.Len(), m.Len()))}
	if borrow := subDigits(v.digits, n.digits, m.digits, uint64(radix)); borrow != 0 {
		panic("radixnum: borrow out of sub with n >= m")
	}
	return v, nil
}

// MulDigit returns n * c. The result has one more digit than n; if c is not
// itself a valid digit in n's radix, further digits are added as needed.
func (n Nat) MulDigit(c uint16) (v Nat) {
	radix := uint64(n.Radix())
	v = Nat{radix: n.Radix(), digits: make([]uint16, n.Len()+1)}
	carry := mulDigits(v.digits, n.digits, uint64(c), radix)
	for carry > 0 {
		v.digits = append(v.digits, uint16(carry%radix))
		carry /= radix
	}
	return v
}

// ShiftDigits returns n * radix^by by inserting 'by' zero digits at the
// least significant end. This is a positional shift, not a bitwise one.
func (n Nat) ShiftDigits(by uint) (v Nat) {
	v = Nat{radix: n.Radix(), digits: make([]uint16, n.Len()+int(by))}
	copy(v.digits[by:], n.digits)
	return v
}

// Mul returns n * m using the schoolbook method: the sum of (m * n[i]) << i
// for every digit of n. The result has len(n) + len(m) digits.
func (n Nat) Mul(m Nat) (v Nat) {
	radix := n.mustMatch(m)
	v = Nat{radix: radix, digits: make([]uint16, n.Len()+m.Len())}
	for i, d := range n.digits {
		if d == 0 {
			continue
		}
		// (m * d) << i fits in the remaining slots, so nothing carries out.
		if carry := addMulDigits(v.digits[i:], m.digits, uint64(d), uint64(radix)); carry != 0 {
			panic("radixnum: carry out of mul")
		}
	}
	return v
}

func (n Nat) mustMatch(m Nat) uint {
	nr, mr := n.Radix(), m.Radix()
	if nr != mr {
		panic(fmt.Errorf("radixnum: radix mismatch %d != %d", nr, mr))
	}
	return nr
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
