package radixnum

import (
	"math"
	"math/big"
)

// ConvertRadix returns n re-expressed in radix, by Horner evaluation in the
// target radix. It panics if radix is outside [MinRadix, MaxRadix].
//
// The result has at least ceil(len(n) * log(from) / log(radix)) digits, more
// if the value needs them.
func (n Nat) ConvertRadix(radix uint) Nat {
	mustRadix(radix)

	from := n.Radix()
	if from == radix {
		return n.Clone()
	}

	sum := NatFrom64(0, radix)
	p := NatFrom64(1, radix)
	cbase := NatFrom64(uint64(from), radix)

	sig := n.SigDigits()
	for i := 0; i < sig; i++ {
		if d := n.At(i); d != 0 {
			// d may not be a valid digit in radix; MulDigit copes with that.
			sum.AddAssign(p.MulDigit(d))
		}
		if i < sig-1 {
			p = p.Mul(cbase).Trim()
		}
	}

	ln := convertedLen(n.Len(), from, radix)
	if sl := sum.SigDigits(); sl > ln {
		ln = sl
	}
	return sum.resize(ln)
}

func convertedLen(ln int, from, to uint) int {
	est := int(math.Ceil(float64(ln) * math.Log(float64(from)) / math.Log(float64(to))))
	if est < 1 {
		est = 1
	}
	return est
}

// NatFromBigInt creates a Nat in the given radix from a big.Int. Negative
// values can't be represented; zero is returned and accurate is false.
// It panics if radix is outside [MinRadix, MaxRadix].
func NatFromBigInt(v *big.Int, radix uint) (out Nat, accurate bool) {
	mustRadix(radix)
	if v.Sign() < 0 {
		return NatFrom64(0, radix), false
	}
	if v.IsUint64() {
		return NatFrom64(v.Uint64(), radix), true
	}

	var r, mod big.Int
	r.SetUint64(uint64(radix))
	x := new(big.Int).Set(v)

	digits := make([]uint16, 0, convertedLen(v.BitLen(), 2, radix))
	for x.Cmp(big0) > 0 {
		x.DivMod(x, &r, &mod)
		digits = append(digits, uint16(mod.Uint64()))
	}
	return Nat{radix: radix, digits: digits}, true
}

// IntoBigInt sets b to the value of n.
func (n Nat) IntoBigInt(b *big.Int) {
	var r, d big.Int
	r.SetUint64(uint64(n.Radix()))
	b.SetUint64(0)
	for i := n.SigDigits() - 1; i >= 0; i-- {
		b.Mul(b, &r)
		d.SetUint64(uint64(n.At(i)))
		b.Add(b, &d)
	}
}

func (n Nat) AsBigInt() (b *big.Int) {
	var v big.Int
	n.IntoBigInt(&v)
	return &v
}
