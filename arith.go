package radixnum

// The kernels below operate on digit slices, least significant first. x and
// y may be shorter than z; missing digits read as 0. z must not alias x or y.

func digitAt(x []uint16, i int) uint64 {
	if i >= len(x) {
		return 0
	}
	return uint64(x[i])
}

// addDigits sets z = x + y over len(z) digits and returns the carry out.
func addDigits(z, x, y []uint16, radix uint64) (carry uint64) {
	for i := range z {
		s := digitAt(x, i) + digitAt(y, i) + carry
		carry = 0
		if s >= radix {
			s -= radix
			carry = 1
		}
		z[i] = uint16(s)
	}
	return carry
}

// subDigits sets z = x - y over len(z) digits and returns the borrow out.
func subDigits(z, x, y []uint16, radix uint64) (borrow uint64) {
	for i := range z {
		a, b := digitAt(x, i), digitAt(y, i)+borrow
		if a < b {
			z[i] = uint16(a + radix - b)
			borrow = 1
		} else {
			z[i] = uint16(a - b)
			borrow = 0
		}
	}
	return borrow
}

// mulDigits sets z = x * c over len(z) digits and returns the carry out.
// c need not be less than radix, in which case the carry may exceed a digit.
func mulDigits(z, x []uint16, c, radix uint64) (carry uint64) {
	for i := range z {
		p := digitAt(x, i)*c + carry
		z[i] = uint16(p % radix)
		carry = p / radix
	}
	return carry
}

// addMulDigits sets z = z + x * d, propagating the carry through z, and
// returns the carry out of z. d must be less than radix.
func addMulDigits(z, x []uint16, d, radix uint64) (carry uint64) {
	for i := range z {
		if i >= len(x) && carry == 0 {
			break
		}
		p := uint64(z[i]) + digitAt(x, i)*d + carry
		z[i] = uint16(p % radix)
		carry = p / radix
	}
	return carry
}
