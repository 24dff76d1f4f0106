package radixnum

// Difference subtracts the smaller of a and b from the larger.
func Difference(a, b Nat) Nat {
	if a.LessThan(b) {
		a, b = b, a
	}
	v, err := a.Sub(b)
	if err != nil {
		panic(err) // a >= b
	}
	return v
}

func Larger(a, b Nat) Nat {
	if b.GreaterThan(a) {
		return b
	}
	return a
}

func Smaller(a, b Nat) Nat {
	if b.LessThan(a) {
		return b
	}
	return a
}
