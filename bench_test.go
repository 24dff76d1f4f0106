package radixnum

import (
	"math/big"
	"testing"
)

var (
	BenchBigIntResult *big.Int
	BenchNatResult    Nat
	BenchStringResult string
	BenchUint64Result uint64

	BenchNat1 = d10("340282366920938463463374607431768211455")
	BenchNat2 = d10("18446744073709551615")
)

func BenchmarkNatAdd(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchNatResult = BenchNat1.Add(BenchNat2)
	}
}

func BenchmarkNatSub(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchNatResult, _ = BenchNat1.Sub(BenchNat2)
	}
}

func BenchmarkNatMul(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchNatResult = BenchNat1.Mul(BenchNat2)
	}
}

func BenchmarkNatMulDigit(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchNatResult = BenchNat1.MulDigit(7)
	}
}

func BenchmarkNatConvertRadix(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchNatResult = BenchNat1.ConvertRadix(16)
	}
}

func BenchmarkNatString(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchStringResult = BenchNat1.String()
	}
}

func BenchmarkNatAsUint64(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchUint64Result = BenchNat2.AsUint64()
	}
}

func BenchmarkBigIntAdd(b *testing.B) {
	b1, b2 := BenchNat1.AsBigInt(), BenchNat2.AsBigInt()
	for i := 0; i < b.N; i++ {
		BenchBigIntResult = new(big.Int).Add(b1, b2)
	}
}

func BenchmarkBigIntMul(b *testing.B) {
	b1, b2 := BenchNat1.AsBigInt(), BenchNat2.AsBigInt()
	for i := 0; i < b.N; i++ {
		BenchBigIntResult = new(big.Int).Mul(b1, b2)
	}
}

func BenchmarkFibonacci1000(b *testing.B) {
	for i := 0; i < b.N; i++ {
		x, y := NatFrom64(0, 10), NatFrom64(1, 10)
		for j := 0; j < 1000; j++ {
			c := y
			y.AddAssign(x)
			x = c
		}
		BenchNatResult = x
	}
}
