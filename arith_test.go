package radixnum

import (
	"fmt"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestAddDigits(t *testing.T) {
	for idx, tc := range []struct {
		x, y  []uint16
		radix uint64
		ln    int
		z     []uint16
		carry uint64
	}{
		{[]uint16{9}, []uint16{1}, 10, 2, []uint16{0, 1}, 0},
		{[]uint16{9, 9}, []uint16{1}, 10, 2, []uint16{0, 0}, 1},
		{[]uint16{1, 1, 1}, nil, 2, 3, []uint16{1, 1, 1}, 0},
		{[]uint16{65535}, []uint16{65535}, 65536, 2, []uint16{65534, 1}, 0},
	} {
		t.Run(fmt.Sprintf("%d/%v+%v", idx, tc.x, tc.y), func(t *testing.T) {
			tt := assert.WrapTB(t)
			z := make([]uint16, tc.ln)
			carry := addDigits(z, tc.x, tc.y, tc.radix)
			tt.MustEqual(tc.z, z)
			tt.MustEqual(tc.carry, carry)
		})
	}
}

func TestSubDigits(t *testing.T) {
	for idx, tc := range []struct {
		x, y   []uint16
		radix  uint64
		z      []uint16
		borrow uint64
	}{
		{[]uint16{0, 1}, []uint16{1}, 10, []uint16{9, 0}, 0},
		{[]uint16{0, 0, 1}, []uint16{1}, 10, []uint16{9, 9, 0}, 0},
		{[]uint16{5, 5}, []uint16{5, 5}, 10, []uint16{0, 0}, 0},

		// Equal digits with a pending borrow must keep borrowing:
		{[]uint16{0, 3, 4}, []uint16{1, 3}, 10, []uint16{9, 9, 3}, 0},
		{[]uint16{0}, []uint16{1}, 10, []uint16{9}, 1},
		{[]uint16{0, 1}, []uint16{65535}, 65536, []uint16{1, 0}, 0},
	} {
		t.Run(fmt.Sprintf("%d/%v-%v", idx, tc.x, tc.y), func(t *testing.T) {
			tt := assert.WrapTB(t)
			z := make([]uint16, len(tc.z))
			borrow := subDigits(z, tc.x, tc.y, tc.radix)
			tt.MustEqual(tc.z, z)
			tt.MustEqual(tc.borrow, borrow)
		})
	}
}

func TestMulDigits(t *testing.T) {
	for idx, tc := range []struct {
		x     []uint16
		c     uint64
		radix uint64
		z     []uint16
		carry uint64
	}{
		{[]uint16{5, 2}, 4, 10, []uint16{0, 0, 1}, 0},
		{[]uint16{9}, 9, 10, []uint16{1}, 8},
		{[]uint16{1}, 255, 2, []uint16{1, 1}, 63},
		{[]uint16{65535}, 65535, 65536, []uint16{1, 65534}, 0},
	} {
		t.Run(fmt.Sprintf("%d/%v*%d", idx, tc.x, tc.c), func(t *testing.T) {
			tt := assert.WrapTB(t)
			z := make([]uint16, len(tc.z))
			carry := mulDigits(z, tc.x, tc.c, tc.radix)
			tt.MustEqual(tc.z, z)
			tt.MustEqual(tc.carry, carry)
		})
	}
}

func TestAddMulDigits(t *testing.T) {
	tt := assert.WrapTB(t)

	// 99 + 99*9 = 990
	z := []uint16{9, 9, 0, 0}
	carry := addMulDigits(z, []uint16{9, 9}, 9, 10)
	tt.MustEqual([]uint16{0, 9, 9, 0}, z)
	tt.MustEqual(uint64(0), carry)

	// Carry runs out of the end of z:
	z = []uint16{9, 9}
	carry = addMulDigits(z, []uint16{1}, 1, 10)
	tt.MustEqual([]uint16{0, 0}, z)
	tt.MustEqual(uint64(1), carry)
}
