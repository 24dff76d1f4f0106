/*
Package radixnum provides Nat, an arbitrary-precision unsigned integer stored
as a sequence of digits in a fixed radix between 2 and 65536.

Nat is a value type; all operations return new values. The only exception is
AddAssign, which replaces (but never writes through) the receiver's digits.

Simple example:

	a := NatFrom64(math.MaxUint64, 10)
	b := NatFrom64(math.MaxUint64, 10)
	fmt.Println(a.Mul(b))
	// Output: 340282366920938463426481119284349108225

Nat can be created from a variety of sources:

	NatFrom64(v uint64, radix uint) Nat
	NatFromDigits(digits []uint16, radix uint) (Nat, error)
	NatFromString(s string, radix uint) (Nat, error)
	NatFromBigInt(v *big.Int, radix uint) (out Nat, accurate bool)

Digits are stored least significant first. A Nat's length is a capacity, not
a count of significant digits; the high-order digits may be zero, and At
returns 0 for any position past the end.

Rendering uses the digit table:

	0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuwvxyz+/

The order of that table is fixed, so Text only supports radices up to 64.

Nat supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler
	- msgpack.CustomEncoder
	- msgpack.CustomDecoder

*/
package radixnum
