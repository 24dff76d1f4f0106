package radixnum

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

var (
	_ msgpack.CustomEncoder = Nat{}
	_ msgpack.CustomDecoder = (*Nat)(nil)
)

func (n Nat) MarshalText() ([]byte, error) {
	s, err := n.Text()
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// UnmarshalText parses bts in n's radix, or DefaultRadix if n is the zero
// value.
func (n *Nat) UnmarshalText(bts []byte) (err error) {
	v, err := NatFromString(string(bts), n.Radix())
	if err != nil {
		return err
	}
	*n = v
	return nil
}

func (n Nat) MarshalJSON() ([]byte, error) {
	s, err := n.Text()
	if err != nil {
		return nil, err
	}
	return []byte(`"` + s + `"`), nil
}

// UnmarshalJSON accepts a quoted string or a bare JSON number, parsed as for
// UnmarshalText. null leaves n unchanged.
func (n *Nat) UnmarshalJSON(bts []byte) (err error) {
	if string(bts) == "null" {
		return nil
	}
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return fmt.Errorf("radixnum: nat invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}
	return n.UnmarshalText(bts)
}

// EncodeMsgpack writes n as an array of its radix followed by its
// significant digits, least significant first.
func (n Nat) EncodeMsgpack(enc *msgpack.Encoder) error {
	sig := n.SigDigits()
	if err := enc.EncodeArrayLen(sig + 1); err != nil {
		return err
	}
	if err := enc.EncodeUint(uint64(n.Radix())); err != nil {
		return err
	}
	for i := 0; i < sig; i++ {
		if err := enc.EncodeUint16(n.At(i)); err != nil {
			return err
		}
	}
	return nil
}

func (n *Nat) DecodeMsgpack(dec *msgpack.Decoder) error {
	ln, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if ln < 1 {
		return fmt.Errorf("radixnum: msgpack nat has no radix")
	}

	radix, err := dec.DecodeUint64()
	if err != nil {
		return err
	}
	if radix > MaxRadix {
		return fmt.Errorf("radixnum: msgpack radix %d: %w", radix, ErrInvalidRadix)
	}

	digits := make([]uint16, ln-1)
	for i := range digits {
		if digits[i], err = dec.DecodeUint16(); err != nil {
			return err
		}
	}

	v, err := NatFromDigits(digits, uint(radix))
	if err != nil {
		return err
	}
	*n = v
	return nil
}
