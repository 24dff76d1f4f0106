package radixnum

import (
	"fmt"
	"strconv"
	"strings"
)

// Text renders the significant digits of n, most significant first, using
// the digit table. Radices above MaxTextRadix return ErrRadixUnsupported.
func (n Nat) Text() (string, error) {
	radix := n.Radix()
	if radix > MaxTextRadix {
		return "", fmt.Errorf("radixnum: radix %d > %d: %w", radix, MaxTextRadix, ErrRadixUnsupported)
	}

	sig := n.SigDigits()
	buf := make([]byte, sig)
	for i := 0; i < sig; i++ {
		buf[sig-i-1] = digitTable[n.At(i)]
	}
	return string(buf), nil
}

// String renders n in its own radix. Radices the digit table can't cover are
// written as colon-separated decimal digit values, most significant first,
// e.g. "1:0:65535".
func (n Nat) String() string {
	if s, err := n.Text(); err == nil {
		return s
	}

	sig := n.SigDigits()
	var sb strings.Builder
	for i := sig - 1; i >= 0; i-- {
		sb.WriteString(strconv.FormatUint(uint64(n.At(i)), 10))
		if i > 0 {
			sb.WriteByte(':')
		}
	}
	return sb.String()
}

// Format implements fmt.Formatter. %v and %s render n in its own radix; %d,
// %b, %o, %x and %X convert it first. Width and the '-' flag are supported.
func (n Nat) Format(s fmt.State, c rune) {
	var out string
	switch c {
	case 'v', 's':
		out = n.String()
	case 'd':
		out = n.ConvertRadix(10).String()
	case 'b':
		out = n.ConvertRadix(2).String()
	case 'o':
		out = n.ConvertRadix(8).String()
	case 'x':
		out = strings.ToLower(n.ConvertRadix(16).String())
	case 'X':
		out = n.ConvertRadix(16).String()
	default:
		fmt.Fprintf(s, "%%!%c(radixnum.Nat=%s)", c, n.String())
		return
	}

	if w, ok := s.Width(); ok && w > len(out) {
		pad := strings.Repeat(" ", w-len(out))
		if s.Flag('-') {
			out += pad
		} else {
			out = pad + out
		}
	}
	fmt.Fprint(s, out)
}

// NatFromString parses s as a number in the given radix using the digit
// table, most significant digit first. For radices up to 36, lower case
// letters are accepted as well as upper case.
func NatFromString(s string, radix uint) (out Nat, err error) {
	if err := checkRadix(radix); err != nil {
		return out, err
	}
	if radix > MaxTextRadix {
		return out, fmt.Errorf("radixnum: radix %d > %d: %w", radix, MaxTextRadix, ErrRadixUnsupported)
	}
	if s == "" {
		return out, fmt.Errorf("radixnum: empty string: %w", ErrInvalidDigit)
	}

	ln := len(s)
	out = Nat{radix: radix, digits: make([]uint16, ln)}
	for i := 0; i < ln; i++ {
		c := s[ln-i-1]
		if radix <= 36 && c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		d := digitValues[c]
		if d == invalidDigit || uint(d) >= radix {
			return Nat{}, fmt.Errorf("radixnum: character %q at %d not valid in radix %d: %w",
				s[ln-i-1], ln-i-1, radix, ErrInvalidDigit)
		}
		out.digits[i] = uint16(d)
	}
	return out, nil
}
