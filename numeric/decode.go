package numeric

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Value is one decoded element: the raw bits of a kind.
type Value struct {
	Kind Kind
	Bits uint64
}

// Uint returns the value as an unsigned integer.
func (v Value) Uint() uint64 { return v.Bits }

// Int returns the value sign-extended from its width.
func (v Value) Int() int64 {
	shift := uint(64 - 8*v.Kind.Width())
	return int64(v.Bits<<shift) >> shift
}

// Float returns the value as a float64. Integer kinds convert by value.
func (v Value) Float() float64 {
	switch {
	case v.Kind == F32:
		return float64(math.Float32frombits(uint32(v.Bits)))
	case v.Kind == F64:
		return math.Float64frombits(v.Bits)
	case v.Kind.Signed():
		return float64(v.Int())
	default:
		return float64(v.Bits)
	}
}

// String renders the value as decimal text.
func (v Value) String() string {
	switch {
	case v.Kind == F32:
		return formatFloat(v.Float(), 32)
	case v.Kind == F64:
		return formatFloat(v.Float(), 64)
	case v.Kind.Signed():
		return strconv.FormatInt(v.Int(), 10)
	default:
		return strconv.FormatUint(v.Bits, 10)
	}
}

// formatFloat prints six significant digits without trailing zeros.
func formatFloat(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f, 'g', 6, bits)
}

// Char is the character form of a single byte: printable ASCII as is,
// bytes with the high bit set passed through raw, anything else '.'.
func Char(b byte) byte {
	switch {
	case b >= 32 && b < 127:
		return b
	case b >= 0x80:
		return b
	default:
		return '.'
	}
}

// Compare orders two values of the same kind in that kind's domain.
// ok is false when either side is NaN.
func Compare(a, b Value) (c int, ok bool) {
	switch {
	case a.Kind.Float():
		x, y := a.Float(), b.Float()
		if math.IsNaN(x) || math.IsNaN(y) {
			return 0, false
		}
		return cmp3(x < y, x > y), true
	case a.Kind.Signed():
		x, y := a.Int(), b.Int()
		return cmp3(x < y, x > y), true
	default:
		return cmp3(a.Bits < b.Bits, a.Bits > b.Bits), true
	}
}

func cmp3(less, greater bool) int {
	switch {
	case less:
		return -1
	case greater:
		return 1
	}
	return 0
}

// Within reports whether lo <= v <= hi.
func (v Value) Within(lo, hi Value) bool {
	c, ok := Compare(lo, v)
	if !ok || c > 0 {
		return false
	}
	c, ok = Compare(v, hi)
	return ok && c <= 0
}

// Assemble folds the first Width bytes of b into a value. b must hold at
// least Width bytes.
func Assemble(b []byte, kind Kind, order Order) Value {
	w := kind.Width()
	var acc uint64
	if order == Big {
		for i := 0; i < w; i++ {
			acc = acc<<8 | uint64(b[i])
		}
	} else {
		for i := w - 1; i >= 0; i-- {
			acc = acc<<8 | uint64(b[i])
		}
	}
	return Value{Kind: kind, Bits: acc}
}

// Each decodes consecutive Width-sized chunks of b and calls fn for each
// until fn returns false. A trailing chunk shorter than Width is dropped.
func Each(b []byte, kind Kind, order Order, fn func(Value) bool) {
	w := kind.Width()
	for i := 0; i+w <= len(b); i += w {
		if !fn(Assemble(b[i:], kind, order)) {
			return
		}
	}
}

// Decode collects every complete value in b.
func Decode(b []byte, kind Kind, order Order) []Value {
	out := make([]Value, 0, len(b)/kind.Width())
	Each(b, kind, order, func(v Value) bool {
		out = append(out, v)
		return true
	})
	return out
}

// ParseValue reads s in the domain of kind. Integers accept decimal or
// 0x-prefixed hex. On failure the zero value of kind is returned along
// with the error.
func ParseValue(kind Kind, s string) (Value, error) {
	bits := 8 * kind.Width()
	switch {
	case kind == F32:
		f, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return Value{Kind: kind}, errors.Wrapf(err, "parse %s bound", kind)
		}
		return Value{Kind: kind, Bits: uint64(math.Float32bits(float32(f)))}, nil
	case kind == F64:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Value{Kind: kind}, errors.Wrapf(err, "parse %s bound", kind)
		}
		return Value{Kind: kind, Bits: math.Float64bits(f)}, nil
	case kind.Signed():
		neg := strings.HasPrefix(s, "-")
		body := strings.TrimPrefix(s, "-")
		base, digits := splitRadix(body)
		u, err := strconv.ParseUint(digits, base, 64)
		if err == nil {
			if neg {
				if u > 1<<(bits-1) {
					err = strconv.ErrRange
				}
			} else if u > 1<<(bits-1)-1 {
				err = strconv.ErrRange
			}
		}
		if err != nil {
			return Value{Kind: kind}, errors.Wrapf(err, "parse %s bound %q", kind, s)
		}
		n := int64(u)
		if neg {
			n = -n
		}
		return Value{Kind: kind, Bits: uint64(n) & mask(bits)}, nil
	default:
		base, digits := splitRadix(s)
		u, err := strconv.ParseUint(digits, base, bits)
		if err != nil {
			return Value{Kind: kind}, errors.Wrapf(err, "parse %s bound %q", kind, s)
		}
		return Value{Kind: kind, Bits: u}, nil
	}
}

func splitRadix(s string) (int, string) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return 16, s[2:]
	}
	return 10, s
}

func mask(bits int) uint64 {
	if bits >= 64 {
		return math.MaxUint64
	}
	return 1<<uint(bits) - 1
}
