// Package numeric reinterprets runs of raw bytes as fixed-width numbers.
package numeric

import "strings"

// Kind is one of the numeric types bytes can be decoded as.
type Kind uint8

const (
	U8 Kind = iota
	I8
	U16
	I16
	U32
	I32
	U64
	I64
	F32
	F64
)

type kindInfo struct {
	name   string
	code   byte
	width  int
	signed bool
	float  bool
	alias  []string
}

// kinds is indexed by Kind.
var kinds = [...]kindInfo{
	U8:  {name: "u8", code: 'B', width: 1, alias: []string{"uint8", "byte", "uchar"}},
	I8:  {name: "i8", code: 'b', width: 1, signed: true, alias: []string{"int8", "char", "schar"}},
	U16: {name: "u16", code: 'H', width: 2, alias: []string{"uint16", "ushort"}},
	I16: {name: "i16", code: 'h', width: 2, signed: true, alias: []string{"int16", "short"}},
	U32: {name: "u32", code: 'I', width: 4, alias: []string{"uint32", "uint"}},
	I32: {name: "i32", code: 'i', width: 4, signed: true, alias: []string{"int32", "int"}},
	U64: {name: "u64", code: 'Q', width: 8, alias: []string{"uint64", "ulong"}},
	I64: {name: "i64", code: 'q', width: 8, signed: true, alias: []string{"int64", "long"}},
	F32: {name: "f32", code: 'f', width: 4, signed: true, float: true, alias: []string{"float", "float32"}},
	F64: {name: "f64", code: 'd', width: 8, signed: true, float: true, alias: []string{"double", "float64"}},
}

// Kinds lists every kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	for i := range kinds {
		out[i] = Kind(i)
	}
	return out
}

func (k Kind) info() kindInfo {
	if int(k) >= len(kinds) {
		return kinds[U8]
	}
	return kinds[k]
}

// Width is the number of bytes one value occupies.
func (k Kind) Width() int { return k.info().width }

// Signed reports whether the kind carries a sign.
func (k Kind) Signed() bool { return k.info().signed }

// Float reports whether the kind is an IEEE-754 type.
func (k Kind) Float() bool { return k.info().float }

// Code is the single letter selecting the kind on the command line.
func (k Kind) Code() byte { return k.info().code }

// IsChar reports whether values of this kind are shown as characters.
func (k Kind) IsChar() bool { return k.Width() == 1 }

func (k Kind) String() string { return k.info().name }

// MarshalYAML renders the kind by name.
func (k Kind) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}

// ParseKind resolves a single letter code (case sensitive) or a type
// name (case insensitive).
func ParseKind(s string) (Kind, bool) {
	if len(s) == 1 {
		for i, ki := range kinds {
			if ki.code == s[0] {
				return Kind(i), true
			}
		}
		return 0, false
	}
	s = strings.ToLower(s)
	for i, ki := range kinds {
		if ki.name == s {
			return Kind(i), true
		}
		for _, a := range ki.alias {
			if a == s {
				return Kind(i), true
			}
		}
	}
	return 0, false
}
