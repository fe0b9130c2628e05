package numeric

import (
	"encoding/binary"
	"math"
	"testing"
	"testing/quick"

	"github.com/google/go-cmp/cmp"
)

func TestKindWidths(t *testing.T) {
	want := map[Kind]int{
		U8: 1, I8: 1, U16: 2, I16: 2, U32: 4, I32: 4, U64: 8, I64: 8, F32: 4, F64: 8,
	}
	for k, w := range want {
		if got := k.Width(); got != w {
			t.Errorf("%s.Width() = %d, want %d", k, got, w)
		}
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in     string
		want   Kind
		wantOK bool
	}{
		{"b", I8, true},
		{"B", U8, true},
		{"h", I16, true},
		{"H", U16, true},
		{"i", I32, true},
		{"I", U32, true},
		{"q", I64, true},
		{"Q", U64, true},
		{"f", F32, true},
		{"d", F64, true},
		{"double", F64, true},
		{"UINT16", U16, true},
		{"u32", U32, true},
		{"char", I8, true},
		{"z", 0, false},
		{"word", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseKind(tt.in)
			if ok != tt.wantOK || (ok && got != tt.want) {
				t.Errorf("ParseKind(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestKindCodesRoundTrip(t *testing.T) {
	for _, k := range Kinds() {
		got, ok := ParseKind(string(k.Code()))
		if !ok || got != k {
			t.Errorf("ParseKind(%q) = %v, %v; want %v", k.Code(), got, ok, k)
		}
		got, ok = ParseKind(k.String())
		if !ok || got != k {
			t.Errorf("ParseKind(%q) = %v, %v; want %v", k.String(), got, ok, k)
		}
	}
}

func TestParseOrder(t *testing.T) {
	for in, want := range map[string]Order{"little": Little, "LE": Little, "big": Big, "be": Big, "native": HostOrder()} {
		got, err := ParseOrder(in)
		if err != nil || got != want {
			t.Errorf("ParseOrder(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseOrder("middle"); err == nil {
		t.Error("ParseOrder(\"middle\") error = nil, want error")
	}
}

func TestHostOrderMatchesNativeEndian(t *testing.T) {
	b := make([]byte, 4)
	binary.NativeEndian.PutUint32(b, 1)
	got := Decode(b, U32, HostOrder())
	if len(got) != 1 || got[0].Uint() != 1 {
		t.Errorf("decoding native-endian 1 with HostOrder() = %v", got)
	}
}

func TestDecodeU32(t *testing.T) {
	b := []byte{0x01, 0x00, 0x00, 0x00}

	le := Decode(b, U32, Little)
	if len(le) != 1 || le[0].Uint() != 1 {
		t.Errorf("little-endian decode = %v, want [1]", le)
	}
	be := Decode(b, U32, Big)
	if len(be) != 1 || be[0].Uint() != 16777216 {
		t.Errorf("big-endian decode = %v, want [16777216]", be)
	}
}

func TestDecodeDropsTrailingChunk(t *testing.T) {
	got := Decode([]byte{1, 2, 3, 4, 5}, U32, Little)
	if len(got) != 1 {
		t.Fatalf("len(Decode()) = %d, want 1", len(got))
	}
	if got[0].Uint() != 0x04030201 {
		t.Errorf("Decode()[0] = %#x, want 0x04030201", got[0].Uint())
	}
	if got := Decode([]byte{1, 2, 3}, U64, Big); len(got) != 0 {
		t.Errorf("Decode() of 3 bytes as u64 = %v, want none", got)
	}
}

func TestDecodeMatchesEncodingBinary(t *testing.T) {
	b := []byte{0xF0, 0xDE, 0xBC, 0x9A, 0x78, 0x56, 0x34, 0x12, 0xFF, 0x80}
	orders := map[Order]binary.ByteOrder{Little: binary.LittleEndian, Big: binary.BigEndian}

	for o, bo := range orders {
		t.Run(o.String(), func(t *testing.T) {
			for _, k := range Kinds() {
				vals := Decode(b, k, o)
				w := k.Width()
				if len(vals) != len(b)/w {
					t.Fatalf("%s: got %d values, want %d", k, len(vals), len(b)/w)
				}
				for i, v := range vals {
					chunk := b[i*w : (i+1)*w]
					var want uint64
					switch w {
					case 1:
						want = uint64(chunk[0])
					case 2:
						want = uint64(bo.Uint16(chunk))
					case 4:
						want = uint64(bo.Uint32(chunk))
					case 8:
						want = bo.Uint64(chunk)
					}
					if v.Bits != want {
						t.Errorf("%s[%d] bits = %#x, want %#x", k, i, v.Bits, want)
					}
				}
			}
		})
	}
}

func TestDecodeMatchesEncodingBinaryForAnyInput(t *testing.T) {
	orders := map[Order]binary.ByteOrder{Little: binary.LittleEndian, Big: binary.BigEndian}
	f := func(b []byte, big bool) bool {
		o := Little
		if big {
			o = Big
		}
		bo := orders[o]
		for _, k := range Kinds() {
			w := k.Width()
			vals := Decode(b, k, o)
			if len(vals) != len(b)/w {
				return false
			}
			for i, v := range vals {
				chunk := b[i*w : (i+1)*w]
				var want uint64
				switch w {
				case 1:
					want = uint64(chunk[0])
				case 2:
					want = uint64(bo.Uint16(chunk))
				case 4:
					want = uint64(bo.Uint32(chunk))
				case 8:
					want = bo.Uint64(chunk)
				}
				if v.Bits != want {
					return false
				}
			}
		}
		return true
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestValueString(t *testing.T) {
	tests := []struct {
		name  string
		bytes []byte
		kind  Kind
		want  []string
	}{
		{"i8 negative", []byte{0xFF, 0x80}, I8, []string{"-1", "-128"}},
		{"u16", []byte{0xFF, 0xFF}, U16, []string{"65535"}},
		{"i16", []byte{0xFE, 0xFF}, I16, []string{"-2"}},
		{"i32 min", []byte{0x00, 0x00, 0x00, 0x80}, I32, []string{"-2147483648"}},
		{"i64", []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, I64, []string{"-1"}},
		{"u64 max", []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, U64, []string{"18446744073709551615"}},
		{"f32 one", []byte{0x00, 0x00, 0x80, 0x3F}, F32, []string{"1"}},
		{"f32 pi", le32(math.Float32bits(3.1415927)), F32, []string{"3.14159"}},
		{"f64 million", le64(math.Float64bits(1e6)), F64, []string{"1e+06"}},
		{"f64 half", le64(math.Float64bits(-0.5)), F64, []string{"-0.5"}},
		{"f64 nan", le64(math.Float64bits(math.NaN())), F64, []string{"nan"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, v := range Decode(tt.bytes, tt.kind, Little) {
				got = append(got, v.String())
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("String() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestChar(t *testing.T) {
	tests := []struct {
		in   byte
		want byte
	}{
		{0x41, 'A'},
		{0x42, 'B'},
		{0x20, ' '},
		{0x7E, '~'},
		{0x00, '.'},
		{0x01, '.'},
		{0x7F, '.'},
		{0x80, 0x80},
		{0xFF, 0xFF},
	}
	for _, tt := range tests {
		if got := Char(tt.in); got != tt.want {
			t.Errorf("Char(%#x) = %#x, want %#x", tt.in, got, tt.want)
		}
	}
}

func TestEachStopsEarly(t *testing.T) {
	var seen int
	Each([]byte{1, 2, 3, 4}, U8, Little, func(Value) bool {
		seen++
		return seen < 2
	})
	if seen != 2 {
		t.Errorf("Each visited %d values, want 2", seen)
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		kind    Kind
		in      string
		want    string
		wantErr bool
	}{
		{U8, "50", "50", false},
		{U8, "0xFF", "255", false},
		{U8, "256", "0", true},
		{I8, "-128", "-128", false},
		{I8, "-129", "0", true},
		{I8, "127", "127", false},
		{I16, "-0x10", "-16", false},
		{I64, "-9223372036854775808", "-9223372036854775808", false},
		{U64, "18446744073709551615", "18446744073709551615", false},
		{F32, "1.5", "1.5", false},
		{F64, "-2e3", "-2000", false},
		{U32, "abc", "0", true},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String()+"/"+tt.in, func(t *testing.T) {
			v, err := ParseValue(tt.kind, tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseValue() error = %v, wantErr %v", err, tt.wantErr)
			}
			if v.Kind != tt.kind {
				t.Errorf("ParseValue() kind = %v, want %v", v.Kind, tt.kind)
			}
			if v.String() != tt.want {
				t.Errorf("ParseValue() = %s, want %s", v, tt.want)
			}
		})
	}
}

func TestWithin(t *testing.T) {
	mk := func(k Kind, s string) Value {
		v, err := ParseValue(k, s)
		if err != nil {
			t.Fatal(err)
		}
		return v
	}
	tests := []struct {
		name        string
		v, lo, hi   Value
		wantInRange bool
	}{
		{"u8 inside", mk(U8, "51"), mk(U8, "50"), mk(U8, "52"), true},
		{"u8 low edge", mk(U8, "50"), mk(U8, "50"), mk(U8, "52"), true},
		{"u8 above", mk(U8, "53"), mk(U8, "50"), mk(U8, "52"), false},
		{"i8 negative inside", mk(I8, "-5"), mk(I8, "-10"), mk(I8, "10"), true},
		{"u8 high bit above", mk(U8, "200"), mk(U8, "0"), mk(U8, "100"), false},
		{"f64 inside", mk(F64, "0.5"), mk(F64, "0"), mk(F64, "1"), true},
		{"f64 nan", Value{Kind: F64, Bits: math.Float64bits(math.NaN())}, mk(F64, "-1e300"), mk(F64, "1e300"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Within(tt.lo, tt.hi); got != tt.wantInRange {
				t.Errorf("Within() = %v, want %v", got, tt.wantInRange)
			}
		})
	}
}

func le32(u uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, u)
	return b
}

func le64(u uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, u)
	return b
}
