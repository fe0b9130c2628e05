// Package state holds the mutable view of an inspection session.
package state

import (
	"fmt"

	"github.com/hexview/hexview/dump"
	"github.com/hexview/hexview/numeric"
	"gopkg.in/yaml.v2"
)

// DefaultRow is the number of elements per dump row.
const DefaultRow = 16

// View is the cursor and formatting a session dumps with.
type View struct {
	Offset uint32
	Length *uint32
	Kind   numeric.Kind
	Order  numeric.Order
	Row    uint32
}

// New returns the starting view for a given default byte order.
func New(order numeric.Order) View {
	return View{
		Kind:  numeric.U8,
		Order: order,
		Row:   DefaultRow,
	}
}

// DumpLength is the number of bytes a dump covers, -1 meaning to end.
func (v View) DumpLength() int64 {
	if v.Length == nil {
		return -1
	}
	return int64(*v.Length)
}

// SetLength sets the dump length. A nil n means "to end".
func (v *View) SetLength(n *uint32) {
	if n == nil {
		v.Length = nil
		return
	}
	l := *n
	v.Length = &l
}

// SetRow sets the elements per row. Zero becomes one and anything above
// dump.MaxRow is capped; capped reports the latter.
func (v *View) SetRow(n uint32) (capped bool) {
	switch {
	case n == 0:
		n = 1
	case n > dump.MaxRow:
		n, capped = dump.MaxRow, true
	}
	v.Row = n
	return capped
}

// Advance moves the offset by delta, flooring at zero and saturating at
// the top of the address space.
func (v *View) Advance(delta int64) {
	next := int64(v.Offset) + delta
	switch {
	case next < 0:
		next = 0
	case next > int64(^uint32(0)):
		next = int64(^uint32(0))
	}
	v.Offset = uint32(next)
}

// LengthString renders the length field, "end" when unset.
func (v View) LengthString() string {
	if v.Length == nil {
		return "end"
	}
	return fmt.Sprintf("%d", *v.Length)
}

// Report renders every field of the view as YAML.
func (v View) Report() string {
	out, err := yaml.Marshal(report{
		Offset: fmt.Sprintf("0x%08X", v.Offset),
		Length: v.LengthString(),
		Kind:   v.Kind,
		Order:  v.Order,
		Row:    v.Row,
	})
	if err != nil {
		return fmt.Sprintf("[!] Couldn't render state. Error: %v\n", err)
	}
	return string(out)
}

type report struct {
	Offset string        `yaml:"offset"`
	Length string        `yaml:"length"`
	Kind   numeric.Kind  `yaml:"type"`
	Order  numeric.Order `yaml:"order"`
	Row    uint32        `yaml:"row"`
}
