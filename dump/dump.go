// Package dump formats bytes as address-prefixed hex rows with a decoded
// value column.
package dump

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/hexview/hexview/hextext"
	"github.com/hexview/hexview/numeric"
)

// MaxRow is the largest number of elements a row can hold.
const MaxRow = 4096

// Renderer holds the layout settings of a dump.
type Renderer struct {
	kind  numeric.Kind
	order numeric.Order
	row   uint32
}

// New returns a Renderer for u8 values, 16 per row, in host order.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		kind:  numeric.U8,
		order: numeric.HostOrder(),
		row:   16,
	}
	r.Apply(opts...)
	return r
}

// Apply applies options in order, skipping nil ones.
func (r *Renderer) Apply(opts ...Option) {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(r)
	}
}

// RowBytes is the number of raw bytes shown on one row, never more
// than MaxRow values of the widest kind.
func (r *Renderer) RowBytes() int {
	row := int64(r.row)
	if row < 1 {
		row = 1
	}
	if row > MaxRow {
		row = MaxRow
	}
	return int(row * int64(r.kind.Width()))
}

// Render writes data as rows to w. addr is the address of data[0].
//
//	00000000: 41 42 43 | ABC
func (r *Renderer) Render(w io.Writer, addr uint32, data []byte) error {
	bw := bufio.NewWriter(w)
	size := r.RowBytes()
	for start := 0; start < len(data); start += size {
		end := start + size
		if end > len(data) {
			end = len(data)
		}
		r.writeRow(bw, addr+uint32(start), data[start:end], size)
	}
	return bw.Flush()
}

// String is Render into a string.
func (r *Renderer) String(addr uint32, data []byte) string {
	var sb strings.Builder
	_ = r.Render(&sb, addr, data)
	return sb.String()
}

func (r *Renderer) writeRow(w *bufio.Writer, addr uint32, row []byte, size int) {
	fmt.Fprintf(w, "%08X: ", addr)
	for _, b := range row {
		w.WriteString(hextext.Byte(b))
		w.WriteByte(' ')
	}
	for i := len(row); i < size; i++ {
		w.WriteString("   ")
	}
	w.WriteString("| ")
	r.writeValues(w, row)
	w.WriteByte('\n')
}

func (r *Renderer) writeValues(w *bufio.Writer, row []byte) {
	if r.kind.IsChar() {
		for _, b := range row {
			w.WriteByte(numeric.Char(b))
		}
		return
	}
	numeric.Each(row, r.kind, r.order, func(v numeric.Value) bool {
		w.WriteString(v.String())
		w.WriteByte(' ')
		return true
	})
}
