package dump

import "github.com/hexview/hexview/numeric"

// Option defines a Renderer modifier option.
type Option func(r *Renderer)

// Kind sets the numeric type the value column is decoded as.
// It also sets how many raw bytes make up one row element.
func Kind(k numeric.Kind) Option {
	return func(r *Renderer) {
		r.kind = k
	}
}

// Order sets the byte order multi-byte values are decoded with.
func Order(o numeric.Order) Option {
	return func(r *Renderer) {
		r.order = o
	}
}

// Row sets the number of decoded elements per row, within [1, MaxRow].
func Row(n uint32) Option {
	return func(r *Renderer) {
		switch {
		case n == 0:
			n = 1
		case n > MaxRow:
			n = MaxRow
		}
		r.row = n
	}
}
