package search

import "github.com/hexview/hexview/numeric"

// Range is a closed interval of values of one kind, with the minimum
// number of consecutive in-range values a Clamp match needs.
type Range struct {
	Min numeric.Value
	Max numeric.Value
	Run int
}

// Clamp finds the smallest start after offset from which at least
// r.Run consecutive values of kind decode within [r.Min, r.Max]. Every
// candidate start is decoded afresh; there is no wraparound.
func Clamp(buf []byte, offset uint32, kind numeric.Kind, order numeric.Order, r Range) (uint32, error) {
	run := r.Run
	if run < 1 {
		run = 1
	}
	w := kind.Width()
	for start := int64(offset) + 1; start+int64(w) <= int64(len(buf)); start++ {
		if runAt(buf[start:], kind, order, r, run) {
			return uint32(start), nil
		}
	}
	return 0, ErrNotFound
}

// runAt reports whether b begins with run in-range values.
func runAt(b []byte, kind numeric.Kind, order numeric.Order, r Range, run int) bool {
	var n int
	numeric.Each(b, kind, order, func(v numeric.Value) bool {
		if !v.Within(r.Min, r.Max) {
			return false
		}
		n++
		return n < run
	})
	return n >= run
}
