// Package search locates byte patterns and runs of in-range values.
package search

import "github.com/pkg/errors"

var (
	// ErrEmptyPattern is returned when there is nothing to look for.
	ErrEmptyPattern = errors.New("nothing to find")
	// ErrNotFound is returned when no position satisfies the search.
	ErrNotFound = errors.New("no occurrence found")
)

// Pattern finds the first occurrence of pat starting after offset. When
// the end of buf is reached the search wraps and covers starts in
// [0, offset].
func Pattern(buf []byte, offset uint32, pat []byte) (uint32, error) {
	if len(pat) == 0 {
		return 0, ErrEmptyPattern
	}
	if pos, ok := scan(buf, pat, int64(offset)+1, int64(len(buf))); ok {
		return uint32(pos), nil
	}
	if pos, ok := scan(buf, pat, 0, int64(offset)); ok {
		return uint32(pos), nil
	}
	return 0, ErrNotFound
}

// scan looks for a match of pat starting in [from, last]. It tracks how
// many leading bytes of pat match at the scan position; on a mismatch it
// resumes one byte after the failed start.
func scan(buf, pat []byte, from, last int64) (int64, bool) {
	n := int64(len(pat))
	if limit := int64(len(buf)) - n; last > limit {
		last = limit
	}
	var matched int64
	for pos := from; ; pos++ {
		start := pos - matched
		if start > last {
			return 0, false
		}
		if buf[pos] != pat[matched] {
			pos = start
			matched = 0
			continue
		}
		matched++
		if matched == n {
			return pos - n + 1, true
		}
	}
}
