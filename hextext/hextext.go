// Package hextext converts hex literal text into bytes and back.
package hextext

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// InvalidCharError reports a character that is neither a hex digit, a
// separator nor part of a radix prefix.
type InvalidCharError struct {
	Char rune
	Pos  int
}

func (e *InvalidCharError) Error() string {
	return fmt.Sprintf("invalid character %q at position %d", e.Char, e.Pos)
}

// Parse turns hex text such as "01 01 AA FF" or "0xFF" into bytes.
//
// Parsing never stops early: every invalid character is collected into
// the returned error and the bytes completed so far are kept.
func Parse(s string) ([]byte, error) {
	var (
		out     []byte
		errs    *multierror.Error
		pending = -1 // high nibble waiting for its pair
		prev    rune
	)
	for pos, c := range s {
		switch {
		case isHexDigit(c):
			if pending < 0 {
				pending = nibble(c)
			} else {
				out = append(out, byte(pending<<4|nibble(c)))
				pending = -1
			}
		case (c == 'x' || c == 'X') && (prev == '0' || prev == '#'):
			pending = -1
		case isSeparator(c):
			pending = -1
		default:
			errs = multierror.Append(errs, &InvalidCharError{Char: c, Pos: pos})
			pending = -1
		}
		prev = c
	}
	return out, errs.ErrorOrNil()
}

// Encode renders bytes as space separated uppercase pairs.
func Encode(b []byte) string {
	var sb strings.Builder
	for i, v := range b {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(Byte(v))
	}
	return sb.String()
}

const digits = "0123456789ABCDEF"

// Byte renders a single byte as two uppercase hex digits.
func Byte(b byte) string {
	return string([]byte{digits[b>>4], digits[b&0x0f]})
}

func isHexDigit(c rune) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isSeparator(c rune) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '#'
}

func nibble(c rune) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	default:
		return int(c-'A') + 10
	}
}
