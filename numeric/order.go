package numeric

import (
	"encoding/binary"
	"strings"

	"github.com/pkg/errors"
)

// Order is the byte order multi-byte values are assembled in.
type Order uint8

const (
	Little Order = iota
	Big
)

func (o Order) String() string {
	if o == Big {
		return "big"
	}
	return "little"
}

// MarshalYAML renders the order by name.
func (o Order) MarshalYAML() (interface{}, error) {
	return o.String(), nil
}

// ParseOrder accepts "little"/"le" and "big"/"be". "native" resolves
// to the host order.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(s) {
	case "little", "le", "l":
		return Little, nil
	case "big", "be", "b":
		return Big, nil
	case "native", "host", "":
		return HostOrder(), nil
	}
	return Little, errors.Errorf("unknown byte order %q", s)
}

// HostOrder reports the byte order of the running machine.
func HostOrder() Order {
	var b [2]byte
	binary.NativeEndian.PutUint16(b[:], 1)
	if b[0] == 1 {
		return Little
	}
	return Big
}
