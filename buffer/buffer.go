// Package buffer holds the immutable bytes a session inspects.
package buffer

// ByteBuffer is an immutable view of bytes. The zero value is empty.
type ByteBuffer struct {
	bs []byte
}

// New copies b into a ByteBuffer.
func New(b []byte) ByteBuffer {
	return ByteBuffer{bs: cloneBytes(b)}
}

// Len returns the number of bytes held.
func (bb ByteBuffer) Len() int {
	return len(bb.bs)
}

// ByteSlice returns a copy of all bytes.
func (bb ByteBuffer) ByteSlice() []byte {
	return cloneBytes(bb.bs)
}

// Window returns a copy of up to n bytes starting at off. A negative n
// means "to the end". Out of range requests are truncated, never fail.
func (bb ByteBuffer) Window(off uint32, n int64) []byte {
	start := int64(off)
	end := int64(len(bb.bs))
	if start > end {
		start = end
	}
	if n >= 0 && start+n < end {
		end = start + n
	}
	return cloneBytes(bb.bs[start:end])
}

func cloneBytes(bs []byte) []byte {
	copied := make([]byte, len(bs))
	copy(copied, bs)
	return copied
}
