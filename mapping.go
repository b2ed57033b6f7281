package vmem

import (
	"io"
	"sync/atomic"
)

// Mapping is a read-only view of a file's contents obtained from MapFile.
// It owns the underlying byte slice and is responsible for unmapping it.
//
// A mapping of an empty file holds no bytes and no operating system
// resources.
type Mapping struct {
	data   []byte
	size   uint64
	closed atomic.Bool
	// unmap is the platform-specific function to unmap the memory.
	unmap func([]byte) error
	trace TraceFunc
}

// Bytes returns the underlying byte slice. It is nil for a mapping of an
// empty file.
// Warning: The slice is valid only until Unmap() is called.
// Accessing the slice after Unmap() results in undefined behavior (likely a crash).
func (m *Mapping) Bytes() []byte {
	if m.closed.Load() {
		return nil
	}
	return m.data
}

// Size returns the size of the mapping in bytes: the file's length at the
// time it was mapped. It remains valid after Unmap.
func (m *Mapping) Size() uint64 {
	return m.size
}

// Unmap releases the view. It is idempotent, and a no-op success for a
// mapping of an empty file. The Mapping is spent afterwards regardless of
// the returned error.
func (m *Mapping) Unmap() error {
	if m.closed.Swap(true) {
		return nil // Already unmapped
	}
	if m.unmap == nil || m.data == nil {
		return nil
	}
	if err := m.unmap(m.data); err != nil {
		return fail(m.trace, "unmap", err)
	}
	return nil
}

// ReadAt implements io.ReaderAt.
func (m *Mapping) ReadAt(p []byte, off int64) (n int, err error) {
	if m.closed.Load() {
		return 0, ErrClosed
	}
	if off < 0 {
		return 0, ErrInvalidOffset
	}
	if off >= int64(len(m.data)) {
		return 0, io.EOF
	}
	n = copy(p, m.data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}
