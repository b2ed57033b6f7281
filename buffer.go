package vmem

import "sync/atomic"

// Buffer is an anonymous read-write memory region obtained from Alloc.
// It owns the underlying byte slice and is responsible for releasing it.
type Buffer struct {
	data   []byte
	size   uint64
	closed atomic.Bool
	// free is the platform-specific function to release the memory.
	free  func([]byte) error
	trace TraceFunc
}

// Bytes returns the underlying byte slice.
// Warning: The slice is valid only until Free() is called.
// Accessing the slice after Free() results in undefined behavior (likely a crash).
func (b *Buffer) Bytes() []byte {
	if b.closed.Load() {
		return nil
	}
	return b.data
}

// Size returns the allocated size in bytes. It remains valid after Free.
func (b *Buffer) Size() uint64 {
	return b.size
}

// Free returns the whole region to the operating system in one call.
// It is idempotent. The Buffer is spent afterwards regardless of the
// returned error.
func (b *Buffer) Free() error {
	if b.closed.Swap(true) {
		return nil // Already freed
	}
	if b.free == nil || b.data == nil {
		return nil
	}
	if err := b.free(b.data); err != nil {
		return fail(b.trace, "free", err)
	}
	return nil
}
