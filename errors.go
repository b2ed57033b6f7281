package vmem

import (
	"errors"

	"github.com/pedro-bento/vmem/internal/mmap"
)

var (
	// ErrClosed is returned when reading through a released mapping.
	ErrClosed = errors.New("vmem: mapping is closed")
	// ErrInvalidOffset is returned when the offset is invalid (e.g. negative).
	ErrInvalidOffset = errors.New("vmem: invalid offset")
	// ErrInvalidSize is returned when a file reports an invalid size.
	ErrInvalidSize = errors.New("invalid file size")
	// ErrTooLarge is returned when a request exceeds the platform address space.
	ErrTooLarge = errors.New("size exceeds the address space")
	// ErrHugePagesUnsupported is returned by builds made with the hugepages
	// tag on platforms that have no huge page facility.
	ErrHugePagesUnsupported = mmap.ErrHugePagesUnsupported
)

// Error records a failed operation and the platform error that caused it.
//
// The underlying error can be accessed via errors.Unwrap.
type Error struct {
	Op  string // "alloc", "free", "map" or "unmap"
	Err error
}

func (e *Error) Error() string {
	return "vmem: " + e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// fail wraps err for op, renders it to the trace sink once, and returns it.
func fail(trace TraceFunc, op string, err error) error {
	e := &Error{Op: op, Err: err}
	if trace != nil {
		trace(e.Error())
	}
	return e
}
