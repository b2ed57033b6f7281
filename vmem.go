package vmem

import (
	"os"

	"github.com/pedro-bento/vmem/internal/conv"
	"github.com/pedro-bento/vmem/internal/mmap"
)

// TraceFunc receives one rendered, human-readable message per failed
// operation. Implementations must be safe for concurrent use.
type TraceFunc func(msg string)

// VMem allocates anonymous memory and maps files read-only through the
// platform's virtual memory facilities.
//
// A VMem is immutable after construction and safe for concurrent use.
// Every call is independent; the handles it returns share no state.
type VMem struct {
	trace TraceFunc
}

// New creates a VMem configured by optFns.
func New(optFns ...Option) *VMem {
	o := applyOptions(optFns)
	return &VMem{trace: o.trace}
}

// Default is the instance behind the package-level Alloc and MapFile.
// It has no trace sink.
var Default = New()

// Alloc allocates size bytes using Default.
func Alloc(size uint64) (*Buffer, error) { return Default.Alloc(size) }

// MapFile maps the file at path using Default.
func MapFile(path string) (*Mapping, error) { return Default.MapFile(path) }

// Alloc reserves and commits size bytes of zero-initialized, read-write
// memory, private to the process. The region is returned to the operating
// system with Free.
//
// Whether a zero-byte region is allocatable is platform-defined; where the
// platform rejects it, Alloc reports the rejection like any other failure.
func (v *VMem) Alloc(size uint64) (*Buffer, error) {
	n, err := conv.Uint64ToInt(size)
	if err != nil || n > mmap.MaxMapSize {
		return nil, fail(v.trace, "alloc", ErrTooLarge)
	}

	data, free, err := mmap.Alloc(n)
	if err != nil {
		return nil, fail(v.trace, "alloc", err)
	}

	return &Buffer{data: data, size: size, free: free, trace: v.trace}, nil
}

// MapFile maps the file at path into memory as read-only. An empty file
// yields a valid mapping with no bytes and no operating system resources.
//
// The descriptor opened for mapping is closed before MapFile returns, on
// success and on failure; the established view outlives it.
func (v *VMem) MapFile(path string) (*Mapping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fail(v.trace, "map", err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, fail(v.trace, "map", err)
	}

	size := fi.Size()
	if size == 0 {
		return &Mapping{data: nil, size: 0, trace: v.trace}, nil
	}
	if size < 0 {
		return nil, fail(v.trace, "map", ErrInvalidSize)
	}
	if size > mmap.MaxMapSize {
		return nil, fail(v.trace, "map", ErrTooLarge)
	}

	data, unmap, err := mmap.Map(f, int(size))
	if err != nil {
		return nil, fail(v.trace, "map", err)
	}

	return &Mapping{data: data, size: uint64(size), unmap: unmap, trace: v.trace}, nil
}
