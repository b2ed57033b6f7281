//go:build !unix && !windows

package mmap

import (
	"io"
	"os"
)

// Alloc returns size bytes of ordinary heap memory on platforms without
// virtual memory primitives.
func Alloc(size int) ([]byte, func([]byte) error, error) {
	if _, err := hugeMapFlags(); err != nil {
		return nil, nil, err
	}

	return make([]byte, size), release, nil
}

// Map reads the first size bytes of f into heap memory.
func Map(f *os.File, size int) ([]byte, func([]byte) error, error) {
	if _, err := hugeMapFlags(); err != nil {
		return nil, nil, err
	}

	data := make([]byte, size)
	if _, err := io.ReadFull(f, data); err != nil {
		return nil, nil, err
	}

	return data, release, nil
}

// release is a no-op; the memory is reclaimed by the garbage collector.
func release([]byte) error { return nil }
