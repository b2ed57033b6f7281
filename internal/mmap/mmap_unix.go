//go:build unix

package mmap

import (
	"os"

	"golang.org/x/sys/unix"
)

// Alloc commits size bytes of zero-initialized, read-write anonymous
// memory, private to the process.
func Alloc(size int) ([]byte, func([]byte) error, error) {
	flags, err := hugeMapFlags()
	if err != nil {
		return nil, nil, err
	}

	data, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE|flags)
	if err != nil {
		return nil, nil, os.NewSyscallError("mmap", err)
	}

	return data, free, nil
}

// Map maps the first size bytes of f as a private, read-only view.
func Map(f *os.File, size int) ([]byte, func([]byte) error, error) {
	flags, err := hugeMapFlags()
	if err != nil {
		return nil, nil, err
	}

	data, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ, unix.MAP_PRIVATE|flags)
	if err != nil {
		return nil, nil, os.NewSyscallError("mmap", err)
	}

	return data, free, nil
}

// free releases a region obtained from Alloc or Map. Munmap resolves the
// region through the slice itself, so it must receive the exact slice the
// mapping call returned.
func free(data []byte) error {
	if err := unix.Munmap(data); err != nil {
		return os.NewSyscallError("munmap", err)
	}
	return nil
}
