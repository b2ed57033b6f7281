//go:build windows

package mmap

import (
	"os"
	"unsafe"

	"golang.org/x/sys/windows"
)

// Alloc commits size bytes of zero-initialized, read-write memory.
//
// VirtualAlloc with MEM_COMMIT uses demand paging: pages are backed by
// physical memory on first access, matching Unix mmap behavior.
func Alloc(size int) ([]byte, func([]byte) error, error) {
	allocType, err := hugeAllocFlags()
	if err != nil {
		return nil, nil, err
	}

	addr, err := windows.VirtualAlloc(0, uintptr(size),
		windows.MEM_RESERVE|windows.MEM_COMMIT|allocType, windows.PAGE_READWRITE)
	if err != nil {
		return nil, nil, os.NewSyscallError("VirtualAlloc", err)
	}

	data := unsafe.Slice((*byte)(unsafe.Pointer(addr)), size)

	return data, func([]byte) error {
		// VirtualFree with MEM_RELEASE frees the entire region.
		if err := windows.VirtualFree(addr, 0, windows.MEM_RELEASE); err != nil {
			return os.NewSyscallError("VirtualFree", err)
		}
		return nil
	}, nil
}

// Map maps the first size bytes of f as a read-only view.
func Map(f *os.File, size int) ([]byte, func([]byte) error, error) {
	secFlags, err := hugeSecFlags()
	if err != nil {
		return nil, nil, err
	}

	h, err := windows.CreateFileMapping(windows.Handle(f.Fd()), nil, windows.PAGE_READONLY|secFlags, 0, 0, nil)
	if err != nil {
		return nil, nil, os.NewSyscallError("CreateFileMapping", err)
	}
	// The view holds its own reference; the mapping object can be closed
	// as soon as the view exists.
	defer windows.CloseHandle(h)

	addr, err := windows.MapViewOfFile(h, windows.FILE_MAP_READ, 0, 0, uintptr(size))
	if err != nil {
		return nil, nil, os.NewSyscallError("MapViewOfFile", err)
	}

	data := unsafe.Slice((*byte)(unsafe.Pointer(addr)), size)

	return data, func([]byte) error {
		// The view is identified by its base address, not by the slice.
		if err := windows.UnmapViewOfFile(addr); err != nil {
			return os.NewSyscallError("UnmapViewOfFile", err)
		}
		return nil
	}, nil
}
