// Package vmem provides anonymous memory allocation and read-only file
// mapping over the platform's virtual memory facilities.
//
// The same API is backed by mmap(2)/munmap(2) on Unix, by
// VirtualAlloc/VirtualFree and CreateFileMapping/MapViewOfFile on Windows,
// and by ordinary heap memory on platforms with neither.
//
// # Quick Start
//
//	buf, _ := vmem.Alloc(4096)
//	copy(buf.Bytes(), payload)
//	buf.Free()
//
//	m, _ := vmem.MapFile("testdata/corpus.bin")
//	process(m.Bytes())
//	m.Unmap()
//
// # Handles
//
// Alloc returns a Buffer, MapFile returns a Mapping. Each handle owns its
// region and is released by its own method (Free and Unmap); the two
// release paths cannot be mixed. Release is idempotent, but slices
// obtained from Bytes must not be used after it.
//
// Mapping an empty file succeeds and yields a handle with no bytes;
// unmapping it touches no operating system state.
//
// # Error Reporting
//
// Failed operations return an *Error wrapping the platform error. A trace
// sink installed with WithTrace (or WithLogger) additionally receives the
// rendered message, once per failure:
//
//	v := vmem.New(vmem.WithTrace(func(msg string) { fmt.Println(msg) }))
//	_, err := v.MapFile("does-not-exist")
//	// sink saw: vmem: map: open does-not-exist: no such file or directory
//
// # Huge Pages
//
// Building with the hugepages tag requests huge pages on every allocation
// and mapping. On platforms without huge page support the operation fails
// with ErrHugePagesUnsupported; there is no fallback to standard pages.
package vmem
