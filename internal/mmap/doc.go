// Package mmap provides the platform-specific virtual memory primitives
// behind vmem: anonymous read-write allocations and read-only file views.
//
// # Platform Support
//
// The package provides a unified API across platforms:
//
//   - Unix (Linux, macOS, BSD): Uses mmap(2) and munmap(2)
//   - Windows: Uses VirtualAlloc/VirtualFree for allocations and
//     CreateFileMapping/MapViewOfFile for file views
//   - Other platforms: Uses ordinary heap memory and buffered file reads
//
// Alloc and Map return the region together with the function that releases
// it. The release function must be called with the exact slice the call
// returned; callers own that pairing.
//
// # Huge Pages
//
// Building with the hugepages tag requests huge pages (MAP_HUGETLB on
// Linux, MEM_LARGE_PAGES and SEC_LARGE_PAGES on Windows) on every call.
// On platforms without a huge page facility the call fails with
// ErrHugePagesUnsupported; it never falls back to standard pages.
package mmap
