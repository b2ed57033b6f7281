//go:build hugepages && linux

package mmap

import "golang.org/x/sys/unix"

// hugeMapFlags applies to anonymous and file mappings alike. File-backed
// MAP_HUGETLB requires a hugetlbfs file; mapping a regular file fails at
// the call site rather than degrading to standard pages.
func hugeMapFlags() (int, error) { return unix.MAP_HUGETLB, nil }
