//go:build hugepages && windows

package mmap

import "golang.org/x/sys/windows"

// Large pages require SeLockMemoryPrivilege and sizes that are multiples
// of the large page minimum; requests that do not meet these conditions
// fail at the call site rather than degrading to standard pages.

func hugeAllocFlags() (uint32, error) { return windows.MEM_LARGE_PAGES, nil }

func hugeSecFlags() (uint32, error) { return windows.SEC_LARGE_PAGES, nil }
