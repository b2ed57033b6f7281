//go:build hugepages && !linux && !windows

package mmap

func hugeMapFlags() (int, error) { return 0, ErrHugePagesUnsupported }
