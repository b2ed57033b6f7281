//go:build !hugepages

package mmap

// Builds without the hugepages tag request standard pages everywhere.

func hugeMapFlags() (int, error) { return 0, nil }

func hugeAllocFlags() (uint32, error) { return 0, nil }

func hugeSecFlags() (uint32, error) { return 0, nil }
