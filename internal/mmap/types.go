package mmap

import "errors"

var (
	// ErrHugePagesUnsupported is returned by builds made with the hugepages
	// tag on platforms that have no huge page facility.
	ErrHugePagesUnsupported = errors.New("huge pages not supported on this platform")
)
