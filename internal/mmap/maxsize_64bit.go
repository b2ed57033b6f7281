//go:build !386 && !arm && !mips && !mipsle

package mmap

// MaxMapSize is the largest region a single allocation or mapping may span.
const MaxMapSize = 0xFFFFFFFFFFFF // 256TB
