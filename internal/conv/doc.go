// Package conv provides safe integer type conversion utilities.
//
// These functions perform bounds checking to prevent integer overflow when
// converting between caller-facing unsigned sizes and Go's platform int.
//
// For conversions that are provably safe by domain constraints (e.g. sizes
// already checked against an explicit bound), use direct type casts instead.
package conv
