// Package conv provides safe integer type conversion utilities.
//
// These functions perform bounds checking so that a negative shift count or
// bit position is reported as an error instead of silently wrapping when it is
// handed to math/big or a roaring bitmap.
//
// For conversions that are provably safe by domain constraints (e.g., loop
// indices bounded by a non-negative width), use direct type casts instead.
package conv
