// Package bigbigint implements a growable, sign-magnitude, arbitrary-precision
// integer. The magnitude is stored as a sequence of 32-bit words in
// most-significant-word-first order; the sign is an independent flag and zero
// is always non-negative.
//
// Values are created with New or FromNumber and combined with pure operators
// (Add, Sub, Mul, DivMod, Lsh, Or, ...) that return a fresh instance, leaving
// their operands untouched. Every pure operator has a compound *Assign form
// that mutates the receiver in place; compound forms always compute the full
// result before overwriting, so self-assignment is safe.
//
// Conversions to and from fixed-width primitive types are deliberately lossy:
// narrowing to a primitive silently discards high-order magnitude, and
// floating-point input is truncated toward zero through int64 before
// assignment. Both behaviors are documented contracts, not errors.
//
// An Int is a single-threaded value. Distinct instances may be used from
// distinct goroutines without synchronization; a single instance must not be
// accessed concurrently.
package bigbigint
