// SPDX-License-Identifier: MIT
// Package: coeff
//
// Package coeff provides the coefficient types used throughout struqture:
// real and complex values that are either concrete numbers or symbolic
// parameters to be bound later.
//
// What coeff offers:
//
//	Float   - a float64 or a named/derived symbolic expression
//	Complex - a pair of Floats (real and imaginary part)
//
// Arithmetic is closed over both variants: any operation touching a symbolic
// operand yields a symbolic result whose expression string records the
// computation. Numeric operands fold eagerly.
//
// Truncation treats symbolic values as unconditionally significant: a
// threshold filter can never discard a parameter whose magnitude is unknown.
//
// Serialization renders numeric values as JSON/msgpack numbers and symbolic
// values as strings; decoding branches on the wire type.
package coeff
