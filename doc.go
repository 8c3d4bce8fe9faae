// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bignum implements arbitrary-precision unsigned integers
// (BigNat) and arbitrary-precision binary floating-point numbers
// (BigFloat).
//
// BigNat stores its value as a little-endian sequence of 32-bit limbs
// and supports the usual integer operations: Add, Sub (absolute
// difference), Mul, Lsh, Rsh, Cmp, Log2, Log10, bit get/set, bitwise
// inversion over a bit-count window, and a fractional Divide that
// produces a quotient to a configurable binary accuracy rather than a
// remainder.
//
// BigFloat wraps a BigNat mantissa with a signed shift and sign bit,
// very much like math/big.Float wraps a mantissa with a signed
// exponent. Unlike big.Float, BigFloat never panics on NaN-equivalent
// results: instead it carries a tri-state State (Normal, Inf, Error),
// and every operation on an Error-state operand produces an
// Error-state result. Callers that want math/big's "operations on NaN
// panic" behavior should check State after every call in hot loops
// that cannot tolerate silent propagation.
//
// As with math/big, operations always take pointer arguments (*BigNat,
// *BigFloat) for efficiency, and a unary or binary operation stores its
// result in the receiver, which must be non-nil:
//
//	func (z *BigFloat) Op(x, y *BigFloat) *BigFloat
//
// and the receiver may be one of the operands:
//
//	x.Add(x, y) // x = x + y
//
// Unlike big.Float, BigFloat carries no configurable precision or
// rounding mode: Add, Sub, and Mul are always exact (modulo the
// right-align storage optimization, which never changes the
// represented value), and Quo and Sqrt are approximate to the fixed,
// package-tunable accuracies described by ConstructorMaxIterations,
// DivisionAccuracy, SqrtAccuracy, and SqrtAccuracyIncreaseRatio. The
// accuracy subpackage offers a Context wrapper for callers who want to
// bundle those tunables together and track the first error across a
// chain of operations.
package bignum
