// Copyright 2026 The bignum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package bignum implements arbitrary-precision signed integer arithmetic.

Values are represented in sign-magnitude form: a little-endian slice of
32-bit Words holding the absolute value, plus a sign flag. There is exactly
one representation of zero (positive, empty magnitude).

Unlike math/big, this package does not implement sub-quadratic
multiplication, modular or bitwise operators, or conversion to and from
floating point; it is intentionally a much smaller, classical
schoolbook-multiplication and Knuth-Algorithm-D-division implementation.

The zero value of Int is not directly usable; values are produced by
NewFromLimbs, NewFromDecimal, or by the arithmetic functions Add, Sub, Mul,
Div, Rem and Neg, all of which return freshly allocated, immutable values.

	x, _ := bignum.NewFromDecimal("170141183460469231731687303715884105727")
	y := bignum.NewFromLimbs([]bignum.Word{2}, false)
	bignum.Add(x, y).String() // "170141183460469231731687303715884105729"

Arithmetic functions never mutate their operands. Division and remainder
truncate toward zero; the remainder shares the dividend's sign (or is zero),
so that x == q*y + r and |r| < |y| always hold. Dividing by zero returns a
*DivisionByZeroError.
*/
package bignum
