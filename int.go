// Copyright 2026 The bignum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import "fmt"

// Int is an arbitrary-precision signed integer in sign-magnitude form (spec
// §3). The zero value is not meaningful; use NewFromLimbs, NewFromDecimal,
// or one of the arithmetic functions to obtain one. Values are immutable
// after construction: no method or function mutates the receiver or its
// arguments, so two goroutines may hold and read the same *Int concurrently
// without coordination (spec §5).
type Int struct {
	mag []Word // little-endian, no trailing zero limb (I2)
	neg bool   // false whenever mag is empty (I1)
}

// normalize strips trailing (most significant) zero limbs from mag in
// place, returning the shortened slice.
func normalize(mag []Word) []Word {
	n := len(mag)
	for n > 0 && mag[n-1] == 0 {
		n--
	}
	return mag[:n]
}

// newCanonical builds an *Int from an already-normalized magnitude,
// enforcing I1: zero is never negative.
func newCanonical(mag []Word, negative bool) *Int {
	if len(mag) == 0 {
		negative = false
	}
	return &Int{mag: mag, neg: negative}
}

// NewFromLimbs constructs an Int from a little-endian limb sequence and a
// sign. limbs may contain leading (most significant) zero limbs; they are
// stripped. An all-zero or empty limbs is the canonical zero regardless of
// negative.
func NewFromLimbs(limbs []Word, negative bool) *Int {
	mag := normalize(append([]Word(nil), limbs...))
	return newCanonical(mag, negative)
}

// NewFromDecimal parses s as an optionally-signed decimal integer
// ([-+]?[0-9]+). A bare sign or embedded non-digit characters (including
// whitespace) return an *InvalidNumeralError; a literal exceeding
// MaxDecimalDigits returns an *OverflowError. A leading '+' is accepted as a
// compatible extension (spec §9's open question) and is not treated as an
// alias for anything but "no sign".
func NewFromDecimal(s string) (*Int, error) {
	if len(s) == 0 {
		return nil, &InvalidNumeralError{Input: s, Reason: "empty numeral"}
	}

	neg, body := false, s
	switch s[0] {
	case '-':
		neg, body = true, s[1:]
	case '+':
		body = s[1:]
	}
	if len(body) == 0 {
		return nil, &InvalidNumeralError{Input: s, Reason: "bare sign"}
	}

	mag, err := decimalToMagnitude(body)
	if err != nil {
		return nil, err
	}
	return newCanonical(mag, neg), nil
}

// IsZero reports whether x is the canonical zero.
func (x *Int) IsZero() bool { return len(x.mag) == 0 }

// MaxDecimalLen returns an upper bound on the number of characters
// AppendDecimal will write for x, including an optional leading '-'.
func (x *Int) MaxDecimalLen() int { return maxDecimalLen(len(x.mag), x.neg) }

// String returns the decimal representation of x, with a leading '-' for
// negative values and no leading zeros ("0" for zero).
func (x *Int) String() string {
	s := magnitudeToDecimal(x.mag)
	if x.neg {
		return "-" + s
	}
	return s
}

// AppendDecimal appends the decimal representation of x to dst and returns
// the extended slice. len(result)-len(dst) never exceeds x.MaxDecimalLen().
func (x *Int) AppendDecimal(dst []byte) []byte {
	return append(dst, x.String()...)
}

// GoString supports the %#v fmt verb with a compact, readable form.
func (x *Int) GoString() string {
	return fmt.Sprintf("bignum.Int(%s)", x.String())
}

func (x *Int) validate() {
	if !debugBignum {
		panic("validate called but debugBignum is not set")
	}
	if len(x.mag) > 0 && x.mag[len(x.mag)-1] == 0 {
		panic(fmt.Sprintf("Int %s has a leading zero limb", x.String()))
	}
	if len(x.mag) == 0 && x.neg {
		panic("zero Int has negative sign set")
	}
}

// Cmp returns -1, 0 or +1 as x is less than, equal to, or greater than y,
// per spec §6.1's total order.
func Cmp(x, y *Int) int {
	if x.neg != y.neg {
		if x.neg {
			return -1
		}
		return 1
	}
	c := cmp(x.mag, y.mag)
	if x.neg {
		return -c
	}
	return c
}

// addMagnitudes returns the normalized sum of two unsigned magnitudes.
func addMagnitudes(x, y []Word) []Word {
	if len(x) < len(y) {
		x, y = y, x
	}
	v := make([]Word, len(x))
	copy(v, y)
	return normalize(add(len(x), x, v))
}

// subMagnitudes returns the normalized absolute difference of two unsigned
// magnitudes, and whether the larger operand was y (in which case the
// caller must flip the sign it would otherwise have used).
func subMagnitudes(x, y []Word) (mag []Word, yWasLarger bool) {
	switch cmp(x, y) {
	case 0:
		return nil, false
	case -1:
		mag, _ = subMagnitudes(y, x)
		return mag, true
	}
	v := make([]Word, len(x))
	copy(v, y)
	return normalize(sub(len(x), x, v)), false
}

// Add returns x + y. Same-sign operands add magnitudes and keep the shared
// sign; opposite-sign operands subtract the smaller magnitude from the
// larger and take the larger operand's sign (spec §4.3's dispatch table).
func Add(x, y *Int) *Int {
	if x.neg == y.neg {
		return newCanonical(addMagnitudes(x.mag, y.mag), x.neg)
	}
	mag, yWasLarger := subMagnitudes(x.mag, y.mag)
	sign := x.neg
	if yWasLarger {
		sign = y.neg
	}
	return newCanonical(mag, sign)
}

// Sub returns x - y, reduced to x + (-y) per spec §4.3.
func Sub(x, y *Int) *Int {
	return Add(x, Neg(y))
}

// Mul returns x * y. The magnitude is the schoolbook product of the
// operands' magnitudes; the sign is the XOR of the operands' signs.
func Mul(x, y *Int) *Int {
	return newCanonical(normalize(mul(x.mag, y.mag)), x.neg != y.neg)
}

// divRem implements spec §4.3's division and remainder dispatch in one
// pass, since both share the same Algorithm D call.
func divRem(x, y *Int) (q, r *Int, err error) {
	if y.IsZero() {
		return nil, nil, &DivisionByZeroError{}
	}
	if cmp(x.mag, y.mag) < 0 {
		rem := make([]Word, len(x.mag))
		copy(rem, x.mag)
		return newCanonical(nil, false), newCanonical(rem, x.neg), nil
	}
	qm, rm := divMagnitude(x.mag, y.mag)
	q = newCanonical(normalize(qm), x.neg != y.neg)
	r = newCanonical(normalize(rm), x.neg)
	return q, r, nil
}

// Div returns the truncated-toward-zero quotient x / y. It fails with
// *DivisionByZeroError if y is zero.
func Div(x, y *Int) (*Int, error) {
	q, _, err := divRem(x, y)
	return q, err
}

// Rem returns the remainder of x / y, which shares x's sign (or is zero),
// satisfying x == q*y + r with |r| < |y|. It fails with
// *DivisionByZeroError if y is zero.
func Rem(x, y *Int) (*Int, error) {
	_, r, err := divRem(x, y)
	return r, err
}

// Neg returns -x. Canonical zero negates to itself.
func Neg(x *Int) *Int {
	return newCanonical(x.mag, !x.neg)
}
