// Copyright 2026 The bignum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import "math/bits"

// A Word is a single limb of a magnitude, stored least-significant-limb
// first (little-endian) in a []Word. This package uses 32-bit limbs for
// storage, multiplication and addition/subtraction; division narrows to
// 16-bit half-limbs (see half.go) so that Algorithm D's quotient-digit
// estimate can use a plain 32-by-16 hardware divide.
type Word uint32

const (
	_W = 32              // bits per Word
	_M = 1<<_W - 1        // Word mask
)

const debugBignum = false

// cmp compares the magnitudes u and v, both of which must already have any
// leading (most significant) zero limbs stripped. It returns -1, 0 or +1 as
// u is less than, equal to, or greater than v.
func cmp(u, v []Word) int {
	if len(u) != len(v) {
		if len(u) < len(v) {
			return -1
		}
		return 1
	}
	for i := len(u) - 1; i >= 0; i-- {
		if u[i] != v[i] {
			if u[i] < v[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// addVV sets z = x + y for equal-length x, y, z and returns the carry out of
// the top limb, which is always 0 or 1. This is spec's Algorithm A minus the
// final (n+1)-th limb write, which callers perform themselves; splitting it
// this way lets add() below reuse the same loop for its (n+1)-limb result.
func addVV(z, x, y []Word) (c Word) {
	for i := range z {
		sumA := x[i] + c
		carryA := Word(0)
		if sumA < x[i] {
			carryA = 1
		}
		sumB := sumA + y[i]
		carryB := Word(0)
		if sumB < sumA {
			carryB = 1
		}
		z[i] = sumB
		if debugBignum && carryA+carryB > 1 {
			panic("addVV: carry out of range")
		}
		c = carryA + carryB
	}
	return c
}

// add computes u + v, both n-limb magnitudes, into a freshly allocated
// (n+1)-limb result. Corresponds to spec's algorithm_a / Algorithm A.
func add(n int, u, v []Word) []Word {
	w := make([]Word, n+1)
	w[n] = addVV(w[:n], u[:n], v[:n])
	return w
}

// subVV sets z = x - y for equal-length x, y, z (with x >= y required by the
// caller) and returns the borrow out of the top limb, which must be 0.
func subVV(z, x, y []Word) (b Word) {
	for i := range z {
		diffA := x[i] - b
		borrowA := Word(0)
		if diffA > x[i] {
			borrowA = 1
		}
		diffB := diffA - y[i]
		borrowB := Word(0)
		if diffB > diffA {
			borrowB = 1
		}
		z[i] = diffB
		if debugBignum && borrowA+borrowB > 1 {
			panic("subVV: borrow out of range")
		}
		b = borrowA + borrowB
	}
	return b
}

// sub computes u - v for n-limb magnitudes with u >= v (checked when
// debugBignum is set), into a freshly allocated n-limb result. Corresponds
// to spec's algorithm_s / Algorithm S.
func sub(n int, u, v []Word) []Word {
	if debugBignum && cmp(u[:n], v[:n]) < 0 {
		panic("sub: u < v")
	}
	w := make([]Word, n)
	if b := subVV(w, u[:n], v[:n]); debugBignum && b != 0 {
		panic("sub: borrow out of top limb")
	}
	return w
}

// mulAddVWW multiplies the n-limb x by the single limb y, adds r to the
// result and stores the low n limbs in z, returning the carry limb. It is
// the fused multiply-add-scalar step used both by mul (per-digit inner loop)
// and by base conversion's multiply-add-scalar routine (spec §4.2.1).
func mulAddVWW(z, x []Word, y, r Word) (c Word) {
	c = r
	for i := range z {
		hi, lo := bits.Mul32(uint32(x[i]), uint32(y))
		lo, carry := bits.Add32(lo, uint32(c), 0)
		c = Word(hi) + Word(carry)
		z[i] = Word(lo)
	}
	return c
}

// mul multiplies the m-limb u by the n-limb v into a freshly allocated
// (m+n)-limb result, using schoolbook long multiplication (spec's
// algorithm_m / Algorithm M).
func mul(u, v []Word) []Word {
	m, n := len(u), len(v)
	w := make([]Word, m+n)
	for j := 0; j < n; j++ {
		if v[j] == 0 {
			continue
		}
		c := mulAddMulVWW(w[j:j+m], u, v[j])
		w[j+m] = c
	}
	return w
}

// mulAddMulVWW performs the accumulating step of schoolbook multiplication:
// z[i] += x[i]*y for i in range, returning the carry limb. It differs from
// mulAddVWW in that it *adds into* z rather than overwriting it, matching
// spec's inner loop (steps 2-4 of §4.1.4).
func mulAddMulVWW(z, x []Word, y Word) (c Word) {
	for i := range x {
		hi, lo := bits.Mul32(uint32(x[i]), uint32(y))
		lo, c1 := bits.Add32(lo, uint32(c), 0)
		s, c2 := bits.Add32(uint32(z[i]), lo, 0)
		z[i] = Word(s)
		k := hi + c1 + c2
		if debugBignum && k < hi {
			panic("mulAddMulVWW: carry overflow")
		}
		c = Word(k)
	}
	return c
}
