// Copyright 2026 The bignum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

// MaxDecimalDigits bounds the number of decimal digits NewFromDecimal will
// accept, guarding library callers against unbounded allocation from
// untrusted input. Its default matches the calculator front end's 100 KiB
// numeral buffer (spec §6.2); callers parsing trusted, larger literals may
// raise it.
var MaxDecimalDigits = 100 * 1024

// powersOf10 holds 10^0 .. 10^9, the largest power of ten that fits in a
// 32-bit Word (spec §4.2.1: "largest power of ten that fits in 32 bits is
// 10^9").
var powersOf10 = [10]Word{
	1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000, 1000000000,
}

// mulAddScalar computes u*x+y over the magnitude u, in place where capacity
// allows, extending u by one limb if the final carry is non-zero. This is
// spec §4.2.1's fused multiply-add-scalar routine, grounded on
// original_source/bigint.c's multiply_add.
func mulAddScalar(u []Word, x, y Word) []Word {
	c := mulAddVWW(u, u, x, y)
	if c != 0 {
		u = append(u, c)
	}
	return u
}

// decimalToMagnitude converts a string of one or more decimal digits (no
// sign, already stripped by the caller) into a normalized magnitude.
// Implements spec §4.2.1: consume the string in chunks of up to 9 digits,
// each folded in with one multiply-add-scalar pass.
func decimalToMagnitude(digits string) ([]Word, error) {
	if len(digits) == 0 {
		return nil, &InvalidNumeralError{Input: digits, Reason: "empty numeral"}
	}
	if len(digits) > MaxDecimalDigits {
		return nil, &OverflowError{Limit: MaxDecimalDigits, Got: len(digits)}
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return nil, &InvalidNumeralError{Input: digits, Reason: "non-digit character"}
		}
	}

	n := len(digits)
	first := n % 9
	if first == 0 {
		first = 9
	}
	if first > n {
		first = n
	}

	var mag []Word
	mag = mulAddScalar(mag, powersOf10[first], parseChunk(digits[:first]))
	for i := first; i < n; i += 9 {
		mag = mulAddScalar(mag, powersOf10[9], parseChunk(digits[i:i+9]))
	}
	return normalize(mag), nil
}

// parseChunk converts up to 9 pre-validated decimal digits into a Word.
func parseChunk(digits string) Word {
	var c Word
	for i := 0; i < len(digits); i++ {
		c = c*10 + Word(digits[i]-'0')
	}
	return c
}

// magnitudeToDecimal renders a normalized magnitude as a decimal string with
// no sign and no leading zeros ("0" for an empty magnitude). Implements spec
// §4.2.2: repeated short division by 10000 on a half-limb scratch copy,
// least-significant group first, zero-padded to 4 digits except for the
// final (most significant) group, then reversed.
func magnitudeToDecimal(mag []Word) string {
	if len(mag) == 0 {
		return "0"
	}

	v := halfPool.Get(len(mag) * 2)
	defer halfPool.Put(v)
	copyWordsToHalves(v, mag)
	n := len(v)
	for n > 0 && v[n-1] == 0 {
		n--
	}

	buf := make([]byte, 0, len(mag)*10)
	for n != 0 {
		q, k := shortDivHalves(v[:n], 10000)
		copy(v[:n], q)
		for n > 0 && v[n-1] == 0 {
			n--
		}
		for i := 0; (n != 0 && i < 4) || k != 0; i++ {
			buf = append(buf, byte('0'+k%10))
			k /= 10
		}
	}

	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

// maxDecimalLen returns an upper bound (spec §4.2's "10 decimal digits per
// 32-bit limb + 1 for a leading minus") on the number of characters
// magnitudeToDecimal (plus an optional sign) can produce.
func maxDecimalLen(magLen int, negative bool) int {
	n := magLen * 10
	if n == 0 {
		n = 1
	}
	if negative {
		n++
	}
	return n
}
