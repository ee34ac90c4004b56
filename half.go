// Copyright 2026 The bignum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

// halfWord is a 16-bit half-limb, used only by the division kernel (div.go)
// so that Algorithm D's quotient-digit estimate reduces to a plain 32-by-16
// hardware divide instead of requiring 128-bit division. See spec §4.1.7 and
// §9's design note on why 32-bit limbs plus a 16-bit working form.
type halfWord = uint16

// wordsToHalves splits n 32-bit Words into 2n 16-bit half-limbs, low half
// first. Corresponds to original_source/bigint.c's u32_to_u16.
func wordsToHalves(u []Word) []halfWord {
	h := make([]halfWord, len(u)*2)
	copyWordsToHalves(h, u)
	return h
}

// copyWordsToHalves fills the first 2*len(u) elements of dst, which must
// have at least that much room, from u. Used to fill pooled scratch buffers
// without a separate allocation.
func copyWordsToHalves(dst []halfWord, u []Word) {
	for i, w := range u {
		dst[i*2] = halfWord(w)
		dst[i*2+1] = halfWord(w >> 16)
	}
}

// halvesToWords recomposes an even-length half-limb slice into Words, low
// half first. Corresponds to original_source/bigint.c's u16_to_u32.
func halvesToWords(h []halfWord) []Word {
	if debugBignum && len(h)%2 != 0 {
		panic("halvesToWords: odd length")
	}
	u := make([]Word, len(h)/2)
	for i := range u {
		u[i] = Word(h[2*i]) | Word(h[2*i+1])<<16
	}
	return u
}

// clz16 returns the number of leading zero bits in x, which must be
// non-zero. Used to compute Algorithm D's normalization shift.
func clz16(x halfWord) uint {
	if debugBignum && x == 0 {
		panic("clz16: x == 0")
	}
	n := uint(0)
	for x <= 0x7FFF {
		x <<= 1
		n++
	}
	return n
}
