// Copyright 2026 The bignum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pool provides a small sync.Pool-backed slice cache for scratch
// buffers whose lifetime is confined to a single call.
//
// Grounded on db47h-decimal/dec.go's getDec/putDec/decPool: that package
// pools *dec values (a named slice type) to avoid allocating when
// converting to interface{}. This package generalizes the same idea to any
// element type via a type parameter; the bignum core instantiates it once,
// for its 16-bit half-limb scratch.
package pool

import "sync"

// Pool caches slices of T for reuse as scratch buffers.
type Pool[T any] struct {
	p sync.Pool
}

// New returns an empty Pool for element type T.
func New[T any]() *Pool[T] {
	return &Pool[T]{
		p: sync.Pool{
			New: func() any {
				s := make([]T, 0)
				return &s
			},
		},
	}
}

// Get returns a slice of length n. Its contents are not zeroed.
func (pl *Pool[T]) Get(n int) []T {
	sp := pl.p.Get().(*[]T)
	s := *sp
	if cap(s) < n {
		return make([]T, n)
	}
	return s[:n]
}

// Put returns s to the pool for reuse. Callers must not use s afterward.
func (pl *Pool[T]) Put(s []T) {
	pl.p.Put(&s)
}
