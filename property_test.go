// Copyright 2026 The bignum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import (
	"strconv"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// genInt generates an *Int from a random int64, covering both signs and
// zero without needing a dedicated Gen[*Int] type.
func genInt() gopter.Gen {
	return gen.Int64().Map(func(n int64) *Int {
		x, err := NewFromDecimal(strconv.FormatInt(n, 10))
		if err != nil {
			panic(err) // strconv.FormatInt never produces an invalid numeral
		}
		return x
	})
}

func TestAddCommutative(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("x + y == y + x", prop.ForAll(
		func(x, y *Int) bool {
			return Cmp(Add(x, y), Add(y, x)) == 0
		},
		genInt(), genInt(),
	))

	properties.TestingRun(t)
}

func TestAddAssociative(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("(x + y) + z == x + (y + z)", prop.ForAll(
		func(x, y, z *Int) bool {
			left := Add(Add(x, y), z)
			right := Add(x, Add(y, z))
			return Cmp(left, right) == 0
		},
		genInt(), genInt(), genInt(),
	))

	properties.TestingRun(t)
}

func TestMulCommutative(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("x * y == y * x", prop.ForAll(
		func(x, y *Int) bool {
			return Cmp(Mul(x, y), Mul(y, x)) == 0
		},
		genInt(), genInt(),
	))

	properties.TestingRun(t)
}

func TestMulAssociative(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("(x * y) * z == x * (y * z)", prop.ForAll(
		func(x, y, z *Int) bool {
			left := Mul(Mul(x, y), z)
			right := Mul(x, Mul(y, z))
			return Cmp(left, right) == 0
		},
		genInt(), genInt(), genInt(),
	))

	properties.TestingRun(t)
}

func TestMulDistributesOverAdd(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("x * (y + z) == x*y + x*z", prop.ForAll(
		func(x, y, z *Int) bool {
			left := Mul(x, Add(y, z))
			right := Add(Mul(x, y), Mul(x, z))
			return Cmp(left, right) == 0
		},
		genInt(), genInt(), genInt(),
	))

	properties.TestingRun(t)
}

func TestMulIdentityAndZero(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	one := mustPropInt("1")
	zero := mustPropInt("0")

	properties.Property("x * 1 == x", prop.ForAll(
		func(x *Int) bool {
			return Cmp(Mul(x, one), x) == 0
		},
		genInt(),
	))
	properties.Property("x * 0 == 0", prop.ForAll(
		func(x *Int) bool {
			return Cmp(Mul(x, zero), zero) == 0
		},
		genInt(),
	))

	properties.TestingRun(t)
}

func TestMulNegation(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("(-x) * y == -(x * y)", prop.ForAll(
		func(x, y *Int) bool {
			return Cmp(Mul(Neg(x), y), Neg(Mul(x, y))) == 0
		},
		genInt(), genInt(),
	))

	properties.TestingRun(t)
}

func mustPropInt(s string) *Int {
	x, err := NewFromDecimal(s)
	if err != nil {
		panic(err)
	}
	return x
}

func TestSubAddInverse(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("(x - y) + y == x", prop.ForAll(
		func(x, y *Int) bool {
			return Cmp(Add(Sub(x, y), y), x) == 0
		},
		genInt(), genInt(),
	))

	properties.TestingRun(t)
}

func TestDecimalRoundTripProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("NewFromDecimal(x.String()) == x", prop.ForAll(
		func(x *Int) bool {
			y, err := NewFromDecimal(x.String())
			if err != nil {
				return false
			}
			return Cmp(x, y) == 0
		},
		genInt(),
	))

	properties.TestingRun(t)
}

// TestDivisionIdentity verifies x == q*y + r and |r| < |y| for the
// division/remainder pair, whenever y is non-zero.
func TestDivisionIdentity(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("x == Div(x,y)*y + Rem(x,y)", prop.ForAll(
		func(x, y *Int) bool {
			if y.IsZero() {
				return true
			}
			q, err := Div(x, y)
			if err != nil {
				return false
			}
			r, err := Rem(x, y)
			if err != nil {
				return false
			}
			reconstructed := Add(Mul(q, y), r)
			if Cmp(reconstructed, x) != 0 {
				return false
			}
			absR := r
			if absR.neg {
				absR = Neg(absR)
			}
			absY := y
			if absY.neg {
				absY = Neg(absY)
			}
			return Cmp(absR, absY) < 0
		},
		genInt(), genInt(),
	))

	properties.TestingRun(t)
}

func TestCmpTotalOrderProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("Cmp is antisymmetric", prop.ForAll(
		func(x, y *Int) bool {
			return Cmp(x, y) == -Cmp(y, x)
		},
		genInt(), genInt(),
	))

	properties.TestingRun(t)
}
