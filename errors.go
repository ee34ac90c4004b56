// Copyright 2026 The bignum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import "fmt"

// ErrorKind classifies the failure modes described in spec §3's error
// model, so callers can dispatch on kind without a type switch across four
// concrete types.
//
//go:generate stringer -type=ErrorKind
type ErrorKind int

const (
	// KindInvalidNumeral means a decimal literal was empty, bare-signed, or
	// contained a non-digit character.
	KindInvalidNumeral ErrorKind = iota
	// KindOverflow means a decimal literal exceeded MaxDecimalDigits.
	KindOverflow
	// KindDivisionByZero means a division or remainder operation's divisor
	// was the canonical zero.
	KindDivisionByZero
	// KindAllocationFailure means a requested magnitude length could not be
	// satisfied. This package never produces it.
	KindAllocationFailure
)

// InvalidNumeralError reports a decimal literal that NewFromDecimal or
// decimalToMagnitude could not parse.
type InvalidNumeralError struct {
	Input  string
	Reason string
}

func (e *InvalidNumeralError) Error() string {
	return fmt.Sprintf("bignum: invalid numeral %q: %s", e.Input, e.Reason)
}

// Kind implements the kind-classifier interface that the calculator front
// end's reportError dispatches on with a type switch.
func (e *InvalidNumeralError) Kind() ErrorKind { return KindInvalidNumeral }

// OverflowError reports a decimal literal longer than the configured limit.
type OverflowError struct {
	Limit int
	Got   int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("bignum: numeral of %d digits exceeds limit of %d", e.Got, e.Limit)
}

func (e *OverflowError) Kind() ErrorKind { return KindOverflow }

// DivisionByZeroError reports an attempted division or remainder by the
// canonical zero. Div and Rem return it directly; they never panic.
type DivisionByZeroError struct{}

func (e *DivisionByZeroError) Error() string { return "bignum: division by zero" }

func (e *DivisionByZeroError) Kind() ErrorKind { return KindDivisionByZero }

// AllocationFailureError reports that a magnitude of the requested length
// could not be obtained. This package never returns it: on memory
// exhaustion the Go runtime stops the process with a fatal error, which
// cannot be recovered. The type exists so that callers can report
// allocation failures of their own with the same error kinds.
type AllocationFailureError struct {
	Requested int
}

func (e *AllocationFailureError) Error() string {
	return fmt.Sprintf("bignum: allocation of %d limbs failed", e.Requested)
}

func (e *AllocationFailureError) Kind() ErrorKind { return KindAllocationFailure }
