// Copyright 2026 The bignum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Written by hand in the form "stringer -type=ErrorKind" produces; not
// generated. Keep in sync with the const block in errors.go.

package bignum

import "strconv"

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidNumeral:
		return "InvalidNumeral"
	case KindOverflow:
		return "Overflow"
	case KindDivisionByZero:
		return "DivisionByZero"
	case KindAllocationFailure:
		return "AllocationFailure"
	default:
		return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
}
