// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package balance

import (
	"fmt"
)

// Value - constraint satisfied by every balance type
//
// the Go zero value of a balance must be numeric zero
type Value[B any] interface {
	comparable
	fmt.Stringer

	// CheckedAdd - sum, false on overflow
	CheckedAdd(B) (B, bool)

	// CheckedSub - difference, false on underflow
	CheckedSub(B) (B, bool)

	// Cmp - -1, 0 or +1 as the receiver is less, equal or greater
	Cmp(B) int

	IsZero() bool
}

// AtLeast - true if a >= b
func AtLeast[B Value[B]](a B, b B) bool {
	return a.Cmp(b) >= 0
}
