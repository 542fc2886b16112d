// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter

import (
	"sync/atomic"
)

// Counter - a 64 bit unsigned integer that can be incremented safely
// from several goroutines
type Counter uint64

// Increment - add 1 to a counter, returns new value
func (ic *Counter) Increment() uint64 {
	return atomic.AddUint64((*uint64)(ic), 1)
}

// Uint64 - returns current value
func (ic *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(ic))
}

// IsZero - check if zero
func (ic *Counter) IsZero() bool {
	return 0 == ic.Uint64()
}

// Set - tally of outcomes of dispatched calls
type Set struct {
	Dispatched Counter
	Succeeded  Counter
	Rejected   Counter
	Failed     Counter
}

// Snapshot - plain copy of a Set for display
type Snapshot struct {
	Dispatched uint64 `json:"dispatched"`
	Succeeded  uint64 `json:"succeeded"`
	Rejected   uint64 `json:"rejected"`
	Failed     uint64 `json:"failed"`
}

// Snapshot - read every counter
func (s *Set) Snapshot() Snapshot {
	return Snapshot{
		Dispatched: s.Dispatched.Uint64(),
		Succeeded:  s.Succeeded.Uint64(),
		Rejected:   s.Rejected.Uint64(),
		Failed:     s.Failed.Uint64(),
	}
}
