// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package balance

import (
	"math/bits"
	"strconv"

	"github.com/spacemeshos/go-scale"

	"github.com/bitmark-inc/minichain/codec"
	"github.com/bitmark-inc/minichain/fault"
)

// U64 - 64 bit balance, stored as 8 byte little endian
type U64 uint64

// ParseU64 - decimal string to balance
func ParseU64(s string) (U64, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if nil != err {
		return 0, fault.ErrInvalidAmount
	}
	return U64(n), nil
}

func (a U64) CheckedAdd(b U64) (U64, bool) {
	sum, carry := bits.Add64(uint64(a), uint64(b), 0)
	return U64(sum), 0 == carry
}

func (a U64) CheckedSub(b U64) (U64, bool) {
	difference, borrow := bits.Sub64(uint64(a), uint64(b), 0)
	return U64(difference), 0 == borrow
}

func (a U64) Cmp(b U64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (a U64) IsZero() bool {
	return 0 == a
}

func (a U64) String() string {
	return strconv.FormatUint(uint64(a), 10)
}

// EncodeScale - 8 byte little endian
func (a *U64) EncodeScale(e *scale.Encoder) (int, error) {
	return codec.EncodeUint64(e, uint64(*a))
}

// DecodeScale - 8 byte little endian
func (a *U64) DecodeScale(d *scale.Decoder) (int, error) {
	n, total, err := codec.DecodeUint64(d)
	if nil != err {
		return total, err
	}
	*a = U64(n)
	return total, nil
}
