// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package balance

import (
	"math/big"

	"github.com/holiman/uint256"
	"github.com/spacemeshos/go-scale"

	"github.com/bitmark-inc/minichain/fault"
)

// number of bytes in the stored form
const u256Bytes = 32

// U256 - 256 bit balance, stored as 32 byte little endian
type U256 struct {
	n uint256.Int
}

// NewU256 - balance from a small value
func NewU256(value uint64) U256 {
	return U256{n: *uint256.NewInt(value)}
}

// ParseU256 - decimal string to balance
func ParseU256(s string) (U256, error) {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok || b.Sign() < 0 {
		return U256{}, fault.ErrInvalidAmount
	}
	n, overflow := uint256.FromBig(b)
	if overflow {
		return U256{}, fault.ErrInvalidAmount
	}
	return U256{n: *n}, nil
}

func (a U256) CheckedAdd(b U256) (U256, bool) {
	result := U256{}
	_, overflow := result.n.AddOverflow(&a.n, &b.n)
	return result, !overflow
}

func (a U256) CheckedSub(b U256) (U256, bool) {
	result := U256{}
	_, underflow := result.n.SubOverflow(&a.n, &b.n)
	return result, !underflow
}

func (a U256) Cmp(b U256) int {
	return a.n.Cmp(&b.n)
}

func (a U256) IsZero() bool {
	return a.n.IsZero()
}

func (a U256) String() string {
	return a.n.ToBig().String()
}

// EncodeScale - 32 byte little endian
func (a *U256) EncodeScale(e *scale.Encoder) (int, error) {
	buffer := a.n.Bytes32() // big endian
	reverse(buffer[:])
	return scale.EncodeByteArray(e, buffer[:])
}

// DecodeScale - 32 byte little endian
func (a *U256) DecodeScale(d *scale.Decoder) (int, error) {
	buffer := [u256Bytes]byte{}
	n, err := scale.DecodeByteArray(d, buffer[:])
	if nil != err {
		return n, err
	}
	reverse(buffer[:])
	a.n.SetBytes32(buffer[:])
	return n, nil
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
