// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package currency

import (
	"github.com/spacemeshos/go-scale"

	"github.com/bitmark-inc/minichain/balance"
	"github.com/bitmark-inc/minichain/codec"
)

// AccountBalance - the stored record of one account
type AccountBalance[B balance.Value[B], PB codec.Pointer[B]] struct {
	Free     B `json:"free"`
	Reserved B `json:"reserved"`
}

// Total - free + reserved, false on overflow
func (a AccountBalance[B, PB]) Total() (B, bool) {
	return a.Free.CheckedAdd(a.Reserved)
}

// EncodeScale - free then reserved
func (a *AccountBalance[B, PB]) EncodeScale(e *scale.Encoder) (int, error) {
	total, err := PB(&a.Free).EncodeScale(e)
	if nil != err {
		return total, err
	}
	n, err := PB(&a.Reserved).EncodeScale(e)
	return total + n, err
}

// DecodeScale - free then reserved
func (a *AccountBalance[B, PB]) DecodeScale(d *scale.Decoder) (int, error) {
	total, err := PB(&a.Free).DecodeScale(d)
	if nil != err {
		return total, err
	}
	n, err := PB(&a.Reserved).DecodeScale(d)
	return total + n, err
}
