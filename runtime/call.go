// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package runtime

import (
	"github.com/bitmark-inc/minichain/currency"
	"github.com/bitmark-inc/minichain/fault"
	"github.com/bitmark-inc/minichain/staking"
)

// indexes of the encoded outer call
const (
	CurrencyIndex = 0
	StakingIndex  = 1
)

// Call - either a CurrencyCall or a StakingCall
type Call interface {
	outerIndex() uint8
}

// CurrencyCall - a call for the ledger
type CurrencyCall struct {
	currency.Call
}

// StakingCall - a call for staking
type StakingCall struct {
	staking.Call
}

func (CurrencyCall) outerIndex() uint8 { return CurrencyIndex }
func (StakingCall) outerIndex() uint8  { return StakingIndex }

// EncodeCall - outer index byte followed by the module's encoding
func EncodeCall(call Call) ([]byte, error) {
	var inner []byte
	var err error

	switch c := call.(type) {
	case CurrencyCall:
		inner, err = currency.EncodeCall[Balance, *Balance](c.Call)
	case StakingCall:
		inner, err = staking.EncodeCall[Balance, *Balance](c.Call)
	default:
		return nil, fault.ErrUnknownCall
	}
	if nil != err {
		return nil, err
	}

	return append([]byte{call.outerIndex()}, inner...), nil
}

// DecodeCall - rebuild a call from EncodeCall's output
func DecodeCall(data []byte) (Call, error) {
	if 0 == len(data) {
		return nil, fault.ErrInvalidCallIndex
	}

	switch data[0] {
	case CurrencyIndex:
		c, err := currency.DecodeCall[Balance, *Balance](data[1:])
		if nil != err {
			return nil, err
		}
		return CurrencyCall{c}, nil

	case StakingIndex:
		c, err := staking.DecodeCall[Balance, *Balance](data[1:])
		if nil != err {
			return nil, err
		}
		return StakingCall{c}, nil

	default:
		return nil, fault.ErrInvalidCallIndex
	}
}
