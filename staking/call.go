// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package staking

import (
	"bytes"

	"github.com/spacemeshos/go-scale"

	"github.com/bitmark-inc/minichain/codec"
	"github.com/bitmark-inc/minichain/fault"
)

// BondIndex - index of the encoded Bond call
const BondIndex = 0

// Call - currently only Bond
type Call interface {
	callIndex() uint8
}

// Bond - reserve funds of the sender
type Bond[B any] struct {
	Amount B
}

func (Bond[B]) callIndex() uint8 { return BondIndex }

// EncodeCall - index byte followed by the amount
func EncodeCall[B any, PB codec.Pointer[B]](call Call) ([]byte, error) {
	bond, ok := call.(Bond[B])
	if !ok {
		return nil, fault.ErrUnknownCall
	}

	buffer := bytes.Buffer{}
	e := scale.NewEncoder(&buffer)
	if _, err := codec.EncodeIndex(e, bond.callIndex()); nil != err {
		return nil, err
	}
	if _, err := PB(&bond.Amount).EncodeScale(e); nil != err {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// DecodeCall - rebuild a call from EncodeCall's output
func DecodeCall[B any, PB codec.Pointer[B]](data []byte) (Call, error) {
	d := scale.NewDecoder(bytes.NewReader(data))

	index, total, err := codec.DecodeIndex(d)
	if nil != err {
		return nil, err
	}
	if BondIndex != index {
		return nil, fault.ErrInvalidCallIndex
	}

	bond := Bond[B]{}
	n, err := PB(&bond.Amount).DecodeScale(d)
	if nil != err {
		return nil, err
	}
	if total+n != len(data) {
		return nil, fault.ErrTrailingBytes
	}
	return bond, nil
}
