// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package currency

import (
	"bytes"

	"github.com/spacemeshos/go-scale"

	"github.com/bitmark-inc/minichain/account"
	"github.com/bitmark-inc/minichain/codec"
	"github.com/bitmark-inc/minichain/fault"
)

// indexes of the encoded call variants
const (
	MintIndex        = 0
	TransferIndex    = 1
	TransferAllIndex = 2
)

// Call - one of Mint, Transfer or TransferAll
type Call interface {
	callIndex() uint8
}

// Mint - create new funds in dest, only the minter may send this
type Mint[B any] struct {
	Dest   account.ID
	Amount B
}

// Transfer - move free funds from the sender to dest
type Transfer[B any] struct {
	Dest   account.ID
	Amount B
}

// TransferAll - move the sender's entire free balance to dest
type TransferAll[B any] struct {
	Dest account.ID
}

func (Mint[B]) callIndex() uint8        { return MintIndex }
func (Transfer[B]) callIndex() uint8    { return TransferIndex }
func (TransferAll[B]) callIndex() uint8 { return TransferAllIndex }

// EncodeCall - index byte followed by the call's fields
func EncodeCall[B any, PB codec.Pointer[B]](call Call) ([]byte, error) {
	buffer := bytes.Buffer{}
	e := scale.NewEncoder(&buffer)

	var err error
	switch c := call.(type) {
	case Mint[B]:
		err = encodeFields[B, PB](e, c.callIndex(), c.Dest, &c.Amount)
	case Transfer[B]:
		err = encodeFields[B, PB](e, c.callIndex(), c.Dest, &c.Amount)
	case TransferAll[B]:
		err = encodeFields[B, PB](e, c.callIndex(), c.Dest, nil)
	default:
		return nil, fault.ErrUnknownCall
	}
	if nil != err {
		return nil, err
	}
	return buffer.Bytes(), nil
}

func encodeFields[B any, PB codec.Pointer[B]](e *scale.Encoder, index uint8, dest account.ID, amount *B) error {
	if _, err := codec.EncodeIndex(e, index); nil != err {
		return err
	}
	if _, err := dest.EncodeScale(e); nil != err {
		return err
	}
	if nil == amount {
		return nil
	}
	_, err := PB(amount).EncodeScale(e)
	return err
}

// DecodeCall - rebuild a call from EncodeCall's output
//
// the whole buffer must be consumed
func DecodeCall[B any, PB codec.Pointer[B]](data []byte) (Call, error) {
	d := scale.NewDecoder(bytes.NewReader(data))

	index, total, err := codec.DecodeIndex(d)
	if nil != err {
		return nil, err
	}
	if index > TransferAllIndex {
		return nil, fault.ErrInvalidCallIndex
	}

	var dest account.ID
	n, err := dest.DecodeScale(d)
	total += n
	if nil != err {
		return nil, err
	}

	var call Call
	switch index {
	case MintIndex, TransferIndex:
		var amount B
		n, err := PB(&amount).DecodeScale(d)
		total += n
		if nil != err {
			return nil, err
		}
		if MintIndex == index {
			call = Mint[B]{Dest: dest, Amount: amount}
		} else {
			call = Transfer[B]{Dest: dest, Amount: amount}
		}
	default:
		call = TransferAll[B]{Dest: dest}
	}

	if total != len(data) {
		return nil, fault.ErrTrailingBytes
	}
	return call, nil
}
