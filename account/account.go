// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"strconv"

	"github.com/spacemeshos/go-scale"

	"github.com/bitmark-inc/minichain/codec"
	"github.com/bitmark-inc/minichain/fault"
)

// ID - opaque account identifier
type ID uint32

// String - decimal form
func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// MarshalText - decimal form for JSON output
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText - accept the decimal form
func (id *ID) UnmarshalText(text []byte) error {
	a, err := Parse(string(text))
	if nil != err {
		return err
	}
	*id = a
	return nil
}

// Parse - convert a decimal string to an account
func Parse(s string) (ID, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if nil != err {
		return 0, fault.ErrInvalidAccount
	}
	return ID(n), nil
}

// EncodeScale - 4 byte little endian
func (id *ID) EncodeScale(e *scale.Encoder) (int, error) {
	return codec.EncodeUint32(e, uint32(*id))
}

// DecodeScale - 4 byte little endian
func (id *ID) DecodeScale(d *scale.Decoder) (int, error) {
	n, total, err := codec.DecodeUint32(d)
	if nil != err {
		return total, err
	}
	*id = ID(n)
	return total, nil
}
