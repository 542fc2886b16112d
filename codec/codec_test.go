// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec_test

import (
	"bytes"
	"testing"

	"github.com/spacemeshos/go-scale"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/minichain/codec"
	"github.com/bitmark-inc/minichain/fault"
)

// pair - two fixed width fields and a discriminant
type pair struct {
	tag   uint8
	small uint32
	large uint64
}

func (p *pair) EncodeScale(e *scale.Encoder) (int, error) {
	total := 0
	n, err := codec.EncodeIndex(e, p.tag)
	total += n
	if nil != err {
		return total, err
	}
	n, err = codec.EncodeUint32(e, p.small)
	total += n
	if nil != err {
		return total, err
	}
	n, err = codec.EncodeUint64(e, p.large)
	return total + n, err
}

func (p *pair) DecodeScale(d *scale.Decoder) (int, error) {
	total := 0
	tag, n, err := codec.DecodeIndex(d)
	total += n
	if nil != err {
		return total, err
	}
	small, n, err := codec.DecodeUint32(d)
	total += n
	if nil != err {
		return total, err
	}
	large, n, err := codec.DecodeUint64(d)
	total += n
	if nil != err {
		return total, err
	}
	p.tag, p.small, p.large = tag, small, large
	return total, nil
}

func TestEncodeLayout(t *testing.T) {
	data := codec.Encode(pair{tag: 2, small: 0x01020304, large: 5})
	expected := []byte{
		0x02,
		0x04, 0x03, 0x02, 0x01,
		0x05, 0, 0, 0, 0, 0, 0, 0,
	}
	assert.Equal(t, expected, data, "wrong bytes")
}

func TestDecodeRoundTrip(t *testing.T) {
	value := pair{tag: 1, small: 42, large: 1 << 40}
	decoded, err := codec.Decode[pair](codec.Encode(value))
	assert.Nil(t, err, "wrong decode error")
	assert.Equal(t, value, decoded, "wrong value")
}

func TestDecodeTrailingBytes(t *testing.T) {
	data := append(codec.Encode(pair{}), 0xff)
	_, err := codec.Decode[pair](data)
	assert.Equal(t, fault.ErrTrailingBytes, err, "wrong error")
}

func TestDecodeShortInput(t *testing.T) {
	data := codec.Encode(pair{tag: 1, small: 7, large: 9})
	for i := 0; i < len(data); i += 1 {
		_, err := codec.Decode[pair](data[:i])
		assert.NotNil(t, err, "short input of %d bytes decoded", i)
	}
}

func TestFixedWidthHelpers(t *testing.T) {
	buffer := bytes.Buffer{}
	e := scale.NewEncoder(&buffer)
	n, err := codec.EncodeUint32(e, 0xdeadbeef)
	assert.Nil(t, err, "wrong encode error")
	assert.Equal(t, 4, n, "wrong width")

	d := scale.NewDecoder(bytes.NewReader(buffer.Bytes()))
	value, n, err := codec.DecodeUint32(d)
	assert.Nil(t, err, "wrong decode error")
	assert.Equal(t, 4, n, "wrong width")
	assert.Equal(t, uint32(0xdeadbeef), value, "wrong value")
}
