// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec

import (
	"bytes"
	"encoding/binary"

	"github.com/spacemeshos/go-scale"

	"github.com/bitmark-inc/minichain/fault"
)

// Pointer - constraint for a value type T whose pointer can be
// written to and read from a SCALE stream
type Pointer[T any] interface {
	*T
	scale.Encodable
	scale.Decodable
}

// Encode - deterministic byte form of a value
//
// panics if the value's encoder fails, which can only happen if the
// type's EncodeScale is broken
func Encode[T any, PT Pointer[T]](value T) []byte {
	buffer := bytes.Buffer{}
	_, err := PT(&value).EncodeScale(scale.NewEncoder(&buffer))
	fault.PanicIfError("codec.Encode", err)
	return buffer.Bytes()
}

// Decode - rebuild a value from its encoded form
//
// the whole buffer must be consumed
func Decode[T any, PT Pointer[T]](data []byte) (T, error) {
	var value T
	n, err := PT(&value).DecodeScale(scale.NewDecoder(bytes.NewReader(data)))
	if nil != err {
		return value, err
	}
	if n != len(data) {
		return value, fault.ErrTrailingBytes
	}
	return value, nil
}

// EncodeUint32 - fixed width little endian
func EncodeUint32(e *scale.Encoder, value uint32) (int, error) {
	buffer := [4]byte{}
	binary.LittleEndian.PutUint32(buffer[:], value)
	return scale.EncodeByteArray(e, buffer[:])
}

// DecodeUint32 - fixed width little endian
func DecodeUint32(d *scale.Decoder) (uint32, int, error) {
	buffer := [4]byte{}
	n, err := scale.DecodeByteArray(d, buffer[:])
	if nil != err {
		return 0, n, err
	}
	return binary.LittleEndian.Uint32(buffer[:]), n, nil
}

// EncodeUint64 - fixed width little endian
func EncodeUint64(e *scale.Encoder, value uint64) (int, error) {
	buffer := [8]byte{}
	binary.LittleEndian.PutUint64(buffer[:], value)
	return scale.EncodeByteArray(e, buffer[:])
}

// DecodeUint64 - fixed width little endian
func DecodeUint64(d *scale.Decoder) (uint64, int, error) {
	buffer := [8]byte{}
	n, err := scale.DecodeByteArray(d, buffer[:])
	if nil != err {
		return 0, n, err
	}
	return binary.LittleEndian.Uint64(buffer[:]), n, nil
}

// EncodeIndex - single byte enumeration discriminant
func EncodeIndex(e *scale.Encoder, index uint8) (int, error) {
	return scale.EncodeByteArray(e, []byte{index})
}

// DecodeIndex - single byte enumeration discriminant
func DecodeIndex(d *scale.Decoder) (uint8, int, error) {
	buffer := [1]byte{}
	n, err := scale.DecodeByteArray(d, buffer[:])
	if nil != err {
		return 0, n, err
	}
	return buffer[0], n, nil
}
