// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package codec - deterministic binary form of stored values
//
// values are SCALE encoded:
//
//   integers      = fixed width little endian (u32: 4 bytes, u64: 8 bytes)
//   structures    = concatenation of the fields in declaration order
//   enumerations  = index byte ++ variant fields
package codec
