// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - the key/value state of the runtime
//
// Two layers:
//
// 1. Access: raw byte keys and values over either a LevelDB database
//    on disk or a LevelDB memdb in memory.  Writes between Begin and
//    Commit are held in a leveldb.Batch and written atomically; a
//    go-cache overlay lets reads see them first.
//
// 2. Cell and Table: typed values over any Store, encoded by the
//    codec package on every write and decoded on every read.
//
// Notes:
// 1. ++           = concatenation of byte data
// 2. account      = 4 byte little endian
// 3. balance      = 8 byte little endian (runtime binding)
//
// Keys:
//
//   TotalIssuance              - cell: total of all account balances
//                                data: balance
//   BalancesMap ++ _ ++ account
//                              - table: per account balance
//                                data: free balance ++ reserved balance
//
// Database:
//
//   0x00 ++ VERSION            - database version (big endian uint32)
package storage
