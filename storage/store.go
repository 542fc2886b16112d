// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

// Store - raw key/value byte storage
type Store interface {
	// Get - value of a key, found is false if the key is absent
	Get(key []byte) (value []byte, found bool)

	Set(key []byte, value []byte)
	Clear(key []byte)

	// Map - call f on every committed key with the given prefix,
	// in key order; the key passed to f has the prefix removed
	Map(prefix []byte, f func(key []byte, value []byte) error) error
}

// Transactional - a store whose writes can be grouped
//
// between Begin and Commit/Abort all writes are pending, reads see the
// pending values and other readers of the backing do not
type Transactional interface {
	Store
	Begin() error
	Commit() error
	Abort()
	InUse() bool
}
