// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/bitmark-inc/minichain/codec"
)

// separates a table name from the encoded key
const tableSeparator = '_'

// Table - typed map from K to V
//
// raw key = name ++ "_" ++ encode(key)
type Table[K any, V any, PK codec.Pointer[K], PV codec.Pointer[V]] struct {
	store  Store
	prefix []byte
}

// NewTable - typed access to the map called name
func NewTable[K any, V any, PK codec.Pointer[K], PV codec.Pointer[V]](store Store, name string) *Table[K, V, PK, PV] {
	prefix := make([]byte, 0, len(name)+1)
	prefix = append(prefix, name...)
	prefix = append(prefix, tableSeparator)
	return &Table[K, V, PK, PV]{
		store:  store,
		prefix: prefix,
	}
}

// Key - the raw storage key for an item
func (t *Table[K, V, PK, PV]) Key(key K) []byte {
	encoded := codec.Encode[K, PK](key)
	rawKey := make([]byte, 0, len(t.prefix)+len(encoded))
	rawKey = append(rawKey, t.prefix...)
	return append(rawKey, encoded...)
}

// Get - the value for a key
//
// a value that cannot be decoded is reported as absent
func (t *Table[K, V, PK, PV]) Get(key K) (V, bool) {
	return get[V, PV](t.store, t.Key(key))
}

// Exists - true if Get would find a value
func (t *Table[K, V, PK, PV]) Exists(key K) bool {
	_, found := t.Get(key)
	return found
}

// Set - replace the value for a key
func (t *Table[K, V, PK, PV]) Set(key K, value V) {
	t.store.Set(t.Key(key), codec.Encode[V, PV](value))
}

// Clear - remove a key
func (t *Table[K, V, PK, PV]) Clear(key K) {
	t.store.Clear(t.Key(key))
}

// Mutate - read, modify and write back one item
//
// f receives the current value and whether it exists; if f returns
// false as its second result the item is cleared
func (t *Table[K, V, PK, PV]) Mutate(key K, f func(value V, found bool) (V, bool)) {
	value, keep := f(t.Get(key))
	if keep {
		t.Set(key, value)
	} else {
		t.Clear(key)
	}
}

// Map - call f for every committed item in key byte order
//
// items whose key or value cannot be decoded are skipped
func (t *Table[K, V, PK, PV]) Map(f func(key K, value V) error) error {
	return t.store.Map(t.prefix, func(rawKey []byte, data []byte) error {
		key, err := codec.Decode[K, PK](rawKey)
		if nil != err {
			return nil
		}
		value, err := codec.Decode[V, PV](data)
		if nil != err {
			return nil
		}
		return f(key, value)
	})
}
