// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/bitmark-inc/minichain/codec"
)

// Cell - a single typed value stored under its name
//
// the raw key is exactly the bytes of the name
type Cell[V any, PV codec.Pointer[V]] struct {
	store Store
	key   []byte
}

// NewCell - typed access to the value called name
func NewCell[V any, PV codec.Pointer[V]](store Store, name string) *Cell[V, PV] {
	return &Cell[V, PV]{
		store: store,
		key:   []byte(name),
	}
}

// Key - the raw storage key
func (c *Cell[V, PV]) Key() []byte {
	return append([]byte(nil), c.key...)
}

// Get - the stored value
//
// a value that cannot be decoded is reported as absent
func (c *Cell[V, PV]) Get() (V, bool) {
	return get[V, PV](c.store, c.key)
}

// Exists - true if Get would find a value
func (c *Cell[V, PV]) Exists() bool {
	_, found := c.Get()
	return found
}

// Set - replace the stored value
func (c *Cell[V, PV]) Set(value V) {
	c.store.Set(c.key, codec.Encode[V, PV](value))
}

// Clear - remove the stored value
func (c *Cell[V, PV]) Clear() {
	c.store.Clear(c.key)
}

// Mutate - read, modify and write back
//
// f receives the current value and whether it exists; if f returns
// false as its second result the value is cleared
func (c *Cell[V, PV]) Mutate(f func(value V, found bool) (V, bool)) {
	value, keep := f(c.Get())
	if keep {
		c.Set(value)
	} else {
		c.Clear()
	}
}

// shared by cells and tables
func get[V any, PV codec.Pointer[V]](store Store, key []byte) (V, bool) {
	var value V
	data, found := store.Get(key)
	if !found {
		return value, false
	}
	value, err := codec.Decode[V, PV](data)
	if nil != err {
		var zero V
		return zero, false
	}
	return value, true
}
