// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteThenRead(t *testing.T) {
	cache := newCache()

	key := "test"
	expected := []byte{'a', 'b', 'c', 'd'}

	actual, _, found := cache.Get(key)
	assert.False(t, found, "key %s already exists with value %v", key, actual)

	cache.Set(dbPut, key, expected)
	actual, op, found := cache.Get(key)

	assert.True(t, found, "key %s not found", key)
	assert.Equal(t, dbPut, op, "wrong operation")
	assert.Equal(t, expected, actual, "wrong value")
}

func TestClear(t *testing.T) {
	cache := newCache()

	key := "test"
	data := []byte{'a', 'b', 'c', 'd'}

	cache.Set(dbPut, key, data)
	cache.Clear()

	_, _, found := cache.Get(key)
	assert.False(t, found, "Clear not working, expect cache is empty")
}

func TestReadDeleteOperation(t *testing.T) {
	cache := newCache()

	key := "test"
	data := []byte{'a', 'b', 'c', 'd'}

	cache.Set(dbPut, key, data)
	cache.Set(dbDelete, key, nil)

	_, op, found := cache.Get(key)
	assert.True(t, found, "pending delete must be found")
	assert.Equal(t, dbDelete, op, "delete operation should replace put")
}
