// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/minichain/fault"
)

func TestOpenPersists(t *testing.T) {
	database := filepath.Join(t.TempDir(), "test.leveldb")

	da, err := Open(database, ReadWrite)
	assert.Nil(t, err, "open error")

	_ = da.Begin()
	da.Set([]byte(defaultKey), defaultValue)
	err = da.Commit()
	assert.Nil(t, err, "commit error")
	assert.Nil(t, da.Close(), "close error")

	da, err = Open(database, ReadOnly)
	assert.Nil(t, err, "reopen error")
	defer da.Close()

	actual, found := da.Get([]byte(defaultKey))
	assert.True(t, found, "value not persisted")
	assert.Equal(t, defaultValue, actual, "wrong value")

	// the version record is outside every table
	count := 0
	_ = da.Map([]byte("k"), func(key []byte, value []byte) error {
		count += 1
		assert.Equal(t, []byte("ey"), key, "prefix not stripped")
		return nil
	})
	assert.Equal(t, 1, count, "wrong number of items")
}

func TestOpenWritesVersion(t *testing.T) {
	database := filepath.Join(t.TempDir(), "test.leveldb")

	da, err := Open(database, ReadWrite)
	assert.Nil(t, err, "open error")
	_ = da.Close()

	db, err := leveldb.OpenFile(database, nil)
	assert.Nil(t, err, "leveldb open error")
	defer db.Close()

	version, err := getVersion(db)
	assert.Nil(t, err, "version error")
	assert.Equal(t, currentDBVersion, version, "wrong version")
}

func TestOpenRefusesNewerVersion(t *testing.T) {
	database := filepath.Join(t.TempDir(), "test.leveldb")

	db, err := leveldb.OpenFile(database, nil)
	assert.Nil(t, err, "leveldb open error")
	newer := make([]byte, versionLength)
	binary.BigEndian.PutUint32(newer, currentDBVersion+1)
	_ = db.Put(versionKey, newer, nil)
	_ = db.Close()

	_, err = Open(database, ReadWrite)
	assert.Equal(t, fault.ErrDatabaseNewerVersion, err, "newer version must be refused")
}

func TestOpenRefusesBadVersionLength(t *testing.T) {
	database := filepath.Join(t.TempDir(), "test.leveldb")

	db, err := leveldb.OpenFile(database, nil)
	assert.Nil(t, err, "leveldb open error")
	_ = db.Put(versionKey, []byte{1}, nil)
	_ = db.Close()

	_, err = Open(database, ReadWrite)
	assert.Equal(t, fault.ErrDatabaseVersionLength, err, "short version must be refused")
}

func TestOpenReadOnlyMissing(t *testing.T) {
	database := filepath.Join(t.TempDir(), "missing.leveldb")

	_, err := Open(database, ReadOnly)
	assert.NotNil(t, err, "read only open of missing database must fail")
}
