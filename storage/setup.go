// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/minichain/fault"
)

// for database version
//
// the leading zero byte keeps it apart from all cell and table names
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const (
	currentDBVersion = 0x100
	versionLength    = 4
)

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// NewMemory - an empty store that lives only as long as the process
func NewMemory() *Access {
	return newAccess(newMemoryBacking(), newCache())
}

// Open - open or create an on-disk store
//
// a newer database version is refused; an empty database is tagged
// with the current version unless opened read only
func Open(database string, readOnly bool) (*Access, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(database, opt)
	if nil != err {
		return nil, err
	}

	version, err := getVersion(db)
	if nil != err {
		db.Close()
		return nil, err
	}

	switch {
	case version > currentDBVersion:
		logger.Criticalf("database version: %d > current version: %d", version, currentDBVersion)
		db.Close()
		return nil, fault.ErrDatabaseNewerVersion

	case 0 == version && !readOnly:
		// database was empty so tag as current version
		if err := putVersion(db, currentDBVersion); nil != err {
			db.Close()
			return nil, err
		}
	}

	return newAccess(&diskBacking{db: db}, newCache()), nil
}

// return 0 if no version record
func getVersion(db *leveldb.DB) (int, error) {
	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return 0, nil
	} else if nil != err {
		return 0, err
	}

	if versionLength != len(versionValue) {
		return 0, fault.ErrDatabaseVersionLength
	}

	return int(binary.BigEndian.Uint32(versionValue)), nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, versionLength)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}
