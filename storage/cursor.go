// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"
)

// Map - run a function on all committed elements having the prefix
//
// pending writes of an open transaction are not visible here
func (d *Access) Map(prefix []byte, f func(key []byte, value []byte) error) error {
	d.Lock()
	b := d.backing
	d.Unlock()

	if nil == b {
		return nil
	}

	searchRange := ldb_util.BytesPrefix(prefix)
	iter := b.iterator(searchRange)

	var err error
iterating:
	for iter.Next() {

		// contents of the returned slice must not be modified, and are
		// only valid until the next call to Next
		key := iter.Key()
		value := iter.Value()

		dataKey := make([]byte, len(key)-len(prefix)) // strip the prefix
		copy(dataKey, key[len(prefix):])              // ...

		dataValue := make([]byte, len(value))
		copy(dataValue, value)

		err = f(dataKey, dataValue)
		if nil != err {
			break iterating
		}
	}
	iter.Release()
	if nil == err {
		err = iter.Error()
	}
	return err
}
