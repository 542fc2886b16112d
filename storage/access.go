// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/minichain/fault"
)

// Access - transactional store over a backing
type Access struct {
	sync.Mutex
	inUse   bool
	backing backing
	batch   *leveldb.Batch
	cache   Cache
}

var _ Transactional = (*Access)(nil)

func newAccess(b backing, c Cache) *Access {
	return &Access{
		inUse:   false,
		backing: b,
		batch:   new(leveldb.Batch),
		cache:   c,
	}
}

// Begin - start grouping writes
func (d *Access) Begin() error {
	d.Lock()
	defer d.Unlock()

	if d.inUse {
		return fault.ErrTransactionInUse
	}

	d.inUse = true
	return nil
}

// Commit - atomically write all pending data
//
// the transaction is finished even if the write fails
func (d *Access) Commit() error {
	d.Lock()
	defer d.Unlock()

	if !d.inUse {
		return fault.ErrTransactionNotInUse
	}

	err := d.flush()
	d.inUse = false
	return err
}

// Abort - discard all pending data
func (d *Access) Abort() {
	d.Lock()
	defer d.Unlock()

	d.reset()
	d.inUse = false
}

// InUse - true between Begin and Commit/Abort
func (d *Access) InUse() bool {
	d.Lock()
	defer d.Unlock()

	return d.inUse
}

// DumpTx - raw form of the pending writes
func (d *Access) DumpTx() []byte {
	d.Lock()
	defer d.Unlock()

	return d.batch.Dump()
}

// Set - store a key/value pair
//
// outside a transaction the write is immediate
func (d *Access) Set(key []byte, value []byte) {
	d.Lock()
	defer d.Unlock()

	v := make([]byte, len(value))
	copy(v, value)

	d.cache.Set(dbPut, string(key), v)
	d.batch.Put(key, v)
	if !d.inUse {
		fault.PanicIfError("storage.Set", d.flush())
	}
}

// Clear - remove a key
//
// outside a transaction the write is immediate
func (d *Access) Clear(key []byte) {
	d.Lock()
	defer d.Unlock()

	d.cache.Set(dbDelete, string(key), nil)
	d.batch.Delete(key)
	if !d.inUse {
		fault.PanicIfError("storage.Clear", d.flush())
	}
}

// Get - read a value, pending writes first
func (d *Access) Get(key []byte) ([]byte, bool) {
	d.Lock()
	defer d.Unlock()

	if value, op, found := d.cache.Get(string(key)); found {
		if dbDelete == op {
			return nil, false
		}
		result := make([]byte, len(value))
		copy(result, value)
		return result, true
	}

	if nil == d.backing {
		return nil, false
	}

	value, err := d.backing.get(key)
	if leveldb.ErrNotFound == err {
		return nil, false
	}
	fault.PanicIfError("storage.Get", err)
	return value, true
}

// Close - release the backing, pending writes are lost
func (d *Access) Close() error {
	d.Lock()
	defer d.Unlock()

	d.reset()
	d.inUse = false
	if nil == d.backing {
		return nil
	}
	err := d.backing.close()
	d.backing = nil
	return err
}

// write the batch and forget it; the caller holds the lock
func (d *Access) flush() error {
	if nil == d.backing {
		d.reset()
		return fault.ErrDatabaseIsNotSet
	}
	err := d.backing.write(d.batch)
	d.reset()
	return err
}

func (d *Access) reset() {
	d.batch.Reset()
	d.cache.Clear()
}
