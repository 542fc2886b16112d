// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/comparer"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	"github.com/syndtr/goleveldb/leveldb/memdb"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"
)

// the committed data under an Access
//
// get returns leveldb.ErrNotFound for an absent key
type backing interface {
	get([]byte) ([]byte, error)
	write(*leveldb.Batch) error
	iterator(*ldb_util.Range) iterator.Iterator
	close() error
}

// on-disk LevelDB
type diskBacking struct {
	db *leveldb.DB
}

func (b *diskBacking) get(key []byte) ([]byte, error) {
	return b.db.Get(key, nil)
}

func (b *diskBacking) write(batch *leveldb.Batch) error {
	return b.db.Write(batch, nil)
}

func (b *diskBacking) iterator(searchRange *ldb_util.Range) iterator.Iterator {
	return b.db.NewIterator(searchRange, nil)
}

func (b *diskBacking) close() error {
	return b.db.Close()
}

// process memory only, sorted like the disk version
type memoryBacking struct {
	db *memdb.DB
}

const memoryInitialCapacity = 64 * 1024

func newMemoryBacking() *memoryBacking {
	return &memoryBacking{
		db: memdb.New(comparer.DefaultComparer, memoryInitialCapacity),
	}
}

func (b *memoryBacking) get(key []byte) ([]byte, error) {
	value, err := b.db.Get(key)
	if nil != err {
		return nil, err
	}
	result := make([]byte, len(value))
	copy(result, value)
	return result, nil
}

// replays a batch into the memory database, stopping at the first error
type memoryReplay struct {
	db  *memdb.DB
	err error
}

func (r *memoryReplay) Put(key []byte, value []byte) {
	if nil == r.err {
		r.err = r.db.Put(key, value)
	}
}

// deleting an absent key is not an error
func (r *memoryReplay) Delete(key []byte) {
	if nil != r.err {
		return
	}
	if err := r.db.Delete(key); nil != err && leveldb.ErrNotFound != err {
		r.err = err
	}
}

func (b *memoryBacking) write(batch *leveldb.Batch) error {
	r := &memoryReplay{db: b.db}
	if err := batch.Replay(r); nil != err {
		return err
	}
	return r.err
}

func (b *memoryBacking) iterator(searchRange *ldb_util.Range) iterator.Iterator {
	return b.db.NewIterator(searchRange)
}

func (b *memoryBacking) close() error {
	b.db.Reset()
	return nil
}
