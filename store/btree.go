package store

import (
	"bytes"

	"github.com/google/btree"
	"github.com/iov-one/mswallet/errors"
)

// MemStore returns an empty in-memory store. Nothing is persisted; data
// lives until the store is dropped.
func MemStore() CacheableKVStore {
	return newCacheWrap(emptyStore{}, discardBatch{}, nil)
}

// Wrap returns a cache wrap over kv. Stores that can cache themselves are
// asked to; any other store gets a btree layer that replays its writes on
// Write.
func Wrap(kv KVStore) KVCacheWrap {
	if c, ok := kv.(CacheableKVStore); ok {
		return c.CacheWrap()
	}
	return newCacheWrap(kv, newNonAtomicBatch(kv), nil)
}

// emptyStore is the read side of the memstore root layer.
type emptyStore struct{}

func (emptyStore) Get(key []byte) ([]byte, error) { return nil, nil }
func (emptyStore) Has(key []byte) (bool, error)   { return false, nil }

// discardBatch is the write side of the memstore root layer, which has
// nothing below it to flush to.
type discardBatch struct{}

func (discardBatch) Set(key, value []byte) error { return nil }
func (discardBatch) Delete(key []byte) error     { return nil }
func (discardBatch) Write() error                { return nil }

// cacheWrap keeps pending writes in a btree, on top of a read only parent.
// Every write is also queued in batch, which Write flushes to the parent.
type cacheWrap struct {
	tree   *btree.BTree
	free   *btree.FreeList
	parent ReadOnlyKVStore
	batch  Batch
}

var _ KVCacheWrap = cacheWrap{}

// newCacheWrap shares free between all layers of a stack when given.
func newCacheWrap(parent ReadOnlyKVStore, batch Batch, free *btree.FreeList) cacheWrap {
	if free == nil {
		free = btree.NewFreeList(btree.DefaultFreeListSize)
	}
	return cacheWrap{
		tree:   btree.NewWithFreeList(2, free),
		free:   free,
		parent: parent,
		batch:  batch,
	}
}

// CacheWrap stacks another layer that flushes into this one.
func (c cacheWrap) CacheWrap() KVCacheWrap {
	return newCacheWrap(c, newNonAtomicBatch(c), c.free)
}

// Write flushes the pending writes to the parent and empties the layer.
func (c cacheWrap) Write() error {
	err := c.batch.Write()
	c.Discard()
	return err
}

// Discard drops the pending writes. The queued batch is not flushed.
func (c cacheWrap) Discard() {
	for c.tree.DeleteMin() != nil {
	}
}

func (c cacheWrap) Set(key, value []byte) error {
	c.tree.ReplaceOrInsert(setItem{item{key}, value})
	return c.batch.Set(key, value)
}

func (c cacheWrap) Delete(key []byte) error {
	c.tree.ReplaceOrInsert(deletedItem{item{key}})
	return c.batch.Delete(key)
}

func (c cacheWrap) Get(key []byte) ([]byte, error) {
	switch it := c.tree.Get(item{key}).(type) {
	case nil:
		return c.parent.Get(key)
	case setItem:
		return it.value, nil
	case deletedItem:
		return nil, nil
	default:
		return nil, errors.Wrapf(errors.ErrDatabase, "unexpected btree item %T", it)
	}
}

func (c cacheWrap) Has(key []byte) (bool, error) {
	switch it := c.tree.Get(item{key}).(type) {
	case nil:
		return c.parent.Has(key)
	case setItem:
		return true, nil
	case deletedItem:
		return false, nil
	default:
		return false, errors.Wrapf(errors.ErrDatabase, "unexpected btree item %T", it)
	}
}

// keyer is implemented by every value stored in the btree.
type keyer interface {
	Key() []byte
}

// item orders btree entries by key. On its own it is used as a lookup key.
type item struct {
	key []byte
}

var _ btree.Item = item{}

func (i item) Key() []byte { return i.key }

// Less panics if other does not implement keyer.
func (i item) Less(other btree.Item) bool {
	return bytes.Compare(i.key, other.(keyer).Key()) < 0
}

type setItem struct {
	item
	value []byte
}

// deletedItem hides the parent value of its key.
type deletedItem struct {
	item
}
