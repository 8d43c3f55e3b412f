package mswallet

// ReadOnlyKVStore reads single keys. Get returns nil for a missing key.
type ReadOnlyKVStore interface {
	Get(key []byte) ([]byte, error)
	Has(key []byte) (bool, error)
}

// SetDeleter writes single keys. Both stores and batches implement it.
type SetDeleter interface {
	Set(key, value []byte) error
	Delete(key []byte) error
}

// KVStore is the storage every wallet operation runs against.
type KVStore interface {
	ReadOnlyKVStore
	SetDeleter
}

// CacheableKVStore can open a cache wrap over itself.
//
// Every wallet call runs on a cache wrap, so a failed call leaves no partial
// state behind.
type CacheableKVStore interface {
	KVStore
	CacheWrap() KVCacheWrap
}

// KVCacheWrap holds writes on top of its parent store until Write applies
// them or Discard drops them. Reads see the pending writes. A cache wrap
// can itself be wrapped again.
type KVCacheWrap interface {
	CacheableKVStore
	Write() error
	Discard()
}
