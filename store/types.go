package store

import "github.com/iov-one/mswallet"

// Aliases so the store package can be used without importing the root
// package everywhere.
type (
	ReadOnlyKVStore  = mswallet.ReadOnlyKVStore
	SetDeleter       = mswallet.SetDeleter
	KVStore          = mswallet.KVStore
	CacheableKVStore = mswallet.CacheableKVStore
	KVCacheWrap      = mswallet.KVCacheWrap
)
