package store

import "github.com/covault/covault"

// Move references for all storage types into this package
// for shorter names everywhere.

type ReadOnlyKVStore = covault.ReadOnlyKVStore
type KVStore = covault.KVStore
type SetDeleter = covault.SetDeleter
type Batch = covault.Batch
type Iterator = covault.Iterator
type CacheableKVStore = covault.CacheableKVStore
type KVCacheWrap = covault.KVCacheWrap
type Model = covault.Model
