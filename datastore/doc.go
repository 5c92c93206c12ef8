/*
Package datastore defines the keyed storage contract used by samplekit and an
in-memory implementation of it.

	type DataStore[T any] interface {
	    GetOne(key string) (*T, error)
	    Has(key string) bool
	    Put(key string, entity T)
	    Count() int
	    Clear()
	    GetData() map[string]T
	}

Memory[T] keeps entries in a map guarded by a sync.RWMutex, so a single
instance may be shared between goroutines. Put has upsert semantics and
accepts any key, including the empty string. GetOne reports an absent key
with an errors.NotFoundError. GetData returns a copy that callers may modify
freely.
*/
package datastore
