/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

type DataStore[T any] interface {
	GetOne(key string) (*T, error)

	Has(key string) bool

	Put(key string, entity T)

	Count() int

	Clear()

	GetData() map[string]T
}
