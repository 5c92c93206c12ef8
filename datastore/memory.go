/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"sync"
	
	"github.com/suparena/samplekit/errors"
)

// Memory is an in-memory implementation of DataStore[T]
type Memory[T any] struct {
	mu       sync.RWMutex
	data     map[string]T
	typeName string
}

// NewMemory creates a new empty Memory store
func NewMemory[T any]() *Memory[T] {
	return &Memory[T]{
		data:     make(map[string]T),
		typeName: "entry",
	}
}

// WithTypeName sets the entity name reported in not found errors
func (m *Memory[T]) WithTypeName(name string) *Memory[T] {
	m.typeName = name
	return m
}

// GetOne retrieves an entity by key
func (m *Memory[T]) GetOne(key string) (*T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	
	if entity, exists := m.data[key]; exists {
		return &entity, nil
	}
	return nil, errors.NewNotFoundError(m.typeName, key)
}

// Has reports whether key is present
func (m *Memory[T]) Has(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	
	_, exists := m.data[key]
	return exists
}

// Put stores an entity under key, replacing any previous value
func (m *Memory[T]) Put(key string, entity T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = entity
}

// Count returns the number of stored entities
func (m *Memory[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

// Clear removes all data
func (m *Memory[T]) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make(map[string]T)
}

// GetData returns a copy of the internal data map
func (m *Memory[T]) GetData() map[string]T {
	m.mu.RLock()
	defer m.mu.RUnlock()
	
	result := make(map[string]T, len(m.data))
	for k, v := range m.data {
		result[k] = v
	}
	return result
}

var _ DataStore[string] = (*Memory[string])(nil)
