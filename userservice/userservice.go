/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package userservice provides an in-memory registry of users keyed by id.
package userservice

import (
	"fmt"
	"log/slog"
	
	"github.com/suparena/samplekit/datastore"
	"github.com/suparena/samplekit/logging"
)

// UserService maps user ids to display names.
// It is safe for concurrent use.
type UserService struct {
	users  datastore.DataStore[string]
	logger *slog.Logger
}

// Option configures a UserService
type Option func(*UserService)

// WithLogger sets the logger used for debug records of mutations.
// A nil logger leaves the default in place.
func WithLogger(logger *slog.Logger) Option {
	return func(s *UserService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithUsers seeds the registry with the given id to name entries
func WithUsers(users map[string]string) Option {
	return func(s *UserService) {
		for id, name := range users {
			s.users.Put(id, name)
		}
	}
}

// New creates an empty UserService
func New(opts ...Option) *UserService {
	s := &UserService{
		users:  datastore.NewMemory[string]().WithTypeName("user"),
		logger: logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddUser stores name under id, replacing any existing entry
func (s *UserService) AddUser(id, name string) {
	s.users.Put(id, name)
	s.logger.Debug("user added", "id", id)
}

// GetUser returns the name stored for id
func (s *UserService) GetUser(id string) (string, bool) {
	name, err := s.users.GetOne(id)
	if err != nil {
		return "", false
	}
	return *name, true
}

// UserExists reports whether id is registered
func (s *UserService) UserExists(id string) bool {
	return s.users.Has(id)
}

// GetUserCount returns the number of registered ids
func (s *UserService) GetUserCount() int {
	return s.users.Count()
}

// Users returns a copy of every id to name entry
func (s *UserService) Users() map[string]string {
	return s.users.GetData()
}

// ClearUsers removes every entry
func (s *UserService) ClearUsers() {
	removed := s.users.Count()
	s.users.Clear()
	s.logger.Debug("users cleared", "removed", removed)
}

// FormatGreeting greets the user registered under id, or reports that no
// such user exists. prefix is ignored.
func (s *UserService) FormatGreeting(id, prefix string) string {
	name, ok := s.GetUser(id)
	if !ok {
		return "User not found"
	}
	return fmt.Sprintf("Hello, %s!", name)
}
