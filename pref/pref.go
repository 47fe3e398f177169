// Package pref persists each registry user's chosen interface language.
package pref

import (
	"context"
	"sync"
)

// The registry's user variants. Every variant carries a language preference
// through the same store; the role is just part of the key, so adding a new
// variant never needs new dispatch code.
const (
	RoleAdmin             = "admin"
	RoleBarangayPresident = "barangay_president"
	RolePWDMember         = "pwd_member"
)

// Identity names a registry account: the role discriminant plus the record
// id within that role's table.
type Identity struct {
	Role string
	ID   string
}

// Valid reports whether the identity carries both parts.
func (id Identity) Valid() bool {
	return id.Role != "" && id.ID != ""
}

// Store reads and writes a user's language preference. Get returns an empty
// locale, not an error, when no preference has been saved.
type Store interface {
	Get(ctx context.Context, id Identity) (string, error)
	Set(ctx context.Context, id Identity, locale string) error
}

// MemoryStore keeps preferences in process memory. Suitable for tests and
// single-instance deployments without redis; preferences do not survive a
// restart.
type MemoryStore struct {
	mu    sync.RWMutex
	prefs map[Identity]string
}

// NewMemoryStore creates an empty in-memory preference store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{prefs: make(map[Identity]string)}
}

// Get returns the stored locale for id, or empty when none is saved.
func (s *MemoryStore) Get(ctx context.Context, id Identity) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prefs[id], nil
}

// Set stores the locale for id.
func (s *MemoryStore) Set(ctx context.Context, id Identity, locale string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs[id] = locale
	return nil
}

// Verify MemoryStore implements Store
var _ Store = (*MemoryStore)(nil)
