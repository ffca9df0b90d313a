// Copyright (c) 2026 ToeiRei
// Vaultmaster - master-password gated credential vault
// This source code is licensed under the MIT license found in the LICENSE file.

package vault

import (
	"fmt"

	"github.com/toeirei/vaultmaster/internal/logging"
	"github.com/toeirei/vaultmaster/internal/model"
	"github.com/toeirei/vaultmaster/internal/security"
	"github.com/toeirei/vaultmaster/internal/store"
)

// Session composes the auth manager and the store into the single object UI
// layers talk to. It is a two-state machine (locked/unlocked) owning the
// in-memory entry sequence while unlocked. Every mutation persists
// synchronously through the store before it is committed to memory; a failed
// persist leaves both memory and disk unchanged.
//
// A Session is not safe for concurrent use. The vault is a single-user,
// single-process tool; one interactive caller drives one session.
type Session struct {
	store *store.Store
	auth  *Manager

	// defaultCategory is assigned to added entries without a category.
	defaultCategory string

	authenticated bool
	entries       []model.VaultEntry
}

// NewSession returns a locked session over the given data directory store.
func NewSession(st *store.Store, defaultCategory string) *Session {
	if defaultCategory == "" {
		defaultCategory = "General"
	}
	return &Session{
		store:           st,
		auth:            NewManager(st),
		defaultCategory: defaultCategory,
	}
}

// Manager exposes the underlying auth manager (recovery info, existence
// checks) which is safe to use while locked.
func (s *Session) Manager() *Manager { return s.auth }

// Authenticated reports whether the session is unlocked.
func (s *Session) Authenticated() bool { return s.authenticated }

// Provisioned reports whether a vault config exists in durable storage.
func (s *Session) Provisioned() bool { return s.auth.Exists() }

// Provision creates the vault config and unlocks the session with an empty
// entry set. An existing config is overwritten; callers gate that decision.
func (s *Session) Provision(password security.Secret, hint, email, phone string) error {
	if err := s.auth.Provision(password, hint, email, phone); err != nil {
		return err
	}
	s.authenticated = true
	s.entries = s.store.LoadEntries()
	logging.Debugf("vault provisioned at %s", s.store.Dir())
	return nil
}

// Unlock verifies the master password and, on success, loads the persisted
// entries into memory. A wrong password leaves the session locked and
// reports false.
func (s *Session) Unlock(password security.Secret) bool {
	if !s.auth.Authenticate(password) {
		return false
	}
	s.authenticated = true
	s.entries = s.store.LoadEntries()
	logging.Debugf("vault unlocked, %d entries loaded", len(s.entries))
	return true
}

// Lock discards the in-memory entry set and returns to the locked state.
// Durable storage is untouched.
func (s *Session) Lock() {
	s.authenticated = false
	s.entries = nil
}

// Entries returns a copy of the in-memory entry sequence.
func (s *Session) Entries() ([]model.VaultEntry, error) {
	if !s.authenticated {
		return nil, ErrLocked
	}
	out := make([]model.VaultEntry, len(s.entries))
	copy(out, s.entries)
	return out, nil
}

// Search returns the entries matching the query, case-insensitively over all
// fields. An empty query returns everything in original order.
func (s *Session) Search(query string) ([]model.VaultEntry, error) {
	if !s.authenticated {
		return nil, ErrLocked
	}
	matched := store.Filter(s.entries, query)
	out := make([]model.VaultEntry, len(matched))
	copy(out, matched)
	return out, nil
}

// AddEntry validates, appends and persists a new entry, returning it with
// its assigned id and timestamp.
func (s *Session) AddEntry(e model.VaultEntry) (model.VaultEntry, error) {
	if !s.authenticated {
		return model.VaultEntry{}, ErrLocked
	}
	if e.Category == "" {
		e.Category = s.defaultCategory
	}
	next, err := store.Add(s.entries, e)
	if err != nil {
		return model.VaultEntry{}, err
	}
	if err := s.store.SaveEntries(next); err != nil {
		return model.VaultEntry{}, fmt.Errorf("persist entries: %w", err)
	}
	s.entries = next
	return next[len(next)-1], nil
}

// DeleteEntry removes the entry with the given stable id and persists.
func (s *Session) DeleteEntry(id string) error {
	if !s.authenticated {
		return ErrLocked
	}
	next, err := store.RemoveByID(s.entries, id)
	if err != nil {
		return err
	}
	if err := s.store.SaveEntries(next); err != nil {
		return fmt.Errorf("persist entries: %w", err)
	}
	s.entries = next
	return nil
}

// DeleteAt removes the entry at the given ordinal position and persists.
// Positional identity is fragile when the sequence changes between listing
// and deletion; prefer DeleteEntry.
func (s *Session) DeleteAt(i int) error {
	if !s.authenticated {
		return ErrLocked
	}
	next, err := store.RemoveAt(s.entries, i)
	if err != nil {
		return err
	}
	if err := s.store.SaveEntries(next); err != nil {
		return fmt.Errorf("persist entries: %w", err)
	}
	s.entries = next
	return nil
}

// ClearAll deletes every entry and persists the empty sequence.
func (s *Session) ClearAll() error {
	if !s.authenticated {
		return ErrLocked
	}
	next := []model.VaultEntry{}
	if err := s.store.SaveEntries(next); err != nil {
		return fmt.Errorf("persist entries: %w", err)
	}
	s.entries = next
	return nil
}
