// Copyright (c) 2026 ToeiRei
// Vaultmaster - master-password gated credential vault
// This source code is licensed under the MIT license found in the LICENSE file.

package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/toeirei/vaultmaster/internal/logging"
	"github.com/toeirei/vaultmaster/internal/model"
)

const (
	configFileName = "config.json"
	dataFileName   = "vault.json"

	fileMode = 0600
	dirMode  = 0700
)

// now is swapped out in tests that need a fixed timestamp.
var now = time.Now

// Store reads and writes the vault's two durable files. It assumes a single
// process instance; concurrent external writers to the same directory are
// undefined behavior (no file locking is performed).
type Store struct {
	dir string
}

// New returns a Store rooted at dir. The directory is created lazily on the
// first write.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the data directory this store operates on.
func (s *Store) Dir() string { return s.dir }

// ConfigPath returns the path of the authentication config file.
func (s *Store) ConfigPath() string { return filepath.Join(s.dir, configFileName) }

// DataPath returns the path of the credential data file.
func (s *Store) DataPath() string { return filepath.Join(s.dir, dataFileName) }

// ConfigExists reports whether a vault config is present in durable storage.
func (s *Store) ConfigExists() bool {
	_, err := os.Stat(s.ConfigPath())
	return err == nil
}

// LoadVaultConfig reads the authentication config. A missing or malformed
// file yields (nil, nil); callers treat that as "not provisioned".
func (s *Store) LoadVaultConfig() (*model.VaultConfig, error) {
	data, err := os.ReadFile(s.ConfigPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read vault config: %w", err)
	}
	var cfg model.VaultConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		logging.Debugf("vault config malformed, treating as unprovisioned: %v", err)
		return nil, nil
	}
	return &cfg, nil
}

// SaveVaultConfig atomically replaces the authentication config.
func (s *Store) SaveVaultConfig(cfg *model.VaultConfig) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode vault config: %w", err)
	}
	return s.writeFileAtomic(s.ConfigPath(), data)
}

// LoadEntries reads the stored entry sequence. A missing or corrupt data
// file degrades to an empty sequence; it never fails the caller.
func (s *Store) LoadEntries() []model.VaultEntry {
	data, err := os.ReadFile(s.DataPath())
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logging.Debugf("vault data unreadable, treating as empty: %v", err)
		}
		return []model.VaultEntry{}
	}
	var entries []model.VaultEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		logging.Debugf("vault data malformed, treating as empty: %v", err)
		return []model.VaultEntry{}
	}
	if entries == nil {
		entries = []model.VaultEntry{}
	}
	return entries
}

// SaveEntries atomically rewrites the data file with the full given sequence.
func (s *Store) SaveEntries(entries []model.VaultEntry) error {
	if entries == nil {
		entries = []model.VaultEntry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode vault data: %w", err)
	}
	return s.writeFileAtomic(s.DataPath(), data)
}

// writeFileAtomic writes data to a temp file in the target directory and
// renames it into place, so a crash mid-write never leaves a truncated file.
func (s *Store) writeFileAtomic(path string, data []byte) error {
	if err := os.MkdirAll(s.dir, dirMode); err != nil {
		return fmt.Errorf("create data directory %s: %w", s.dir, err)
	}
	tmp, err := os.CreateTemp(s.dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Chmod(fileMode); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}

// Add validates and appends a new entry, assigning its stable id and
// creation timestamp. It returns the new sequence without persisting it;
// the caller decides when to persist.
func Add(entries []model.VaultEntry, e model.VaultEntry) ([]model.VaultEntry, error) {
	if strings.TrimSpace(e.Service) == "" {
		return nil, ErrEmptyService
	}
	if e.Password == "" {
		return nil, ErrEmptyPassword
	}
	e.ID = uuid.NewString()
	e.CreatedAt = now().Format(model.TimestampLayout)
	return append(entries, e), nil
}

// RemoveAt removes the entry at the given ordinal, preserving the relative
// order of the rest. Kept for positional callers; prefer RemoveByID.
func RemoveAt(entries []model.VaultEntry, i int) ([]model.VaultEntry, error) {
	if i < 0 || i >= len(entries) {
		return nil, fmt.Errorf("%w: %d of %d", ErrOutOfRange, i, len(entries))
	}
	out := make([]model.VaultEntry, 0, len(entries)-1)
	out = append(out, entries[:i]...)
	out = append(out, entries[i+1:]...)
	return out, nil
}

// RemoveByID removes the entry with the given stable id.
func RemoveByID(entries []model.VaultEntry, id string) ([]model.VaultEntry, error) {
	for i, e := range entries {
		if e.ID == id {
			return RemoveAt(entries, i)
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Filter returns the entries whose fields contain the query, matched
// case-insensitively against every field. An empty query returns all
// entries unfiltered, in original order.
func Filter(entries []model.VaultEntry, query string) []model.VaultEntry {
	if query == "" {
		return entries
	}
	q := strings.ToLower(query)
	out := make([]model.VaultEntry, 0, len(entries))
	for _, e := range entries {
		haystack := strings.ToLower(strings.Join([]string{
			e.ID, e.Service, e.Email, e.Password, e.Category, e.CreatedAt,
		}, "\x00"))
		if strings.Contains(haystack, q) {
			out = append(out, e)
		}
	}
	return out
}
