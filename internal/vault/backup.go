// Copyright (c) 2026 ToeiRei
// Vaultmaster - master-password gated credential vault
// This source code is licensed under the MIT license found in the LICENSE file.

package vault

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"

	"github.com/toeirei/vaultmaster/internal/model"
)

// Export writes a zstd-compressed JSON backup of the vault config and the
// full entry sequence. The session must be unlocked; the backup contains
// cleartext entry passwords, same as the data file.
func (s *Session) Export(w io.Writer) error {
	if !s.authenticated {
		return ErrLocked
	}
	cfg, err := s.store.LoadVaultConfig()
	if err != nil {
		return fmt.Errorf("load vault config: %w", err)
	}
	data := &model.BackupData{
		SchemaVersion: model.SchemaVersion,
		Config:        cfg,
		Entries:       s.entries,
	}

	zw, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("create zstd writer: %w", err)
	}
	enc := json.NewEncoder(zw)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		zw.Close()
		return fmt.Errorf("encode backup: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("flush backup: %w", err)
	}
	return nil
}

// Import reads a zstd-compressed JSON backup. With full=true the current
// entries (and, when the backup carries one, the vault config) are replaced
// wholesale; otherwise entries are merged, skipping ids already present.
// The result is persisted before being committed to memory.
func (s *Session) Import(r io.Reader, full bool) (int, error) {
	if !s.authenticated {
		return 0, ErrLocked
	}
	zr, err := zstd.NewReader(r)
	if err != nil {
		return 0, fmt.Errorf("create zstd reader: %w", err)
	}
	defer zr.Close()

	var data model.BackupData
	if err := json.NewDecoder(zr).Decode(&data); err != nil {
		return 0, fmt.Errorf("decode backup: %w", err)
	}

	var next []model.VaultEntry
	if full {
		next = data.Entries
		if next == nil {
			next = []model.VaultEntry{}
		}
	} else {
		seen := make(map[string]bool, len(s.entries))
		for _, e := range s.entries {
			seen[e.ID] = true
		}
		next = make([]model.VaultEntry, len(s.entries), len(s.entries)+len(data.Entries))
		copy(next, s.entries)
		for _, e := range data.Entries {
			if e.ID != "" && seen[e.ID] {
				continue
			}
			next = append(next, e)
		}
	}

	if err := s.store.SaveEntries(next); err != nil {
		return 0, fmt.Errorf("persist entries: %w", err)
	}
	if full && data.Config != nil {
		if err := s.store.SaveVaultConfig(data.Config); err != nil {
			return 0, fmt.Errorf("persist vault config: %w", err)
		}
	}
	imported := len(next) - len(s.entries)
	if full {
		imported = len(next)
	}
	s.entries = next
	return imported, nil
}
