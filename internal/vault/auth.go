// Copyright (c) 2026 ToeiRei
// Vaultmaster - master-password gated credential vault
// This source code is licensed under the MIT license found in the LICENSE file.

// Package vault implements the authentication manager and the session facade
// that UI layers consume: provisioning and verifying the master password,
// recovery metadata, and all entry mutations with synchronous persistence.
package vault

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/toeirei/vaultmaster/internal/model"
	"github.com/toeirei/vaultmaster/internal/security"
	"github.com/toeirei/vaultmaster/internal/store"
)

// masterSalt is the fixed salt mixed into the master hash. A fixed salt is a
// known weakness carried over for on-disk compatibility: replacing it with a
// per-installation random salt changes the config format and invalidates
// every existing vault. Tracked for a schema_version bump.
const masterSalt = "vault_pro_2020"

// MinMasterPasswordLength is the minimum accepted master password length.
const MinMasterPasswordLength = 6

// now is swapped out in tests that need a fixed timestamp.
var now = time.Now

// HashMasterPassword returns hex(sha256(password + salt)). Deterministic by
// design; the output is the 64-hex-char value stored as master_hash.
func HashMasterPassword(password security.Secret) string {
	h := sha256.New()
	h.Write(password)
	h.Write([]byte(masterSalt))
	return hex.EncodeToString(h.Sum(nil))
}

// Manager owns the master-password lifecycle: first-run provisioning, hash
// verification and recovery metadata retrieval.
type Manager struct {
	store *store.Store
}

// NewManager returns a Manager persisting through the given store.
func NewManager(st *store.Store) *Manager {
	return &Manager{store: st}
}

// Exists reports whether a vault config is present in durable storage.
func (m *Manager) Exists() bool {
	return m.store.ConfigExists()
}

// Provision creates (or overwrites) the vault config with the hash of the
// given master password and the optional recovery metadata.
func (m *Manager) Provision(password security.Secret, hint, email, phone string) error {
	if len(password) < MinMasterPasswordLength {
		return fmt.Errorf("%w: got %d characters", ErrPasswordTooShort, len(password))
	}
	cfg := &model.VaultConfig{
		MasterHash:    HashMasterPassword(password),
		Hint:          strings.TrimSpace(hint),
		RecoveryEmail: strings.TrimSpace(email),
		RecoveryPhone: strings.TrimSpace(phone),
		CreatedAt:     now().Format(time.RFC3339),
		SchemaVersion: model.SchemaVersion,
	}
	return m.store.SaveVaultConfig(cfg)
}

// Authenticate reports whether the given password matches the stored master
// hash. It returns false, never an error, when no config exists or the
// stored file is malformed.
func (m *Manager) Authenticate(password security.Secret) bool {
	cfg, err := m.store.LoadVaultConfig()
	if err != nil || cfg == nil {
		return false
	}
	got := HashMasterPassword(password)
	return subtle.ConstantTimeCompare([]byte(got), []byte(cfg.MasterHash)) == 1
}

// RecoveryInfo returns the stored recovery fields, or all-empty values when
// the config is missing or malformed. It never fails: the login surface must
// always be able to offer the recovery view.
func (m *Manager) RecoveryInfo() model.RecoveryInfo {
	cfg, err := m.store.LoadVaultConfig()
	if err != nil || cfg == nil {
		return model.RecoveryInfo{}
	}
	return model.RecoveryInfo{
		Hint:  cfg.Hint,
		Email: cfg.RecoveryEmail,
		Phone: cfg.RecoveryPhone,
	}
}

// MaskEmail masks an email address for display-only recovery output:
// "ab***@host" when the local part has more than two characters, otherwise
// "***@host". Non-email input collapses to "***"; empty stays empty.
func MaskEmail(email string) string {
	if email == "" {
		return ""
	}
	local, domain, ok := strings.Cut(email, "@")
	if !ok {
		return "***"
	}
	if len(local) > 2 {
		return local[:2] + "***@" + domain
	}
	return "***@" + domain
}

// MaskPhone masks a phone number for display-only recovery output, keeping
// only the last four digits ("***1234"). Shorter input collapses to "***";
// empty stays empty.
func MaskPhone(phone string) string {
	if phone == "" {
		return ""
	}
	if len(phone) > 4 {
		return "***" + phone[len(phone)-4:]
	}
	return "***"
}
