// Copyright (c) 2026 ToeiRei
// Vaultmaster - master-password gated credential vault
// This source code is licensed under the MIT license found in the LICENSE file.

// Package model defines the shared data model of the vault: the credential
// entries stored on disk, the per-installation vault configuration, and the
// container used for backup export/import.
package model

import "fmt"

// TimestampLayout is the format used for VaultEntry.CreatedAt. It is part of
// the on-disk format and must not change without a schema version bump.
const TimestampLayout = "2006-01-02 15:04"

// SchemaVersion is written into new config files and backups. It is reserved
// for future format migrations and unused by current logic.
const SchemaVersion = "2.0.0"

// VaultEntry is one stored credential. Service and Password are required for
// any persisted entry; ID is assigned once at creation and is the stable
// identity used for deletion.
type VaultEntry struct {
	ID        string `json:"id"`
	Service   string `json:"service"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Category  string `json:"category"`
	CreatedAt string `json:"created_at"`
}

// String returns a display representation without the password.
func (e VaultEntry) String() string {
	if e.Email == "" {
		return e.Service
	}
	return fmt.Sprintf("%s (%s)", e.Service, e.Email)
}

// VaultConfig is the single per-installation authentication record. Its
// presence on disk is the sole signal distinguishing first-run provisioning
// from login. It is only ever replaced wholesale.
type VaultConfig struct {
	MasterHash    string `json:"master_hash"`
	Hint          string `json:"hint"`
	RecoveryEmail string `json:"recovery_email"`
	RecoveryPhone string `json:"recovery_phone"`
	CreatedAt     string `json:"created_at"`
	SchemaVersion string `json:"schema_version"`
}

// RecoveryInfo holds the recovery metadata stored alongside the master hash.
// The recovery flow only displays these values (masked); it cannot reset the
// master password.
type RecoveryInfo struct {
	Hint  string
	Email string
	Phone string
}

// IsEmpty reports whether no recovery option was configured.
func (r RecoveryInfo) IsEmpty() bool {
	return r.Hint == "" && r.Email == "" && r.Phone == ""
}
