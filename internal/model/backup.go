// Copyright (c) 2026 ToeiRei
// Vaultmaster - master-password gated credential vault
// This source code is licensed under the MIT license found in the LICENSE file.

package model

// BackupData is a container for all data exported by a vault backup: the
// authentication config plus the full entry sequence.
type BackupData struct {
	// SchemaVersion helps in handling migrations during restore.
	SchemaVersion string `json:"schema_version"`

	Config  *VaultConfig `json:"config,omitempty"`
	Entries []VaultEntry `json:"entries"`
}
