// Copyright (c) 2026 ToeiRei
// Vaultmaster - master-password gated credential vault
// This source code is licensed under the MIT license found in the LICENSE file.

// Package store owns the vault's durable state: the authentication config
// and the credential entries, persisted as two human-diffable JSON files in
// a per-user directory.
package store

import "errors"

// ErrEmptyService is returned when adding an entry without a service name.
var ErrEmptyService = errors.New("service must not be empty")

// ErrEmptyPassword is returned when adding an entry without a password.
var ErrEmptyPassword = errors.New("password must not be empty")

// ErrOutOfRange is returned when an ordinal lies outside the entry sequence.
var ErrOutOfRange = errors.New("entry index out of range")

// ErrNotFound is returned when no entry carries the requested id.
var ErrNotFound = errors.New("entry not found")

// ErrNoVault is returned when an operation requires a provisioned vault but
// no config file exists.
var ErrNoVault = errors.New("vault not provisioned")
