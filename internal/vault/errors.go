// Copyright (c) 2026 ToeiRei
// Vaultmaster - master-password gated credential vault
// This source code is licensed under the MIT license found in the LICENSE file.

package vault

import "errors"

// ErrLocked is returned when a session operation requires authentication
// but the session is locked. Durable storage is never touched in that case.
var ErrLocked = errors.New("vault is locked")

// ErrPasswordTooShort is returned when provisioning with a master password
// shorter than MinMasterPasswordLength.
var ErrPasswordTooShort = errors.New("master password must be at least 6 characters")
