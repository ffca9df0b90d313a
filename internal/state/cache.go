// Copyright (c) 2026 ToeiRei
// Vaultmaster - master-password gated credential vault
// This source code is licensed under the MIT license found in the LICENSE file.

// Package state provides a secure, in-memory cache for transient application
// state, such as the master password, that needs to be shared between
// different parts of the application (e.g., a CLI flag and a later prompt).
package state

import "sync"

// MasterPassword is a simple, concurrency-safe, in-memory "mailbox" for
// temporarily storing the master password. It uses a byte slice instead of
// a string so that the sensitive data can be explicitly zeroed out after use.
var MasterPassword = &passwordMailbox{
	// value is initialized to nil
}

type passwordMailbox struct {
	value []byte
	mu    sync.RWMutex
}

// Set stores a copy of the password in the cache. It overwrites any existing value.
func (p *passwordMailbox) Set(pass []byte) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if pass == nil {
		p.value = nil
		return
	}
	// Store a copy so the caller's original slice isn't held by the cache.
	p.value = make([]byte, len(pass))
	copy(p.value, pass)
}

// Get retrieves a copy of the password from the cache.
// The caller is responsible for zeroing out the returned byte slice after use.
func (p *passwordMailbox) Get() []byte {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.value == nil {
		return nil
	}

	// Return a copy so that one caller wiping its copy doesn't affect others.
	passCopy := make([]byte, len(p.value))
	copy(passCopy, p.value)
	return passCopy
}

// Clear securely wipes the password from the cache memory.
func (p *passwordMailbox) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i := range p.value {
		p.value[i] = 0
	}
	p.value = nil
}
