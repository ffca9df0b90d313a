// Copyright (c) 2026 ToeiRei
// Vaultmaster - master-password gated credential vault
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Vaultmaster.
//
// Usage:
//
//	go run . [flags]
//	./vaultmaster [flags]
//
// This launches the Vaultmaster CLI. See --help for options.
package main

import (
	"os"

	"github.com/toeirei/vaultmaster/internal/cli"
)

// main is the entrypoint for the Vaultmaster CLI.
func main() {
	if err := cli.Execute(); err != nil {
		// The error is already printed by Cobra on failure.
		os.Exit(1)
	}
}
