// Copyright (c) 2026 ToeiRei
// Vaultmaster - master-password gated credential vault
// This source code is licensed under the MIT license found in the LICENSE file.

// Alternate build path for the Vaultmaster CLI, for installs via
// `go install github.com/toeirei/vaultmaster/cmd/vaultmaster@latest`.
package main

import (
	"os"

	"github.com/toeirei/vaultmaster/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
