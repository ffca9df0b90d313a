// Copyright (c) 2026 ToeiRei
// Vaultmaster - master-password gated credential vault
// This source code is licensed under the MIT license found in the LICENSE file.

package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func TestLoadConfigDefaults(t *testing.T) {
	// Run from an empty directory so no stray vaultmaster.yaml is picked up.
	t.Chdir(t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	c, err := LoadConfig(nil, nil)
	if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
		t.Fatalf("LoadConfig err = %v, want ConfigFileNotFoundError", err)
	}

	if c.Language != "en" {
		t.Errorf("Language = %q, want en", c.Language)
	}
	if c.DefaultCategory != "General" {
		t.Errorf("DefaultCategory = %q, want General", c.DefaultCategory)
	}
	if c.Generator.Length != 16 {
		t.Errorf("Generator.Length = %d, want 16", c.Generator.Length)
	}
	if c.Debug {
		t.Errorf("Debug should default to false")
	}
	if !strings.HasSuffix(c.DataDir, ".vaultmaster") {
		t.Errorf("DataDir = %q, want ~/.vaultmaster", c.DataDir)
	}
}

func TestLoadConfigExplicitFile(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "custom.yaml")
	content := "language: de\ndata_dir: /tmp/vaulttest\ngenerator:\n  length: 24\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	c, err := LoadConfig(nil, &path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if c.Language != "de" {
		t.Errorf("Language = %q, want de", c.Language)
	}
	if c.DataDir != "/tmp/vaulttest" {
		t.Errorf("DataDir = %q, want /tmp/vaulttest", c.DataDir)
	}
	if c.Generator.Length != 24 {
		t.Errorf("Generator.Length = %d, want 24", c.Generator.Length)
	}
	// Unset keys keep their defaults.
	if c.DefaultCategory != "General" {
		t.Errorf("DefaultCategory = %q, want General", c.DefaultCategory)
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("VAULTMASTER_LANGUAGE", "de")
	t.Setenv("VAULTMASTER_DEFAULT_CATEGORY", "Work")

	c, err := LoadConfig(nil, nil)
	if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
		t.Fatalf("LoadConfig err = %v, want ConfigFileNotFoundError", err)
	}

	if c.Language != "de" {
		t.Errorf("Language = %q, want de (env override)", c.Language)
	}
	if c.DefaultCategory != "Work" {
		t.Errorf("DefaultCategory = %q, want Work (env override)", c.DefaultCategory)
	}
}

func TestDefaultsMap(t *testing.T) {
	d := Defaults()
	for _, key := range []string{"data_dir", "language", "default_category", "debug", "generator.length"} {
		if _, ok := d[key]; !ok {
			t.Errorf("Defaults() missing key %q", key)
		}
	}
}
