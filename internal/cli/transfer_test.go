// Copyright (c) 2026 ToeiRei
// Vaultmaster - master-password gated credential vault
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExportImportCmd(t *testing.T) {
	setupTestEnv(t)
	provisionVault(t)

	for _, svc := range []string{"Gmail", "GitHub"} {
		if out, err := executeCommand(t, nil, "add", svc, "-p", "hunter22", "--generate", "--email=", "--category="); err != nil {
			t.Fatalf("add %s failed: %v\n%s", svc, err, out)
		}
	}

	backup := filepath.Join(t.TempDir(), "backup.json")
	out, err := executeCommand(t, nil, "export", backup, "-p", "hunter22")
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	// .zst is appended when missing.
	backup += ".zst"
	if !strings.Contains(out, backup) {
		t.Errorf("export output = %q", out)
	}
	if _, err := os.Stat(backup); err != nil {
		t.Fatalf("backup file not written: %v", err)
	}

	// Wipe the entries, then merge the backup back in.
	if out, err := executeCommand(t, nil, "clear", "-p", "hunter22", "--force"); err != nil {
		t.Fatalf("clear failed: %v\n%s", err, out)
	}
	out, err = executeCommand(t, nil, "import", backup, "-p", "hunter22")
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if !strings.Contains(out, "(2 entries)") {
		t.Errorf("import output = %q", out)
	}

	out, err = executeCommand(t, nil, "list", "-p", "hunter22")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out, "Gmail") || !strings.Contains(out, "GitHub") {
		t.Errorf("list after import = %q", out)
	}
}

func TestImportCmdMissingFile(t *testing.T) {
	setupTestEnv(t)
	provisionVault(t)

	if _, err := executeCommand(t, nil, "import", "does-not-exist.zst", "-p", "hunter22"); err == nil {
		t.Errorf("import of missing file must fail")
	}
}
