// Copyright (c) 2026 ToeiRei
// Vaultmaster - master-password gated credential vault
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"strings"
	"testing"
)

func TestAddAndListCmd(t *testing.T) {
	setupTestEnv(t)
	provisionVault(t)

	out, err := executeCommand(t, nil, "add", "Gmail", "-p", "hunter22", "--generate", "--email", "me@example.com")
	if err != nil {
		t.Fatalf("add failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Saved password for Gmail") {
		t.Errorf("add output = %q", out)
	}

	out, err = executeCommand(t, nil, "list", "-p", "hunter22")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out, "Gmail") || !strings.Contains(out, "me@example.com") {
		t.Errorf("list output = %q", out)
	}
	if !strings.Contains(out, "[General]") {
		t.Errorf("default category missing from list: %q", out)
	}
}

func TestAddCmdPromptsForPassword(t *testing.T) {
	setupTestEnv(t)
	provisionVault(t)

	stdin := stdinFrom(t, "entry-secret\n")
	out, err := executeCommand(t, stdin, "add", "Netflix", "-p", "hunter22", "--generate=false", "--email=", "--category", "Entertainment")
	if err != nil {
		t.Fatalf("add failed: %v\n%s", err, out)
	}

	out, err = executeCommand(t, nil, "show", "1", "-p", "hunter22")
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	if !strings.Contains(out, "password: entry-secret") {
		t.Errorf("show output = %q", out)
	}
	if !strings.Contains(out, "category: Entertainment") {
		t.Errorf("show output = %q", out)
	}
}

func TestListEmpty(t *testing.T) {
	setupTestEnv(t)
	provisionVault(t)

	out, err := executeCommand(t, nil, "list", "-p", "hunter22")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out, "No entries stored") {
		t.Errorf("empty list output = %q", out)
	}
}

func TestRmCmdByPosition(t *testing.T) {
	setupTestEnv(t)
	provisionVault(t)

	for _, svc := range []string{"Gmail", "GitHub"} {
		if out, err := executeCommand(t, nil, "add", svc, "-p", "hunter22", "--generate", "--email=", "--category="); err != nil {
			t.Fatalf("add %s failed: %v\n%s", svc, err, out)
		}
	}

	out, err := executeCommand(t, nil, "rm", "1", "-p", "hunter22")
	if err != nil {
		t.Fatalf("rm failed: %v", err)
	}
	if !strings.Contains(out, "Deleted entry for Gmail") {
		t.Errorf("rm output = %q", out)
	}

	out, err = executeCommand(t, nil, "list", "-p", "hunter22")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if strings.Contains(out, "Gmail") || !strings.Contains(out, "GitHub") {
		t.Errorf("list after rm = %q", out)
	}

	if _, err := executeCommand(t, nil, "rm", "99", "-p", "hunter22"); err == nil {
		t.Errorf("rm with unknown position must fail")
	}
}

func TestSearchCmd(t *testing.T) {
	setupTestEnv(t)
	provisionVault(t)

	for _, svc := range []string{"Gmail", "GitHub", "Netflix"} {
		if out, err := executeCommand(t, nil, "add", svc, "-p", "hunter22", "--generate", "--email=", "--category="); err != nil {
			t.Fatalf("add %s failed: %v\n%s", svc, err, out)
		}
	}

	out, err := executeCommand(t, nil, "search", "git", "-p", "hunter22")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if !strings.Contains(out, "GitHub") || strings.Contains(out, "Netflix") {
		t.Errorf("search output = %q", out)
	}
}

func TestClearCmd(t *testing.T) {
	setupTestEnv(t)
	provisionVault(t)

	if out, err := executeCommand(t, nil, "add", "Gmail", "-p", "hunter22", "--generate", "--email=", "--category="); err != nil {
		t.Fatalf("add failed: %v\n%s", err, out)
	}

	// Declining the confirmation keeps the entries.
	stdin := stdinFrom(t, "no\n")
	out, err := executeCommand(t, stdin, "clear", "-p", "hunter22")
	if err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if !strings.Contains(out, "Aborted") {
		t.Errorf("declined clear output = %q", out)
	}

	out, err = executeCommand(t, nil, "clear", "-p", "hunter22", "--force")
	if err != nil {
		t.Fatalf("clear --force failed: %v", err)
	}
	if !strings.Contains(out, "All entries deleted") {
		t.Errorf("clear output = %q", out)
	}

	out, err = executeCommand(t, nil, "list", "-p", "hunter22")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out, "No entries stored") {
		t.Errorf("list after clear = %q", out)
	}
}
