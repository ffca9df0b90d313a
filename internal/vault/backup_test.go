// Copyright (c) 2026 ToeiRei
// Vaultmaster - master-password gated credential vault
// This source code is licensed under the MIT license found in the LICENSE file.

package vault

import (
	"bytes"
	"errors"
	"testing"

	"github.com/toeirei/vaultmaster/internal/model"
	"github.com/toeirei/vaultmaster/internal/security"
)

func TestExportRequiresUnlock(t *testing.T) {
	s, _ := newTestSession(t)
	var buf bytes.Buffer
	if err := s.Export(&buf); !errors.Is(err, ErrLocked) {
		t.Errorf("Export err = %v, want ErrLocked", err)
	}
	if _, err := s.Import(&buf, false); !errors.Is(err, ErrLocked) {
		t.Errorf("Import err = %v, want ErrLocked", err)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	src, _ := unlockedSession(t)
	for _, svc := range []string{"Gmail", "GitHub", "Netflix"} {
		if _, err := src.AddEntry(model.VaultEntry{Service: svc, Password: "pw-" + svc}); err != nil {
			t.Fatal(err)
		}
	}

	var buf bytes.Buffer
	if err := src.Export(&buf); err != nil {
		t.Fatal(err)
	}

	// Full import into a fresh vault replaces entries and the carried config,
	// so the source master password must unlock the destination afterwards.
	dst, dstStore := newTestSession(t)
	if err := dst.Provision(security.FromString("different"), "", "", ""); err != nil {
		t.Fatal(err)
	}
	n, err := dst.Import(&buf, true)
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Errorf("imported count = %d, want 3", n)
	}

	got, err := dst.Entries()
	if err != nil {
		t.Fatal(err)
	}
	srcEntries, err := src.Entries()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(srcEntries) {
		t.Fatalf("round trip lost entries: got %d, want %d", len(got), len(srcEntries))
	}
	for i := range got {
		if got[i] != srcEntries[i] {
			t.Errorf("entry %d = %+v, want %+v", i, got[i], srcEntries[i])
		}
	}

	dst.Lock()
	if dst.Unlock(security.FromString("different")) {
		t.Errorf("old password must not survive a full import carrying a config")
	}
	if !dst.Unlock(security.FromString("hunter22")) {
		t.Errorf("source master password must unlock after full import")
	}
	if onDisk := dstStore.LoadEntries(); len(onDisk) != 3 {
		t.Errorf("import not persisted: %d entries on disk", len(onDisk))
	}
}

func TestImportMergeSkipsExistingIDs(t *testing.T) {
	src, _ := unlockedSession(t)
	shared, err := src.AddEntry(model.VaultEntry{Service: "Gmail", Password: "pw1"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := src.AddEntry(model.VaultEntry{Service: "GitHub", Password: "pw2"}); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := src.Export(&buf); err != nil {
		t.Fatal(err)
	}

	// Delete one entry, then merge the backup back in. Only the deleted
	// entry may come back; the surviving id must not duplicate.
	if err := src.DeleteEntry(shared.ID); err != nil {
		t.Fatal(err)
	}
	n, err := src.Import(&buf, false)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("merge imported %d entries, want 1", n)
	}

	got, err := src.Entries()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("entries after merge = %d, want 2", len(got))
	}
	seen := map[string]int{}
	for _, e := range got {
		seen[e.ID]++
	}
	for id, count := range seen {
		if count > 1 {
			t.Errorf("id %s duplicated after merge", id)
		}
	}
}

func TestImportRejectsGarbage(t *testing.T) {
	s, _ := unlockedSession(t)
	if _, err := s.Import(bytes.NewReader([]byte("not a backup")), false); err == nil {
		t.Errorf("garbage input must fail to import")
	}
	got, err := s.Entries()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("failed import must not change entries, got %d", len(got))
	}
}
