// Copyright (c) 2026 ToeiRei
// Vaultmaster - master-password gated credential vault
// This source code is licensed under the MIT license found in the LICENSE file.

package catalog

import "testing"

func TestCategoryFor(t *testing.T) {
	tests := []struct {
		service string
		want    string
		found   bool
	}{
		{"GitHub", "Development", true},
		{"github", "Development", true}, // case-insensitive
		{"Netflix", "Streaming", true},
		{"Gmail", "Email", true},
		{"PayPal", "Finance", true},
		{"Steam", "Gaming", true},
		// iCloud is listed under both Email and Cloud Storage; first wins.
		{"iCloud", "Email", true},
		{"NoSuchService", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.service, func(t *testing.T) {
			got, ok := CategoryFor(tt.service)
			if ok != tt.found || got != tt.want {
				t.Errorf("CategoryFor(%q) = (%q, %v), want (%q, %v)", tt.service, got, ok, tt.want, tt.found)
			}
		})
	}
}

func TestCategoriesOrderAndSize(t *testing.T) {
	cats := Categories()
	if len(cats) != 10 {
		t.Fatalf("expected 10 categories, got %d", len(cats))
	}
	if cats[0] != "Social Media" || cats[len(cats)-1] != "Education" {
		t.Errorf("unexpected category order: %v", cats)
	}
}

func TestServices(t *testing.T) {
	svcs, ok := Services("Development")
	if !ok {
		t.Fatalf("Development category not found")
	}
	if len(svcs) == 0 {
		t.Fatalf("Development category has no services")
	}

	// Returned slice is a copy; mutating it must not poison the catalog.
	svcs[0] = "Mutated"
	again, _ := Services("Development")
	if again[0] == "Mutated" {
		t.Errorf("Services must return a copy")
	}

	if _, ok := Services("Nonexistent"); ok {
		t.Errorf("unknown category should not be found")
	}
}

func TestAllReturnsCopies(t *testing.T) {
	all := All()
	if len(all) != 10 {
		t.Fatalf("expected 10 categories, got %d", len(all))
	}
	all[0].Services[0] = "Mutated"
	if fresh := All(); fresh[0].Services[0] == "Mutated" {
		t.Errorf("All must deep-copy the catalog")
	}
}
