package registry

import (
	"math/rand"
	"path/filepath"
	"testing"
)

func TestLoadEquipmentRegistry(t *testing.T) {
	base := filepath.Join("testdata", "db")
	reg, err := Load(base)
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}

	if reg.Count() != 5 {
		t.Errorf("Expected 5 equipment databases, got %d", reg.Count())
	}

	expected := map[string]string{
		"Clothing": "clothing.db",
		"Food":     "food.db",
		"Misc":     "misc.db",
		"Tool":     "tool.db",
		"Weapon":   "weapon.db",
	}
	for _, ref := range reg.All() {
		file, ok := expected[ref.Name]
		if !ok {
			t.Errorf("Unexpected database %q", ref.Name)
			continue
		}
		want := filepath.Join(base, "equipment", file)
		if ref.Location != want {
			t.Errorf("Database %q location = %q, want %q", ref.Name, ref.Location, want)
		}
	}
}

func TestLoadGroupUnknown(t *testing.T) {
	if _, err := LoadGroup("db", "characters"); err == nil {
		t.Error("LoadGroup with unknown group should fail")
	}
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name  string
		refs  []DatabaseRef
		valid bool
	}{
		{"empty", nil, false},
		{"blank name", []DatabaseRef{{Name: " ", Location: "a.db"}}, false},
		{"blank location", []DatabaseRef{{Name: "Food", Location: ""}}, false},
		{"ok", []DatabaseRef{{Name: "Food", Location: "food.db"}}, true},
	}

	for _, tt := range tests {
		_, err := New(tt.refs)
		if tt.valid && err != nil {
			t.Errorf("New(%s) should be valid, got error: %v", tt.name, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("New(%s) should be invalid, got no error", tt.name)
		}
	}
}

func TestNewCopiesRefs(t *testing.T) {
	refs := []DatabaseRef{{Name: "Food", Location: "food.db"}}
	reg, err := New(refs)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	refs[0].Name = "Changed"

	if got := reg.Names()[0]; got != "Food" {
		t.Errorf("Registry changed with caller slice: got %q", got)
	}
}

func TestPickDeterministic(t *testing.T) {
	reg, err := Load("db")
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}

	rng1 := rand.New(rand.NewSource(12345))
	rng2 := rand.New(rand.NewSource(12345))

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		a := reg.Pick(rng1)
		b := reg.Pick(rng2)
		if a != b {
			t.Errorf("Pick %d mismatch: %v != %v", i, a, b)
		}
		seen[a.Name] = true
	}

	if len(seen) < 2 {
		t.Errorf("Expected several categories over 50 picks, got %v", seen)
	}
}

func TestByName(t *testing.T) {
	reg, err := Load("db")
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}

	ref, ok := reg.ByName("weapon")
	if !ok {
		t.Fatal("Weapon not found by name")
	}
	if ref.Name != "Weapon" {
		t.Errorf("Expected name 'Weapon', got %q", ref.Name)
	}

	if _, ok := reg.ByName("armor"); ok {
		t.Error("Armor should not be in the registry")
	}
}

func TestBaseDir(t *testing.T) {
	tests := []struct {
		cwd, subdir, want string
	}{
		{"/srv/goki", "", filepath.Join("/srv/goki", DefaultSubdir)},
		{"/srv/goki", "data", filepath.Join("/srv/goki", "data")},
		{"/srv/goki", "/var/lib/goki", "/var/lib/goki"},
	}

	for _, tt := range tests {
		if got := BaseDir(tt.cwd, tt.subdir); got != tt.want {
			t.Errorf("BaseDir(%q, %q) = %q, want %q", tt.cwd, tt.subdir, got, tt.want)
		}
	}
}

func TestNilRegistryCount(t *testing.T) {
	var reg *Registry
	if reg.Count() != 0 {
		t.Errorf("nil registry Count() = %d, want 0", reg.Count())
	}
}

func TestLoadFileStrict(t *testing.T) {
	type narrowCatalog struct {
		Groups []struct {
			Name string `yaml:"name"`
		} `yaml:"groups"`
	}
	if _, err := LoadFile[narrowCatalog](CatalogFile); err == nil {
		t.Error("LoadFile should reject catalog keys the target type does not declare")
	}

	if _, err := LoadFile[CatalogFileDef]("missing.yaml"); err == nil {
		t.Error("LoadFile should fail for a file that is not embedded")
	}
}
