package config

import (
	"path/filepath"
	"testing"
)

func TestParse_json(t *testing.T) {
	data := []byte(`{
  "packages": [
    { "name": "left-pad", "localPath": "../left-pad" },
    { "name": "foo" },
    { "localPath": "../orphan" }
  ]
}`)
	f, err := Parse(data, FormatJSON)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(f.Packages) != 3 {
		t.Fatalf("packages count = %d, want 3", len(f.Packages))
	}
	if f.Packages[0].Name != "left-pad" || f.Packages[0].LocalPath != "../left-pad" {
		t.Errorf("packages[0] = %+v", f.Packages[0])
	}
	if f.Packages[1].HasLocalPath() {
		t.Error("foo should have no localPath")
	}
	if f.Packages[2].Name != "" {
		t.Errorf("packages[2].name = %q, want empty", f.Packages[2].Name)
	}
	if f.EffectivePackageManager() != "npm" {
		t.Errorf("package manager = %q, want npm", f.EffectivePackageManager())
	}
}

func TestParse_jsonIgnoresUnknownAndNull(t *testing.T) {
	data := []byte(`{"$schema":"x","packageManager":"pnpm","packages":[{"name":"a","localPath":null,"extra":{"k":[1,2]}}]}`)
	f, err := Parse(data, FormatJSON)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.PackageManager != "pnpm" {
		t.Errorf("packageManager = %q, want pnpm", f.PackageManager)
	}
	if len(f.Packages) != 1 || f.Packages[0].HasLocalPath() {
		t.Errorf("unexpected packages: %+v", f.Packages)
	}
}

func TestParse_missingPackages(t *testing.T) {
	f, err := Parse([]byte(`{}`), FormatJSON)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(f.Packages) != 0 {
		t.Errorf("packages count = %d, want 0", len(f.Packages))
	}
}

func TestParse_yaml(t *testing.T) {
	data := []byte(`
packageManager: yarn
packages:
  - name: left-pad
    localPath: ../left-pad
  - name: foo
`)
	f, err := Parse(data, FormatYAML)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.PackageManager != "yarn" {
		t.Errorf("packageManager = %q, want yarn", f.PackageManager)
	}
	if len(f.Packages) != 2 || f.Packages[0].LocalPath != "../left-pad" {
		t.Errorf("unexpected packages: %+v", f.Packages)
	}
}

func TestParse_invalid(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format Format
	}{
		{"malformed json", `{"packages": [`, FormatJSON},
		{"packages not a list", `{"packages": {"name": "a"}}`, FormatJSON},
		{"name not a string", `{"packages": [{"name": 1}]}`, FormatJSON},
		{"malformed yaml", "packages: [\n", FormatYAML},
		{"unknown package manager", `{"packageManager": "bun", "packages": []}`, FormatJSON},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data), tt.format); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestFormatFor(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"npm-dependency-switcher.config.json", FormatJSON},
		{"switch.yaml", FormatYAML},
		{"switch.YML", FormatYAML},
		{"switch", FormatJSON},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := FormatFor(tt.path); got != tt.want {
				t.Errorf("FormatFor(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	for _, name := range []string{"switch.json", "switch.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			f := &File{
				Packages: []Package{
					{Name: "left-pad", LocalPath: "../left-pad"},
					{Name: "foo"},
				},
			}
			if err := Save(path, f); err != nil {
				t.Fatalf("save: %v", err)
			}
			loaded, err := Load(path)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if len(loaded.Packages) != 2 {
				t.Fatalf("packages count = %d, want 2", len(loaded.Packages))
			}
			if loaded.Packages[0].LocalPath != "../left-pad" {
				t.Errorf("localPath = %q", loaded.Packages[0].LocalPath)
			}
			if loaded.Packages[1].HasLocalPath() {
				t.Error("foo should have no localPath after round trip")
			}
		})
	}
}

func TestSave_rejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "switch.json")
	if err := Save(path, &File{PackageManager: "bun"}); err == nil {
		t.Fatal("expected validation error")
	}
}
