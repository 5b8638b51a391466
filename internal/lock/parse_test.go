package lock

import (
	"path/filepath"
	"testing"

	"github.com/cnichte/npm-dependency-switcher/internal/testutil"
)

func TestParse_v3(t *testing.T) {
	data := []byte(`{
  "name": "app",
  "lockfileVersion": 3,
  "requires": true,
  "packages": {
    "": { "name": "app", "dependencies": { "left-pad": "file:../left-pad" } },
    "../left-pad": { "version": "1.3.0" },
    "node_modules/left-pad": { "resolved": "../left-pad", "link": true },
    "node_modules/@scope/util": { "version": "2.0.1", "resolved": "https://registry.npmjs.org/@scope/util/-/util-2.0.1.tgz" },
    "node_modules/@scope/util/node_modules/nested": { "version": "0.1.0" }
  }
}`)
	lf, err := Parse(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lf.LockfileVersion != 3 {
		t.Errorf("lockfileVersion = %d, want 3", lf.LockfileVersion)
	}
	if len(lf.Packages) != 2 {
		t.Errorf("packages count = %d, want 2: %v", len(lf.Packages), lf.Packages)
	}
	lp := lf.Installed("left-pad")
	if lp == nil || !lp.Link || lp.Resolved != "../left-pad" {
		t.Errorf("left-pad = %+v, want linked to ../left-pad", lp)
	}
	util := lf.Installed("@scope/util")
	if util == nil || util.Version != "2.0.1" {
		t.Errorf("@scope/util = %+v, want version 2.0.1", util)
	}
	if lf.Installed("nested") != nil {
		t.Error("nested installs should not be reported")
	}
}

func TestParse_v1(t *testing.T) {
	data := []byte(`{
  "lockfileVersion": 1,
  "dependencies": {
    "left-pad": { "version": "1.3.0", "resolved": "https://registry.npmjs.org/left-pad/-/left-pad-1.3.0.tgz" }
  }
}`)
	lf, err := Parse(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p := lf.Installed("left-pad"); p == nil || p.Version != "1.3.0" {
		t.Errorf("left-pad = %+v, want version 1.3.0", p)
	}
}

func TestParse_invalid(t *testing.T) {
	if _, err := Parse([]byte(`{"packages": [}`)); err == nil {
		t.Fatal("expected error for malformed lock file")
	}
}

func TestInstalled_nilFile(t *testing.T) {
	var lf *File
	if lf.Installed("x") != nil {
		t.Error("nil lock file should report nothing installed")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	testutil.WriteFile(t, path, `{"lockfileVersion":2,"packages":{"node_modules/a":{"version":"1.0.0"}}}`)

	lf, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p := lf.Installed("a"); p == nil || p.Version != "1.0.0" {
		t.Errorf("a = %+v", p)
	}
}
