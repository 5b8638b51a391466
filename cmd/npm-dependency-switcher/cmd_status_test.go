package main

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cnichte/npm-dependency-switcher/internal/testutil"
)

const statusConfig = `{"packages":[
  {"name":"left-pad","localPath":"../left-pad"},
  {"name":"tooling","localPath":"../tooling"},
  {"name":"absent"}
]}`

const statusManifest = `{
  "dependencies": { "left-pad": "file:../left-pad" },
  "devDependencies": { "tooling": "^1.2.0" }
}`

func TestRunStatus_table(t *testing.T) {
	dir := testutil.WriteProject(t, statusManifest, statusConfig)

	root, buf := newTestRoot(t, &testutil.FakeRunner{}, "--dir", dir, "status")
	if err := root.Execute(); err != nil {
		t.Fatalf("status failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header + 3 rows, got %d:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[1], "left-pad") || !strings.Contains(lines[1], "dev") {
		t.Errorf("left-pad row = %q", lines[1])
	}
	if !strings.Contains(lines[2], "devDependencies") || !strings.Contains(lines[2], "prod") {
		t.Errorf("tooling row = %q", lines[2])
	}
	if !strings.Contains(lines[3], "missing") {
		t.Errorf("absent row = %q", lines[3])
	}
}

func TestRunStatus_json(t *testing.T) {
	dir := testutil.WriteProject(t, statusManifest, statusConfig)
	testutil.WriteFile(t, filepath.Join(dir, "package-lock.json"), `{
  "lockfileVersion": 3,
  "packages": {
    "": {"name": "app"},
    "node_modules/left-pad": {"resolved": "../left-pad", "link": true},
    "node_modules/tooling": {"version": "1.2.3"}
  }
}`)

	root, buf := newTestRoot(t, &testutil.FakeRunner{}, "--dir", dir, "status", "--json")
	if err := root.Execute(); err != nil {
		t.Fatalf("status --json failed: %v", err)
	}

	var statuses []packageStatus
	if err := json.Unmarshal(buf.Bytes(), &statuses); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	if len(statuses) != 3 {
		t.Fatalf("expected 3 status entries, got %d", len(statuses))
	}
	if statuses[0].Installed != "link:../left-pad" {
		t.Errorf("left-pad installed = %q", statuses[0].Installed)
	}
	if statuses[1].Installed != "1.2.3" || statuses[1].Section != "devDependencies" {
		t.Errorf("tooling = %+v", statuses[1])
	}
	if statuses[2].Mode != modeMissing || statuses[2].Installed != "" {
		t.Errorf("absent = %+v", statuses[2])
	}
}

func TestRunStatus_missingConfig(t *testing.T) {
	dir := testutil.WriteProject(t, statusManifest, "")

	root, _ := newTestRoot(t, &testutil.FakeRunner{}, "--dir", dir, "status")
	if err := root.Execute(); err == nil {
		t.Fatal("expected error without config")
	}
}
