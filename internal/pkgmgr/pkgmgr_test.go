package pkgmgr

import (
	"errors"
	"strings"
	"testing"
)

// stubRunner answers Output calls from a fixed table keyed by the joined command line.
type stubRunner struct {
	outputs map[string]string
	runs    []string
	runErr  error
}

func (s *stubRunner) Output(_ string, name string, args ...string) (string, error) {
	line := strings.Join(append([]string{name}, args...), " ")
	out, ok := s.outputs[line]
	if !ok {
		return "", errors.New("exit status 1")
	}
	return out, nil
}

func (s *stubRunner) Run(_ string, name string, args ...string) error {
	s.runs = append(s.runs, strings.Join(append([]string{name}, args...), " "))
	return s.runErr
}

func (s *stubRunner) LookPath(name string) (string, error) {
	if name == "npm" {
		return "/usr/bin/npm", nil
	}
	return "", errors.New("not found")
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name     string
		lockFile string
		err      bool
	}{
		{"npm", "package-lock.json", false},
		{"pnpm", "pnpm-lock.yaml", false},
		{"yarn", "yarn.lock", false},
		{"bun", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Lookup(tt.name)
			if (err != nil) != tt.err {
				t.Fatalf("Lookup(%q) error = %v, wantErr %v", tt.name, err, tt.err)
			}
			if m.LockFile != tt.lockFile {
				t.Errorf("LockFile = %q, want %q", m.LockFile, tt.lockFile)
			}
		})
	}
}

func TestLatestVersion(t *testing.T) {
	r := &stubRunner{outputs: map[string]string{
		"npm view left-pad version": "2.3.1\n",
		"npm view blank version":    "\n",
	}}
	m, _ := Lookup("pnpm")
	c := NewClient(r, m, t.TempDir())

	v, err := c.LatestVersion("left-pad")
	if err != nil {
		t.Fatal(err)
	}
	if v != "2.3.1" {
		t.Errorf("version = %q, want %q", v, "2.3.1")
	}

	if _, err := c.LatestVersion("blank"); err == nil {
		t.Error("expected error for empty output")
	}
	if _, err := c.LatestVersion("missing"); err == nil {
		t.Error("expected error for failed lookup")
	}
}

func TestInstall(t *testing.T) {
	r := &stubRunner{}
	m, _ := Lookup("yarn")
	c := NewClient(r, m, t.TempDir())

	if err := c.Install(); err != nil {
		t.Fatal(err)
	}
	if len(r.runs) != 1 || r.runs[0] != "yarn install" {
		t.Errorf("runs = %v, want [yarn install]", r.runs)
	}

	r.runErr = errors.New("exit status 1")
	if err := c.Install(); err == nil {
		t.Error("expected install failure to propagate")
	}
}

func TestIsInstalled(t *testing.T) {
	npm, _ := Lookup("npm")
	if _, ok := NewClient(&stubRunner{}, npm, ".").IsInstalled(); !ok {
		t.Error("npm should be reported as installed")
	}
	yarn, _ := Lookup("yarn")
	if _, ok := NewClient(&stubRunner{}, yarn, ".").IsInstalled(); ok {
		t.Error("yarn should be reported as missing")
	}
}

func TestExecRunner(t *testing.T) {
	var out strings.Builder
	r := &ExecRunner{Stdout: &out, Stderr: &out}

	got, err := r.Output(t.TempDir(), "sh", "-c", "echo hello")
	if err != nil {
		t.Fatalf("Output: %v", err)
	}
	if strings.TrimSpace(got) != "hello" {
		t.Errorf("Output = %q, want hello", got)
	}

	if err := r.Run(t.TempDir(), "sh", "-c", "echo streamed"); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "streamed") {
		t.Errorf("Run output not forwarded: %q", out.String())
	}

	if err := r.Run(t.TempDir(), "sh", "-c", "exit 3"); err == nil {
		t.Error("expected error for non-zero exit")
	}
	if _, err := r.Output(t.TempDir(), "sh", "-c", "echo oops >&2; exit 1"); err == nil || !strings.Contains(err.Error(), "oops") {
		t.Errorf("Output error should include stderr, got %v", err)
	}
}
