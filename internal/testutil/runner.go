package testutil

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// FakeRunner stands in for the package manager CLIs. "npm view <pkg>
// version" answers from Versions; "<pm> install" creates node_modules and
// the manager's lock file in the project directory, mimicking a real
// install.
type FakeRunner struct {
	Versions   map[string]string
	InstallErr error
	Missing    map[string]bool // binaries LookPath should not find

	mu    sync.Mutex
	calls []string
}

// Output implements pkgmgr.Runner.
func (f *FakeRunner) Output(_ string, name string, args ...string) (string, error) {
	f.record(name, args)
	switch {
	case len(args) == 3 && args[0] == "view" && args[2] == "version":
		v, ok := f.Versions[args[1]]
		if !ok {
			return "", errors.New("npm ERR! code E404")
		}
		return v + "\n", nil
	case len(args) == 1 && args[0] == "--version":
		return "10.0.0\n", nil
	}
	return "", errors.New("unexpected command: " + name + " " + strings.Join(args, " "))
}

// Run implements pkgmgr.Runner.
func (f *FakeRunner) Run(dir, name string, args ...string) error {
	f.record(name, args)
	if len(args) == 1 && args[0] == "install" {
		if f.InstallErr != nil {
			return f.InstallErr
		}
		if err := os.MkdirAll(filepath.Join(dir, "node_modules"), 0755); err != nil { //nolint:gosec // test directory
			return err
		}
		return os.WriteFile(filepath.Join(dir, lockFileFor(name)), []byte("{}\n"), 0644) //nolint:gosec // test file
	}
	return nil
}

// LookPath implements pkgmgr.Runner.
func (f *FakeRunner) LookPath(name string) (string, error) {
	if f.Missing[name] {
		return "", errors.New("executable file not found in $PATH")
	}
	return "/usr/local/bin/" + name, nil
}

// Calls returns every command line run so far.
func (f *FakeRunner) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.calls))
	copy(out, f.calls)
	return out
}

// Installed reports whether an install command was run.
func (f *FakeRunner) Installed() bool {
	for _, c := range f.Calls() {
		if strings.HasSuffix(c, " install") {
			return true
		}
	}
	return false
}

func (f *FakeRunner) record(name string, args []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, strings.Join(append([]string{name}, args...), " "))
}

func lockFileFor(manager string) string {
	switch manager {
	case "pnpm":
		return "pnpm-lock.yaml"
	case "yarn":
		return "yarn.lock"
	default:
		return "package-lock.json"
	}
}
