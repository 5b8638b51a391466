package pkgmgr

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"
)

// Runner executes external commands.
type Runner interface {
	// Output runs name in dir and returns its captured stdout.
	Output(dir, name string, args ...string) (string, error)
	// Run runs name in dir with the runner's terminal streams attached.
	Run(dir, name string, args ...string) error
	// LookPath resolves name on PATH.
	LookPath(name string) (string, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

// Output executes a command and returns its stdout. Stderr is captured and
// included in the error message on failure.
func (r *ExecRunner) Output(dir, name string, args ...string) (string, error) {
	r.log(dir, name, args)
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%s %s: %w: %s", name, strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}

// Run executes a command with the runner's streams attached, so progress
// output from the child is visible as it happens.
func (r *ExecRunner) Run(dir, name string, args ...string) error {
	r.log(dir, name, args)
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}
	return nil
}

// LookPath resolves name on PATH.
func (r *ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

func (r *ExecRunner) log(dir, name string, args []string) {
	if r.Logger == nil {
		return
	}
	r.Logger.Debug("exec", "dir", dir, "cmd", name, "args", args)
}

