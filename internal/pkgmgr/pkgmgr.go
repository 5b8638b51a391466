package pkgmgr

import (
	"fmt"
	"strings"
)

// CacheDir is the dependency cache directory every supported manager installs into.
const CacheDir = "node_modules"

// Manager describes a package manager CLI.
type Manager struct {
	Name     string
	LockFile string
}

var managers = map[string]Manager{
	"npm":  {Name: "npm", LockFile: "package-lock.json"},
	"pnpm": {Name: "pnpm", LockFile: "pnpm-lock.yaml"},
	"yarn": {Name: "yarn", LockFile: "yarn.lock"},
}

// Lookup returns the manager with the given name.
func Lookup(name string) (Manager, error) {
	m, ok := managers[name]
	if !ok {
		return Manager{}, fmt.Errorf("unknown package manager: %q (must be npm, pnpm, or yarn)", name)
	}
	return m, nil
}

// Client runs package manager commands for a project directory.
type Client struct {
	Runner  Runner
	Manager Manager
	Dir     string
}

// NewClient returns a client for the project in dir.
func NewClient(r Runner, m Manager, dir string) *Client {
	return &Client{Runner: r, Manager: m, Dir: dir}
}

// LatestVersion asks the npm registry for the latest published version of
// pkg. Registry lookups always go through npm, whichever manager installs.
func (c *Client) LatestVersion(pkg string) (string, error) {
	out, err := c.Runner.Output(c.Dir, "npm", "view", pkg, "version")
	if err != nil {
		return "", fmt.Errorf("npm view %s: %w", pkg, err)
	}
	v := strings.TrimSpace(out)
	if v == "" {
		return "", fmt.Errorf("npm view %s: empty version", pkg)
	}
	return v, nil
}

// Install runs "<manager> install" with the terminal attached.
func (c *Client) Install() error {
	if err := c.Runner.Run(c.Dir, c.Manager.Name, "install"); err != nil {
		return fmt.Errorf("%s install: %w", c.Manager.Name, err)
	}
	return nil
}

// Version returns the manager's reported version.
func (c *Client) Version() (string, error) {
	out, err := c.Runner.Output(c.Dir, c.Manager.Name, "--version")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// IsInstalled returns true if the manager is available on PATH.
func (c *Client) IsInstalled() (string, bool) {
	p, err := c.Runner.LookPath(c.Manager.Name)
	if err != nil {
		return "", false
	}
	return p, true
}
