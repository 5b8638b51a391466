package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cnichte/npm-dependency-switcher/internal/config"
	"github.com/cnichte/npm-dependency-switcher/internal/manifest"
	"github.com/cnichte/npm-dependency-switcher/internal/pkgmgr"
)

// ManifestFileName is the project manifest.
const ManifestFileName = "package.json"

// ErrNotFound is wrapped by Resolve when a required file is missing.
var ErrNotFound = errors.New("not found")

// Context holds the resolved paths and loaded documents for a project.
type Context struct {
	Root         string
	ConfigPath   string
	ManifestPath string
	Config       *config.File       // nil until Load
	Manifest     *manifest.Manifest // nil until Load
}

// ConfigPath resolves the configuration file location. An explicit path is
// resolved against the working directory; otherwise the default file name
// inside root is used.
func ConfigPath(root, explicit string) (string, error) {
	if explicit != "" {
		p, err := filepath.Abs(explicit)
		if err != nil {
			return "", fmt.Errorf("resolving config path: %w", err)
		}
		return p, nil
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("resolving project root: %w", err)
	}
	return filepath.Join(abs, config.DefaultFileName), nil
}

// Resolve computes the project paths and checks that the configuration and
// manifest both exist as regular files. Nothing is read yet.
func Resolve(root, configPath string) (*Context, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving project root: %w", err)
	}
	cfgPath, err := ConfigPath(abs, configPath)
	if err != nil {
		return nil, err
	}
	ctx := &Context{
		Root:         abs,
		ConfigPath:   cfgPath,
		ManifestPath: filepath.Join(abs, ManifestFileName),
	}
	if err := requireFile(ctx.ConfigPath, "config"); err != nil {
		return nil, err
	}
	if err := requireFile(ctx.ManifestPath, ManifestFileName); err != nil {
		return nil, err
	}
	return ctx, nil
}

func requireFile(path, label string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%s %w: %s", label, ErrNotFound, path)
		}
		return fmt.Errorf("checking %s: %w", label, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s is not a regular file: %s", label, path)
	}
	return nil
}

// Load resolves the project and reads both documents.
func Load(root, configPath string) (*Context, error) {
	ctx, err := Resolve(root, configPath)
	if err != nil {
		return nil, err
	}
	if err := ctx.Load(); err != nil {
		return nil, err
	}
	return ctx, nil
}

// Load reads the configuration and manifest into the context.
func (c *Context) Load() error {
	cfg, err := config.Load(c.ConfigPath)
	if err != nil {
		return err
	}
	m, err := manifest.Load(c.ManifestPath)
	if err != nil {
		return err
	}
	c.Config = cfg
	c.Manifest = m
	return nil
}

// SaveManifest writes the in-memory manifest back to package.json.
func (c *Context) SaveManifest() error {
	return manifest.Save(c.ManifestPath, c.Manifest)
}

// Manager returns the package manager named in the configuration.
func (c *Context) Manager() (pkgmgr.Manager, error) {
	name := "npm"
	if c.Config != nil {
		name = c.Config.EffectivePackageManager()
	}
	return pkgmgr.Lookup(name)
}

// Reset removes the dependency cache directory and the lock file. Missing
// entries are not an error; it returns the paths actually removed.
func (c *Context) Reset(m pkgmgr.Manager) ([]string, error) {
	var removed []string
	for _, name := range []string{pkgmgr.CacheDir, m.LockFile} {
		p := filepath.Join(c.Root, name)
		if _, err := os.Lstat(p); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return removed, fmt.Errorf("checking %s: %w", name, err)
		}
		if err := os.RemoveAll(p); err != nil {
			return removed, fmt.Errorf("removing %s: %w", name, err)
		}
		removed = append(removed, p)
	}
	return removed, nil
}
