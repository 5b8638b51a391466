package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cnichte/npm-dependency-switcher/internal/config"
	"github.com/cnichte/npm-dependency-switcher/internal/manifest"
	"github.com/cnichte/npm-dependency-switcher/internal/project"
	"github.com/cnichte/npm-dependency-switcher/internal/switcher"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newInitCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the switch configuration interactively or from flags",
		Args:  cobra.NoArgs,
		RunE:  a.runInit,
	}
	cmd.Flags().StringArray("package", nil, "Package to switch, as name or name=localPath (repeatable)")
	cmd.Flags().Bool("detect", false, "Add packages that package.json already points at local paths")
	cmd.Flags().String("package-manager", "", "Package manager used for installs: npm, pnpm, or yarn")
	cmd.Flags().Bool("force", false, "Overwrite an existing configuration")
	return cmd
}

func (a *app) runInit(cmd *cobra.Command, _ []string) error {
	dir, _ := cmd.Flags().GetString("dir")
	configFlag, _ := cmd.Flags().GetString("config")
	specs, _ := cmd.Flags().GetStringArray("package")
	detect, _ := cmd.Flags().GetBool("detect")
	pm, _ := cmd.Flags().GetString("package-manager")
	force, _ := cmd.Flags().GetBool("force")

	configPath, err := project.ConfigPath(dir, configFlag)
	if err != nil {
		return err
	}
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("config %s already exists (use --force to overwrite)", configPath)
	}

	// Collect packages before writing anything so errors leave no file behind.
	var pkgs []config.Package
	switch {
	case len(specs) > 0 || detect:
		pkgs, err = parsePackageFlags(specs)
		if err != nil {
			return err
		}
		if detect {
			found, err := detectLocalPackages(filepath.Join(dir, project.ManifestFileName))
			if err != nil {
				return err
			}
			pkgs = mergePackages(pkgs, found)
		}
		if len(pkgs) == 0 {
			return fmt.Errorf("no packages found; pass --package name=localPath")
		}
	default:
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("interactive init requires a TTY; use --package or --detect")
		}
		pkgs, err = interactiveAddPackages(nil)
		if err != nil {
			return fmt.Errorf("interactive setup: %w", err)
		}
	}

	f := &config.File{PackageManager: pm, Packages: pkgs}
	if err := config.Save(configPath, f); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Config written to %s (%d packages)\n", configPath, len(pkgs))
	return nil
}

// parsePackageFlags parses --package values of the form name or
// name=localPath.
func parsePackageFlags(specs []string) ([]config.Package, error) {
	seen := make(map[string]bool, len(specs))
	pkgs := make([]config.Package, 0, len(specs))
	for _, s := range specs {
		name, localPath, _ := strings.Cut(s, "=")
		name = strings.TrimSpace(name)
		if err := packageNameValidator(seen)(name); err != nil {
			return nil, fmt.Errorf("--package %q: %w", s, err)
		}
		seen[name] = true
		pkgs = append(pkgs, config.Package{Name: name, LocalPath: strings.TrimSpace(localPath)})
	}
	return pkgs, nil
}

// detectLocalPackages lists dependencies that package.json currently points
// at local paths.
func detectLocalPackages(manifestPath string) ([]config.Package, error) {
	m, err := manifest.Load(manifestPath)
	if err != nil {
		return nil, err
	}
	var pkgs []config.Package
	for _, sec := range []string{manifest.Dependencies, manifest.DevDependencies} {
		s := m.Section(sec)
		if s == nil {
			continue
		}
		for _, d := range s.Entries() {
			if switcher.ModeOf(d.Spec) != switcher.ModeDev {
				continue
			}
			_, localPath, _ := strings.Cut(d.Spec, ":")
			pkgs = append(pkgs, config.Package{Name: d.Name, LocalPath: localPath})
		}
	}
	return pkgs, nil
}

// mergePackages appends the entries of extra whose names are not already in base.
func mergePackages(base, extra []config.Package) []config.Package {
	seen := make(map[string]bool, len(base))
	for _, p := range base {
		seen[p.Name] = true
	}
	for _, p := range extra {
		if seen[p.Name] {
			continue
		}
		seen[p.Name] = true
		base = append(base, p)
	}
	return base
}
