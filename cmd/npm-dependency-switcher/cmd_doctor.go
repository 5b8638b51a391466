package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cnichte/npm-dependency-switcher/internal/pkgmgr"
	"github.com/cnichte/npm-dependency-switcher/internal/project"
	"github.com/cnichte/npm-dependency-switcher/internal/ui"
	"github.com/spf13/cobra"
)

func newDoctorCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose the project and environment for common issues",
		Args:  cobra.NoArgs,
		RunE:  a.runDoctor,
	}
}

func (a *app) runDoctor(cmd *cobra.Command, _ []string) error {
	dir, _ := cmd.Flags().GetString("dir")
	configPath, _ := cmd.Flags().GetString("config")
	out := cmd.OutOrStdout()
	logger := a.logger(cmd)
	ok := true

	// Check project files.
	_, _ = fmt.Fprint(out, "Checking config and package.json... ")
	ctx, loadErr := project.Load(dir, configPath)
	if loadErr != nil {
		_, _ = fmt.Fprintln(out, ui.Error.Render("FAILED"))
		_, _ = fmt.Fprintf(out, "  %v\n", loadErr)
		ok = false
	} else {
		_, _ = fmt.Fprintf(out, "OK (%d packages)\n", len(ctx.Config.Packages))
	}

	// Check package manager.
	manager, _ := pkgmgr.Lookup("npm")
	root := dir
	if ctx != nil {
		m, err := ctx.Manager()
		if err == nil {
			manager = m
		}
		root = ctx.Root
	}
	client := pkgmgr.NewClient(a.runnerFor(cmd, logger), manager, root)

	_, _ = fmt.Fprintf(out, "Checking %s... ", manager.Name)
	if p, found := client.IsInstalled(); !found {
		_, _ = fmt.Fprintln(out, ui.Error.Render("NOT FOUND"))
		_, _ = fmt.Fprintf(out, "  %s is required to install dependencies.\n", manager.Name)
		ok = false
	} else {
		_, _ = fmt.Fprintf(out, "found at %s\n", p)
		if v, err := client.Version(); err == nil {
			_, _ = fmt.Fprintf(out, "  version %s\n", v)
		}
	}

	// Registry lookups always go through npm.
	if manager.Name != "npm" {
		_, _ = fmt.Fprint(out, "Checking npm (registry lookups)... ")
		npm, _ := pkgmgr.Lookup("npm")
		if _, found := pkgmgr.NewClient(client.Runner, npm, root).IsInstalled(); found {
			_, _ = fmt.Fprintln(out, "OK")
		} else {
			_, _ = fmt.Fprintln(out, ui.Warn.Render("NOT FOUND (prod mode lookups will be skipped)"))
		}
	}

	if ctx != nil && !checkLocalPaths(cmd, ctx) {
		ok = false
	}

	if ok {
		_, _ = fmt.Fprintln(out, "\n"+ui.Success.Render("All checks passed."))
		return nil
	}
	_, _ = fmt.Fprintln(out, "\nSome checks failed. See above for details.")
	return fmt.Errorf("doctor checks failed")
}

// checkLocalPaths verifies that each configured localPath is a directory.
// Relative paths are resolved against the project root, as the package
// manager does for file: references.
func checkLocalPaths(cmd *cobra.Command, ctx *project.Context) bool {
	out := cmd.OutOrStdout()
	ok := true
	for _, p := range ctx.Config.Packages {
		if p.Name == "" || !p.HasLocalPath() {
			continue
		}
		path := p.LocalPath
		if !filepath.IsAbs(path) {
			path = filepath.Join(ctx.Root, path)
		}
		_, _ = fmt.Fprintf(out, "  Checking %s (%s)... ", p.Name, p.LocalPath)
		info, err := os.Stat(path)
		switch {
		case err != nil:
			_, _ = fmt.Fprintln(out, ui.Error.Render("MISSING"))
			ok = false
		case !info.IsDir():
			_, _ = fmt.Fprintln(out, ui.Error.Render("NOT A DIRECTORY"))
			ok = false
		default:
			_, _ = fmt.Fprintln(out, "OK")
		}
	}
	return ok
}
