package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/cnichte/npm-dependency-switcher/internal/pkgmgr"
	"github.com/cnichte/npm-dependency-switcher/internal/project"
	"github.com/cnichte/npm-dependency-switcher/internal/switcher"
	"github.com/cnichte/npm-dependency-switcher/internal/ui"
	"github.com/spf13/cobra"
)

func (a *app) runSwitch(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing mode: %w", switcher.ErrInvalidMode)
	}
	mode, err := switcher.ParseMode(args[0])
	if err != nil {
		return err
	}

	dir, _ := cmd.Flags().GetString("dir")
	configPath, _ := cmd.Flags().GetString("config")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	noInstall, _ := cmd.Flags().GetBool("no-install")
	logger := a.logger(cmd)

	ctx, err := project.Load(dir, configPath)
	if err != nil {
		return err
	}
	logger.Debug("project resolved", "config", ctx.ConfigPath, "manifest", ctx.ManifestPath)

	manager, err := ctx.Manager()
	if err != nil {
		return err
	}
	client := pkgmgr.NewClient(a.runnerFor(cmd, logger), manager, ctx.Root)

	out := cmd.OutOrStdout()
	printHeader(out, mode)

	var reg switcher.Registry
	if mode == switcher.ModeProd {
		reg = client
	}
	res := switcher.Apply(ctx.Manifest, ctx.Config.Packages, mode, reg)
	printOutcomes(out, res)

	if dryRun {
		_, _ = fmt.Fprintln(out, ui.Warn.Render("Dry run: package.json not written."))
		printSummary(out, mode, res)
		return nil
	}

	if err := ctx.SaveManifest(); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(out, ui.Success.Render("package.json updated."))

	if !noInstall {
		removed, err := ctx.Reset(manager)
		for _, p := range removed {
			_, _ = fmt.Fprintf(out, "Removed %s\n", filepath.Base(p))
		}
		if err != nil {
			return err
		}

		_, _ = fmt.Fprintf(out, "Running %s install ...\n", manager.Name)
		if err := client.Install(); err != nil {
			return err
		}
	}

	printSummary(out, mode, res)
	return nil
}

func printHeader(out io.Writer, mode switcher.Mode) {
	_, _ = fmt.Fprintln(out, ui.Rule())
	_, _ = fmt.Fprintf(out, "Switching dependencies to mode: %s\n", ui.Accent.Render(strings.ToUpper(string(mode))))
	_, _ = fmt.Fprintln(out, ui.Rule())
}

func printOutcomes(out io.Writer, res switcher.Result) {
	p := ui.NewProgress(out, len(res.Outcomes))
	for _, o := range res.Outcomes {
		switch {
		case o.Skipped:
			p.Skip(fmt.Sprintf("%s: skipped (%s)", o.Name, o.Reason))
		case o.Version != "":
			p.Done(fmt.Sprintf("%s -> %s (latest %s)", o.Name, o.Spec, o.Version))
		default:
			p.Done(fmt.Sprintf("%s -> %s", o.Name, o.Spec))
		}
		if o.Added {
			p.Log("not present yet, added to %s", o.Section)
		} else if !o.Skipped && o.Previous != o.Spec {
			p.Log("%s: was %s", o.Section, o.Previous)
		}
	}
}

func printSummary(out io.Writer, mode switcher.Mode, res switcher.Result) {
	_, _ = fmt.Fprintln(out, ui.Rule())
	_, _ = fmt.Fprintln(out, ui.Success.Render("Done: MODE "+strings.ToUpper(string(mode))))
	_, _ = fmt.Fprintf(out, "Updated: %d, Skipped: %d\n", len(res.Updated), len(res.Skipped))
	_, _ = fmt.Fprintln(out, ui.Rule())
}
