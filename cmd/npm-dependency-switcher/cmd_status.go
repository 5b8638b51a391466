package main

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cnichte/npm-dependency-switcher/internal/lock"
	"github.com/cnichte/npm-dependency-switcher/internal/project"
	"github.com/cnichte/npm-dependency-switcher/internal/switcher"
	"github.com/cnichte/npm-dependency-switcher/internal/ui"
	"github.com/spf13/cobra"
)

func newStatusCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the current mode of each configured package",
		Args:  cobra.NoArgs,
		RunE:  a.runStatus,
	}
	cmd.Flags().Bool("json", false, "Output as JSON")
	return cmd
}

type packageStatus struct {
	Name      string `json:"name"`
	Section   string `json:"section,omitempty"`
	Spec      string `json:"spec,omitempty"`
	Mode      string `json:"mode"`
	LocalPath string `json:"local_path,omitempty"`
	Installed string `json:"installed,omitempty"`
}

const modeMissing = "missing"

func (a *app) runStatus(cmd *cobra.Command, _ []string) error {
	dir, _ := cmd.Flags().GetString("dir")
	configPath, _ := cmd.Flags().GetString("config")
	asJSON, _ := cmd.Flags().GetBool("json")

	ctx, err := project.Load(dir, configPath)
	if err != nil {
		return err
	}

	var lf *lock.File
	lockPath := filepath.Join(ctx.Root, lock.FileName)
	if _, statErr := os.Stat(lockPath); statErr == nil {
		lf, err = lock.Load(lockPath)
		if err != nil {
			return err
		}
	}

	statuses := collectStatuses(ctx, lf)
	out := cmd.OutOrStdout()

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(statuses)
	}

	tbl := ui.NewTable(out, "PACKAGE", "SECTION", "SPEC", "MODE", "INSTALLED").
		EmptyMessage("(no packages configured)")
	for _, s := range statuses {
		tbl.Row(s.Name, s.Section, s.Spec, s.Mode, s.Installed)
	}
	return tbl.Flush()
}

func collectStatuses(ctx *project.Context, lf *lock.File) []packageStatus {
	statuses := make([]packageStatus, 0, len(ctx.Config.Packages))
	seen := make(map[string]bool, len(ctx.Config.Packages))
	for _, p := range ctx.Config.Packages {
		if p.Name == "" || seen[p.Name] {
			continue
		}
		seen[p.Name] = true

		s := packageStatus{Name: p.Name, Mode: modeMissing, LocalPath: p.LocalPath}
		if sec, ok := ctx.Manifest.Lookup(p.Name); ok {
			spec, _ := sec.Get(p.Name)
			s.Section = sec.Name
			s.Spec = spec
			s.Mode = string(switcher.ModeOf(spec))
		}
		if inst := lf.Installed(p.Name); inst != nil {
			if inst.Link {
				s.Installed = "link:" + inst.Resolved
			} else {
				s.Installed = inst.Version
			}
		}
		statuses = append(statuses, s)
	}
	return statuses
}
