package main

import (
	"log/slog"

	"github.com/cnichte/npm-dependency-switcher/internal/pkgmgr"
	"github.com/spf13/cobra"
)

// app carries the dependencies shared by all commands.
type app struct {
	runner pkgmgr.Runner // nil runs the real package manager CLIs
}

func newRootCmd() *cobra.Command {
	return newRootCmdWith(&app{})
}

func newRootCmdWith(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "npm-dependency-switcher <dev|prod>",
		Short: "Switch package.json dependencies between local paths and published versions",
		Long: `Switch the packages listed in npm-dependency-switcher.config.json between
local development copies (dev: "file:<localPath>") and the latest published
registry version (prod: "^<version>"), then reinstall from scratch.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          a.runSwitch,
	}

	cmd.PersistentFlags().String("dir", ".", "Project directory containing package.json")
	cmd.PersistentFlags().String("config", "", "Switch configuration file (default <dir>/npm-dependency-switcher.config.json)")
	cmd.PersistentFlags().Bool("verbose", false, "Log executed commands and resolved paths")

	cmd.Flags().Bool("dry-run", false, "Show what would change without writing package.json or installing")
	cmd.Flags().Bool("no-install", false, "Write package.json but skip cleanup and install")

	cmd.AddCommand(
		newInitCmd(a),
		newStatusCmd(a),
		newDoctorCmd(a),
	)

	return cmd
}

// logger returns a debug logger on stderr when --verbose is set, and a
// logger that discards everything otherwise.
func (a *app) logger(cmd *cobra.Command) *slog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

// runnerFor returns the injected runner, or one that executes real commands
// attached to the command's streams.
func (a *app) runnerFor(cmd *cobra.Command, logger *slog.Logger) pkgmgr.Runner {
	if a.runner != nil {
		return a.runner
	}
	return &pkgmgr.ExecRunner{
		Stdin:  cmd.InOrStdin(),
		Stdout: cmd.OutOrStdout(),
		Stderr: cmd.ErrOrStderr(),
		Logger: logger,
	}
}
