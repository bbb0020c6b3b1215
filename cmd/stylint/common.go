package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"stylint/internal/config"
	"stylint/internal/diag"
	"stylint/internal/diagfmt"
	"stylint/internal/rules"
	"stylint/internal/source"
)

// setup resolves configuration and the persistent flags into one bundle
// shared by check and fix.
type setup struct {
	cfg            *config.Config
	settings       rules.Settings
	maxDiagnostics int
	jobs           int
	quiet          bool
	timings        bool
}

// newSetup loads stylint.toml (explicit path from --config, else the nearest
// one walking up from the working directory) and applies flag overrides.
// Configuration problems print to stderr as findings and never fail the run.
func newSetup(cmd *cobra.Command) (*setup, error) {
	flags := cmd.Root().PersistentFlags()

	cfgPath, err := flags.GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}

	cfgBag := diag.NewBag(64)
	var cfg *config.Config
	switch {
	case cfgPath != "":
		cfg = config.Load(cfgPath, cfgBag)
	default:
		if found, ok := config.Discover("."); ok {
			cfg = config.Load(found, cfgBag)
		} else {
			cfg = config.Default()
		}
	}
	settings := cfg.Settings(cfgBag)

	if cfgBag.Len() > 0 {
		fmt.Fprint(os.Stderr, diagfmt.FormatShort(cfgBag, source.NewFileSet(), diagfmt.PathModeAuto))
	}

	s := &setup{
		cfg:            cfg,
		settings:       settings,
		maxDiagnostics: cfg.MaxDiagnostics,
		jobs:           cfg.Jobs,
	}

	if n, err := flags.GetInt("max-diagnostics"); err == nil && n > 0 {
		s.maxDiagnostics = n
	}
	if n, err := flags.GetInt("jobs"); err == nil && n > 0 {
		s.jobs = n
	}
	if q, err := flags.GetBool("quiet"); err == nil {
		s.quiet = q
	}
	if t, err := flags.GetBool("timings"); err == nil {
		s.timings = t
	}
	return s, nil
}

// useColor resolves the --color mode against the target stream.
func useColor(cmd *cobra.Command, f *os.File) bool {
	mode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false
	}
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(f)
	}
}

// printFindings renders a bag in the requested format.
func printFindings(w *os.File, cmd *cobra.Command, bag *diag.Bag, fs *source.FileSet, format string, max int) error {
	colored := useColor(cmd, w)
	switch format {
	case "pretty":
		diagfmt.Pretty(w, bag, fs, diagfmt.PrettyOpts{
			Color:     colored,
			Max:       max,
			ShowNotes: true,
			ShowFixes: true,
		})
		return nil
	case "short":
		diagfmt.Short(w, bag, fs, diagfmt.PathModeAuto)
		return nil
	case "json":
		return diagfmt.JSON(w, bag, fs, diagfmt.JSONOpts{
			IncludePositions: true,
			Max:              max,
			IncludeNotes:     true,
			IncludeFixes:     true,
		})
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
