package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"stylint/internal/diag"
	"stylint/internal/driver"
	"stylint/internal/observ"
	"stylint/internal/ui"
)

var fixCmd = &cobra.Command{
	Use:   "fix [flags] path...",
	Short: "Apply automatic fixes to files",
	Long:  `Fix lints the given files or directories and rewrites them with every safe automatic fix applied`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFix,
}

func init() {
	fixCmd.Flags().String("format", "pretty", "output format (pretty|short|json)")
	fixCmd.Flags().Bool("dry-run", false, "report fixes without writing files")
}

func runFix(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	dryRun, err := cmd.Flags().GetBool("dry-run")
	if err != nil {
		return fmt.Errorf("failed to get dry-run flag: %w", err)
	}

	s, err := newSetup(cmd)
	if err != nil {
		return err
	}

	timer := observ.NewTimer()
	phase := timer.Begin("fix")

	fileSet, results, err := driver.FixPaths(cmd.Context(), args, s.cfg.Extensions, s.settings, s.maxDiagnostics, s.jobs, dryRun)
	if err != nil {
		return err
	}

	merged := diag.NewBag(s.maxDiagnostics)
	applied, skipped, changed := 0, 0, 0
	for _, res := range results {
		merged.Merge(res.Bag)
		applied += res.Applied
		skipped += res.Skipped
		if res.Changed {
			changed++
		}
	}
	merged.Dedup()
	merged.Sort()

	timer.End(phase, fmt.Sprintf("%d files, %d fixes", len(results), applied))

	if err := printFindings(os.Stdout, cmd, merged, fileSet, format, s.maxDiagnostics); err != nil {
		return err
	}

	errors, warnings, infos := merged.CountBySeverity()
	if !s.quiet && format == "pretty" {
		fmt.Fprint(os.Stdout, ui.Render(ui.Summary{
			Files:        len(results),
			Errors:       errors,
			Warnings:     warnings,
			Infos:        infos,
			FixRun:       true,
			FixesApplied: applied,
			FixesSkipped: skipped,
			FilesChanged: changed,
		}, useColor(cmd, os.Stdout)))
		if dryRun && applied > 0 {
			fmt.Fprintln(os.Stdout, "dry run: no files were written")
		}
	}
	if s.timings {
		fmt.Fprint(os.Stderr, timer.Summary())
	}

	if merged.HasErrors() {
		os.Exit(1)
	}
	return nil
}
