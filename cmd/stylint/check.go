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

var checkCmd = &cobra.Command{
	Use:   "check [flags] path...",
	Short: "Lint files without modifying them",
	Long:  `Check lints the given files or directories and reports every style finding`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|short|json)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	s, err := newSetup(cmd)
	if err != nil {
		return err
	}

	timer := observ.NewTimer()
	phase := timer.Begin("check")

	fileSet, results, err := driver.CheckPaths(cmd.Context(), args, s.cfg.Extensions, s.settings, s.maxDiagnostics, s.jobs)
	if err != nil {
		return err
	}

	merged := diag.NewBag(s.maxDiagnostics)
	for _, res := range results {
		merged.Merge(res.Bag)
	}
	merged.Dedup()
	merged.Sort()

	timer.End(phase, fmt.Sprintf("%d files", len(results)))

	if err := printFindings(os.Stdout, cmd, merged, fileSet, format, s.maxDiagnostics); err != nil {
		return err
	}

	errors, warnings, infos := merged.CountBySeverity()
	if !s.quiet && format == "pretty" {
		fmt.Fprint(os.Stdout, ui.Render(ui.Summary{
			Files:    len(results),
			Errors:   errors,
			Warnings: warnings,
			Infos:    infos,
		}, useColor(cmd, os.Stdout)))
	}
	if s.timings {
		fmt.Fprint(os.Stderr, timer.Summary())
	}

	if merged.HasErrors() {
		os.Exit(1)
	}
	return nil
}
