package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"stylint/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "stylint",
	Short: "Style linter and fixer for .sx source files",
	Long:  `stylint checks source files against the house style guide and can rewrite them to conform`,
}

func main() {
	rootCmd.Version = version.Version
	rootCmd.SilenceUsage = true

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(fixCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().String("config", "", "path to stylint.toml (default: nearest one upward from the working directory)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress the summary block")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().Int("max-diagnostics", 0, "maximum number of diagnostics to collect (0: from config)")
	rootCmd.PersistentFlags().Int("jobs", 0, "number of files linted in parallel (0: from config, then GOMAXPROCS)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
