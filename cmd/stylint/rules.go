package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"stylint/internal/rules"
)

var rulesCmd = &cobra.Command{
	Use:   "rules [flags]",
	Short: "List the available rules",
	Long:  `Rules prints every rule with its code, default severity and whether it carries an automatic fix`,
	Args:  cobra.NoArgs,
	RunE:  runRules,
}

func init() {
	rulesCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

type ruleJSON struct {
	ID          string `json:"id"`
	Code        string `json:"code"`
	Severity    string `json:"severity"`
	Fixable     bool   `json:"fixable"`
	Description string `json:"description"`
}

func runRules(cmd *cobra.Command, _ []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	all := rules.All()

	switch format {
	case "pretty":
		for _, r := range all {
			fixable := " "
			if r.CanFix() {
				fixable = "*"
			}
			fmt.Fprintf(os.Stdout, "%s %-25s %-8s %-8s %s\n",
				fixable, r.ID(), r.Code().ID(), r.DefaultSeverity().String(), r.Description())
		}
		fmt.Fprintln(os.Stdout, "\nrules marked * carry an automatic fix")
		return nil
	case "json":
		out := make([]ruleJSON, 0, len(all))
		for _, r := range all {
			out = append(out, ruleJSON{
				ID:          r.ID(),
				Code:        r.Code().ID(),
				Severity:    r.DefaultSeverity().String(),
				Fixable:     r.CanFix(),
				Description: r.Description(),
			})
		}
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(out)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
