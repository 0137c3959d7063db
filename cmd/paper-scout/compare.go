// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-scout/internal/analyze"
)

var compareCmd = &cobra.Command{
	Use:   "compare <papers.json>",
	Short: "Compare papers across methodology, findings, and gaps",
	Long: `Compare reads paper records from a JSON file (as produced by
"paper-scout search --json") and asks the high-capability model for a
comparative analysis: methodology, key findings, contributions,
contradictions, and research gaps.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		papers, err := loadPapers(args[0])
		if err != nil {
			return err
		}

		gw, cfg, err := buildGateway()
		if err != nil {
			return err
		}

		logger := newLogger()
		defer logger.Sync()

		svc := analyze.New(gw, cfg, logger)
		result, err := svc.Comparison(cmd.Context(), papers)
		if err != nil {
			return err
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		}

		fmt.Printf("Summary\n\n%s\n", result.Summary)
		sections := []struct{ name, text string }{
			{"Methodology", result.Comparison.Methodology},
			{"Key Findings", result.Comparison.KeyFindings},
			{"Contributions", result.Comparison.Contributions},
			{"Contradictions", result.Comparison.Contradictions},
			{"Research Gaps", result.Comparison.ResearchGaps},
		}
		for _, s := range sections {
			fmt.Printf("\n%s\n\n%s\n", s.name, s.text)
		}
		return nil
	},
}

func init() {
	compareCmd.Flags().Bool("json", false, "output the comparison as JSON")

	rootCmd.AddCommand(compareCmd)
}
