// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-scout/internal/analyze"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <papers.json>",
	Short: "Produce a structured deep-dive on one paper",
	Long: `Analyze reads paper records from a JSON file and asks the
high-capability model for a structured analysis of one of them: summary,
key concepts, methodology, contributions, and future work. Use --paper to
pick a record when the file holds more than one.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		papers, err := loadPapers(args[0])
		if err != nil {
			return err
		}

		index, _ := cmd.Flags().GetInt("paper")
		if index < 1 || index > len(papers) {
			return fmt.Errorf("--paper must be between 1 and %d", len(papers))
		}
		paper := papers[index-1]

		gw, cfg, err := buildGateway()
		if err != nil {
			return err
		}

		logger := newLogger()
		defer logger.Sync()

		svc := analyze.New(gw, cfg, logger)
		result, err := svc.SinglePaperAnalysis(cmd.Context(), paper)
		if err != nil {
			return err
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		}

		fmt.Printf("%s\n\nSummary\n\n%s\n", paper.Title, result.Summary)
		sections := []struct{ name, text string }{
			{"Key Concepts", result.KeyConcepts},
			{"Methodology", result.Methodology},
			{"Contributions", result.Contributions},
			{"Future Work", result.FutureWork},
		}
		for _, s := range sections {
			fmt.Printf("\n%s\n\n%s\n", s.name, s.text)
		}
		return nil
	},
}

func init() {
	analyzeCmd.Flags().Int("paper", 1, "1-based index of the record to analyze")
	analyzeCmd.Flags().Bool("json", false, "output the analysis as JSON")

	rootCmd.AddCommand(analyzeCmd)
}
