// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-scout/internal/history"
	"github.com/pdiddy/paper-scout/internal/scout"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search for papers matching a research query",
	Long: `Search runs the two-stage pipeline: a web-grounded retrieval pass asks
the high-capability model for candidate papers as plain prose, and a
structuring pass coerces that prose into validated paper records.

Completed searches are recorded in the local history database unless
--no-save is given.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		asJSON, _ := cmd.Flags().GetBool("json")
		noSave, _ := cmd.Flags().GetBool("no-save")

		gw, cfg, err := buildGateway()
		if err != nil {
			return err
		}

		pipeline := scout.New(gw, cfg)
		records, err := pipeline.SearchPapers(cmd.Context(), query)
		if err != nil {
			return err
		}

		if asJSON {
			if err := scout.FormatJSON(records, os.Stdout); err != nil {
				return err
			}
		} else {
			scout.FormatTable(records, os.Stdout)
		}

		if noSave || len(records) == 0 {
			return nil
		}

		store, err := history.NewStore(historyConfig())
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: history store unavailable: %v\n", err)
			return nil
		}
		defer store.Close()

		if _, err := store.Record(cmd.Context(), query, records); err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not record search: %v\n", err)
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().Bool("json", false, "output records as JSON")
	searchCmd.Flags().Bool("no-save", false, "skip recording the search in history")

	rootCmd.AddCommand(searchCmd)
}
