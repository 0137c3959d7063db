// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-scout/internal/history"
	"github.com/pdiddy/paper-scout/internal/scout"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List and export past searches",
	Long: `History lists searches recorded in the local database. Use --show to
print the records of one search, or --export to dump the full history as
YAML on stdout.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := history.NewStore(historyConfig())
		if err != nil {
			return err
		}
		defer store.Close()

		if export, _ := cmd.Flags().GetBool("export"); export {
			return store.ExportYAML(cmd.Context(), os.Stdout)
		}

		if showID, _ := cmd.Flags().GetInt64("show"); showID > 0 {
			records, err := store.Papers(cmd.Context(), showID)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				return fmt.Errorf("no search with ID %d", showID)
			}
			scout.FormatTable(records, os.Stdout)
			return nil
		}

		max, _ := cmd.Flags().GetInt("max")
		entries, err := store.List(cmd.Context(), max)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("No searches recorded.")
			return nil
		}

		fmt.Printf("%-6s  %-18s  %-7s  %s\n", "ID", "When", "Papers", "Query")
		for _, e := range entries {
			fmt.Printf("%-6d  %-18s  %-7d  %s\n",
				e.ID, formatTime(e.CreatedAt), e.ResultCount, e.Query)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("max", 0, "maximum number of searches to list")
	historyCmd.Flags().Int64("show", 0, "print the records of one search by ID")
	historyCmd.Flags().Bool("export", false, "export the full history as YAML")

	rootCmd.AddCommand(historyCmd)
}
