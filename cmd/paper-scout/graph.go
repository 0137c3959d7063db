// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-scout/internal/analyze"
)

var graphCmd = &cobra.Command{
	Use:   "graph <papers.json>",
	Short: "Build a knowledge graph over papers",
	Long: `Graph reads paper records from a JSON file and asks the model to connect
them through shared methods, concepts, and findings. The result is printed
as JSON: a list of nodes and a list of labeled links. Links referencing
unknown nodes are dropped.`,
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
		graph, err := svc.KnowledgeGraph(cmd.Context(), papers)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(graph)
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
