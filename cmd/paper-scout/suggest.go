// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-scout/internal/analyze"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest <query>",
	Short: "Suggest related research queries",
	Long: `Suggest asks the model for related queries a researcher exploring the
topic might try next. The transform is best-effort: on any failure it
prints nothing and exits successfully.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		gw, cfg, err := buildGateway()
		if err != nil {
			return err
		}

		logger := newLogger()
		defer logger.Sync()

		svc := analyze.New(gw, cfg, logger)
		for _, s := range svc.Suggestions(cmd.Context(), strings.Join(args, " ")) {
			fmt.Println(s)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(suggestCmd)
}
