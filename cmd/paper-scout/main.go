// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the paper-scout CLI.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/paper-scout/internal/gateway"
	"github.com/pdiddy/paper-scout/internal/secrets"
	"github.com/pdiddy/paper-scout/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds credentials loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the paper-scout CLI.
var rootCmd = &cobra.Command{
	Use:   "paper-scout",
	Short: "Research paper discovery and analysis through a generative model",
	Long: `paper-scout turns free-text research queries into structured paper
metadata by prompting a generative model backend: a web-grounded retrieval
pass finds candidate papers as prose, and a structuring pass coerces that
prose into validated records.

On top of search, the CLI offers query suggestions, multi-paper comparison,
knowledge-graph construction, single-paper analysis, and a local history of
past searches.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./paper-scout.yaml or ~/.config/paper-scout/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("paper-scout")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "paper-scout"))
		}
	}

	viper.SetEnvPrefix("PAPER_SCOUT")
	viper.AutomaticEnv()

	viper.SetDefault("gateway.fast_model", "gemini-2.5-flash-lite")
	viper.SetDefault("gateway.pro_model", "gemini-2.5-pro")
	viper.SetDefault("gateway.timeout", "90s")
	viper.SetDefault("history.state_dir", ".paper-scout")
	viper.SetDefault("history.max_entries", 20)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// gatewayConfig assembles the gateway settings from config, secrets, and
// environment.
func gatewayConfig() types.GatewayConfig {
	return types.GatewayConfig{
		Endpoint:  secrets.Resolve(loadedSecrets, viper.GetString("gateway.endpoint"), "relay-endpoint", "PAPER_SCOUT_RELAY_ENDPOINT"),
		APIKey:    secrets.Resolve(loadedSecrets, "", "relay-api-key", "PAPER_SCOUT_RELAY_API_KEY"),
		FastModel: viper.GetString("gateway.fast_model"),
		ProModel:  viper.GetString("gateway.pro_model"),
		Timeout:   viper.GetDuration("gateway.timeout"),
	}
}

// historyConfig assembles the history store settings.
func historyConfig() types.HistoryConfig {
	return types.HistoryConfig{
		StateDir:   viper.GetString("history.state_dir"),
		MaxEntries: viper.GetInt("history.max_entries"),
	}
}

// buildGateway constructs the shared relay client. Construction fails fast
// when the endpoint or credential is missing.
func buildGateway() (gateway.Invoker, types.GatewayConfig, error) {
	cfg := gatewayConfig()
	gw, err := gateway.NewRelayClient(cfg)
	if err != nil {
		return nil, cfg, err
	}
	return gw, cfg, nil
}

// newLogger builds the structured logger used for transform cause logging.
func newLogger() *zap.Logger {
	logger, err := zap.NewProduction()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// loadPapers reads a JSON file of paper records, as written by
// `paper-scout search --json`.
func loadPapers(path string) ([]types.PaperRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading papers file: %w", err)
	}
	var papers []types.PaperRecord
	if err := json.Unmarshal(data, &papers); err != nil {
		return nil, fmt.Errorf("parsing papers file %s: %w", path, err)
	}
	if len(papers) == 0 {
		return nil, fmt.Errorf("papers file %s is empty", path)
	}
	return papers, nil
}

func formatTime(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04")
}

func main() {
	// A .env file in the working directory supplements the environment
	// for local development.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
