package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/moltapp/tradescope/config"
	"github.com/moltapp/tradescope/dotenv"
	"github.com/moltapp/tradescope/logging"
)

var rootCmd = &cobra.Command{
	Use:   "tradescope",
	Short: "Inspect tokenized-stock trades and agent positions",
	Long: `Tradescope is a diagnostic CLI for MoltApp-style trading state.

It provides tools for:
  - Printing trades for a symbol and all agent positions (check)
  - Recording executions and folding them into positions (record)
  - Fetching live xStock prices from the Jupiter Price API (prices)
  - Exporting the ledger to CSV (export)`,
	SilenceUsage: true,
}

var (
	envFile string
	cfgFile string
	verbose bool
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env", ".env", "env file applied to the environment (best effort)")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML or JSON)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// loadConfig resolves the configuration every command starts from: the env
// file is applied first (pre-existing environment wins), then the optional
// config file, then environment overrides.
func loadConfig() (*config.Config, error) {
	dotenv.Load(envFile)

	cfg := config.Default()
	if cfgFile != "" {
		var err error
		cfg, err = config.LoadFromFile(cfgFile)
		if err != nil {
			return nil, err
		}
	}
	cfg.FromEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func newLogger() (*zap.Logger, error) {
	log, err := logging.New(verbose)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return log, nil
}
