package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/moltapp/tradescope/ledger"
	"github.com/moltapp/tradescope/report"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Print trades for one symbol and every agent position",
	Long: `Check renders the diagnostic report: all trades recorded for one
symbol, then every agent position with its total cost. Empty sections
still print their header, and the command exits 0 either way.

Examples:
  tradescope check
  tradescope check --symbol TSLAx --db ./tradescope.sqlite`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

var (
	checkDB     string
	checkSymbol string
)

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(&checkDB, "db", "d", "", "path to SQLite ledger DB (overrides config)")
	checkCmd.Flags().StringVarP(&checkSymbol, "symbol", "s", "", "stock symbol to list trades for (overrides config)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if checkDB != "" {
		cfg.Ledger.DBPath = checkDB
	}
	if checkSymbol != "" {
		cfg.Report.Symbol = checkSymbol
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
	}

	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	l, err := ledger.NewSQLite(cfg.Ledger.DBPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer l.Close()

	log.Debug("rendering report",
		zap.String("db", cfg.Ledger.DBPath),
		zap.String("symbol", cfg.Report.Symbol),
	)

	return report.Write(cmd.OutOrStdout(), l, cfg.Report.Symbol)
}
