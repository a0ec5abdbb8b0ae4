package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/moltapp/tradescope/ledger"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the ledger to CSV files",
	Long: `Export writes trades.csv and positions.csv into a directory.

Example:
  tradescope export --dir ./out`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

var (
	exportDB  string
	exportDir string
)

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportDB, "db", "d", "", "path to SQLite ledger DB (overrides config)")
	exportCmd.Flags().StringVar(&exportDir, "dir", ".", "output directory")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if exportDB != "" {
		cfg.Ledger.DBPath = exportDB
	}

	l, err := ledger.NewSQLite(cfg.Ledger.DBPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer l.Close()

	trades, err := l.ListTrades()
	if err != nil {
		return fmt.Errorf("query trades: %w", err)
	}
	positions, err := l.ListPositions()
	if err != nil {
		return fmt.Errorf("query positions: %w", err)
	}

	tradesPath := filepath.Join(exportDir, "trades.csv")
	if err := writeCSV(tradesPath, func(f *os.File) error {
		return ledger.WriteTradesCSV(f, trades)
	}); err != nil {
		return err
	}

	positionsPath := filepath.Join(exportDir, "positions.csv")
	if err := writeCSV(positionsPath, func(f *os.File) error {
		return ledger.WritePositionsCSV(f, positions)
	}); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d trades)\n", tradesPath, len(trades))
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d positions)\n", positionsPath, len(positions))
	return nil
}

func writeCSV(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
