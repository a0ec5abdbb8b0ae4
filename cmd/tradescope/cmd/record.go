package cmd

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/moltapp/tradescope/catalog"
	"github.com/moltapp/tradescope/id"
	"github.com/moltapp/tradescope/ledger"
	"github.com/moltapp/tradescope/report"
)

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record an executed trade and update the agent's position",
	Long: `Record inserts one executed trade into the ledger and folds it into
the owning agent's position. Buys re-weight the average cost basis; sells
reduce the held quantity.

Example:
  tradescope record --agent agent-1 --symbol AAPLx --side buy --qty 2.000000000 --price 10.50`,
	Args: cobra.NoArgs,
	RunE: runRecord,
}

var (
	recordDB     string
	recordAgent  string
	recordSymbol string
	recordSide   string
	recordQty    string
	recordPrice  string
	recordUsdc   string
)

func init() {
	rootCmd.AddCommand(recordCmd)

	recordCmd.Flags().StringVarP(&recordDB, "db", "d", "", "path to SQLite ledger DB (overrides config)")
	recordCmd.Flags().StringVar(&recordAgent, "agent", "", "owning agent ID")
	recordCmd.Flags().StringVar(&recordSymbol, "symbol", "", "stock symbol")
	recordCmd.Flags().StringVar(&recordSide, "side", "", "trade side: buy or sell")
	recordCmd.Flags().StringVar(&recordQty, "qty", "", "stock quantity (decimal)")
	recordCmd.Flags().StringVar(&recordPrice, "price", "", "price per token in USDC (decimal)")
	recordCmd.Flags().StringVar(&recordUsdc, "usdc", "", "USDC amount (default qty*price)")

	for _, f := range []string{"agent", "symbol", "side", "qty", "price"} {
		_ = recordCmd.MarkFlagRequired(f)
	}
}

func runRecord(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if recordDB != "" {
		cfg.Ledger.DBPath = recordDB
	}

	if _, ok := catalog.Lookup(recordSymbol); !ok {
		return fmt.Errorf("unknown symbol: %s", recordSymbol)
	}

	side := ledger.Side(recordSide)
	if side != ledger.Buy && side != ledger.Sell {
		return fmt.Errorf("side must be %q or %q, got %q", ledger.Buy, ledger.Sell, recordSide)
	}

	qty, err := decimal.NewFromString(recordQty)
	if err != nil {
		return fmt.Errorf("parse qty: %w", err)
	}
	price, err := decimal.NewFromString(recordPrice)
	if err != nil {
		return fmt.Errorf("parse price: %w", err)
	}

	usdc := qty.Mul(price)
	if recordUsdc != "" {
		usdc, err = decimal.NewFromString(recordUsdc)
		if err != nil {
			return fmt.Errorf("parse usdc: %w", err)
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

	t := ledger.Trade{
		ID:            id.New(),
		Side:          side,
		Symbol:        recordSymbol,
		Quantity:      qty,
		UsdcAmount:    usdc,
		PricePerToken: price,
		CreatedAt:     time.Now().UTC(),
	}

	pos, err := l.RecordExecution(recordAgent, t)
	if err != nil {
		return fmt.Errorf("record trade: %w", err)
	}

	log.Debug("trade recorded", zap.String("id", t.ID), zap.String("agent", recordAgent))

	fmt.Fprintln(cmd.OutOrStdout(), report.FormatTrade(t))
	fmt.Fprintln(cmd.OutOrStdout(), report.FormatPosition(pos))
	return nil
}
