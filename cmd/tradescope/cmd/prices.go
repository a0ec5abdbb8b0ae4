package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/moltapp/tradescope/catalog"
	"github.com/moltapp/tradescope/prices"
)

var pricesCmd = &cobra.Command{
	Use:   "prices [symbol...]",
	Short: "Fetch current xStock prices from the Jupiter Price API",
	Long: `Prices resolves catalog symbols to their SPL mints and fetches
current USD prices from Jupiter. With no arguments the whole catalog is
priced. Requires JUPITER_API_KEY.

Examples:
  tradescope prices
  tradescope prices AAPLx TSLAx`,
	RunE: runPrices,
}

func init() {
	rootCmd.AddCommand(pricesCmd)
}

func runPrices(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.ValidateJupiter(); err != nil {
		return err
	}

	symbols := args
	if len(symbols) == 0 {
		symbols = catalog.Symbols()
	}

	mints := make([]string, 0, len(symbols))
	for _, sym := range symbols {
		s, ok := catalog.Lookup(sym)
		if !ok {
			return fmt.Errorf("unknown symbol: %s", sym)
		}
		mints = append(mints, s.Mint)
	}

	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	client := prices.NewClient(cfg.Jupiter.APIKey, cfg.Jupiter.BaseURL)

	log.Debug("fetching prices", zap.Int("mints", len(mints)))
	got, err := client.GetPrices(cmd.Context(), mints)
	if err != nil {
		return fmt.Errorf("fetch prices: %w", err)
	}

	for _, sym := range symbols {
		s, _ := catalog.Lookup(sym)
		p, ok := got[s.Mint]
		if !ok {
			fmt.Fprintf(cmd.OutOrStdout(), "%-7s %-12s n/a\n", s.Symbol, s.Name)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%-7s %-12s $%s\n", s.Symbol, s.Name, p.Price.StringFixed(2))
	}
	return nil
}
