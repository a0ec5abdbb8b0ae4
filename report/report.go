// Package report renders the trade and position state of the ledger as a
// plain-text report, one section per table.
package report

import (
	"fmt"
	"io"

	"github.com/moltapp/tradescope/ledger"
)

// Write renders the full report to w: trades for one symbol first, then
// every position. Each section is preceded by a blank line and a header,
// even when it has no rows. The ledger is only read, never written.
func Write(w io.Writer, src ledger.Reader, symbol string) error {
	trades, err := src.ListTradesBySymbol(symbol)
	if err != nil {
		return fmt.Errorf("query trades: %w", err)
	}

	fmt.Fprintf(w, "\n=== Trades (%s) ===\n", symbol)
	for _, t := range trades {
		fmt.Fprintln(w, FormatTrade(t))
	}

	positions, err := src.ListPositions()
	if err != nil {
		return fmt.Errorf("query positions: %w", err)
	}

	fmt.Fprint(w, "\n=== Positions ===\n")
	for _, p := range positions {
		fmt.Fprintln(w, FormatPosition(p))
	}

	return nil
}

// FormatTrade renders one trade line: id, side, quantity, USDC amount,
// price per token.
func FormatTrade(t ledger.Trade) string {
	return fmt.Sprintf("%s  %-4s  qty=%s  usdc=%s  price=%s",
		t.ID,
		t.Side,
		t.Quantity.StringFixed(9),
		t.UsdcAmount.StringFixed(2),
		t.PricePerToken.StringFixed(6),
	)
}

// FormatPosition renders one position line. Quantities keep nine decimal
// places; money keeps two, with the total cost currency-prefixed.
func FormatPosition(p ledger.Position) string {
	return fmt.Sprintf("%s  %s  qty %s @ %s = $%s",
		p.AgentID,
		p.Symbol,
		p.Quantity.StringFixed(9),
		p.AvgCostBasis.StringFixed(2),
		p.TotalCost().StringFixed(2),
	)
}
