package ledger

import (
	"encoding/csv"
	"io"
	"time"
)

// WriteTradesCSV writes trades to w with a header row.
func WriteTradesCSV(w io.Writer, trades []Trade) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"id", "side", "symbol", "quantity", "usdc_amount", "price_per_token", "created_at"}); err != nil {
		return err
	}
	for _, t := range trades {
		if err := cw.Write([]string{
			t.ID,
			string(t.Side),
			t.Symbol,
			t.Quantity.StringFixed(quantityScale),
			t.UsdcAmount.StringFixed(usdcScale),
			t.PricePerToken.StringFixed(usdcScale),
			t.CreatedAt.UTC().Format(time.RFC3339),
		}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WritePositionsCSV writes positions to w with a header row.
func WritePositionsCSV(w io.Writer, positions []Position) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"agent_id", "symbol", "quantity", "avg_cost_basis", "total_cost"}); err != nil {
		return err
	}
	for _, p := range positions {
		if err := cw.Write([]string{
			p.AgentID,
			p.Symbol,
			p.Quantity.StringFixed(quantityScale),
			p.AvgCostBasis.StringFixed(basisScale),
			p.TotalCost().StringFixed(usdcScale),
		}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
