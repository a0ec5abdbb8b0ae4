// Package ledger is the SQLite-backed store for executed trades and the
// per-agent positions they roll up into. Quantities and prices are stored
// as decimal strings and handled with exact decimal arithmetic.
package ledger

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Side is the direction of a trade.
type Side string

const (
	Buy  Side = "buy"
	Sell Side = "sell"
)

// Storage scales match the on-chain asset decimals: xStock mints carry
// nine decimals and USDC six. Values are fixed to these scales at the
// storage and export boundary so the TEXT columns carry a stable scale.
// A re-weighted average cost basis keeps nine places so repeated
// read-modify-write cycles do not drift.
const (
	quantityScale = 9
	usdcScale     = 6
	basisScale    = 9
)

// Trade is a single buy/sell execution of a tokenized stock, quoted in USDC.
type Trade struct {
	ID            string
	Side          Side
	Symbol        string
	Quantity      decimal.Decimal
	UsdcAmount    decimal.Decimal
	PricePerToken decimal.Decimal
	CreatedAt     time.Time
}

// Position is one agent's aggregate holding of one symbol.
type Position struct {
	AgentID      string
	Symbol       string
	Quantity     decimal.Decimal
	AvgCostBasis decimal.Decimal
}

// TotalCost is quantity times average cost basis.
func (p Position) TotalCost() decimal.Decimal {
	return p.Quantity.Mul(p.AvgCostBasis)
}

// Apply folds one execution into the position and returns the result.
// Buys raise the quantity and re-weight the average cost basis; sells
// reduce the quantity and leave the basis untouched. Selling more than is
// held is an error.
func (p Position) Apply(t Trade) (Position, error) {
	if !t.Quantity.IsPositive() {
		return p, fmt.Errorf("trade quantity must be positive, got %s", t.Quantity)
	}

	switch t.Side {
	case Buy:
		newQty := p.Quantity.Add(t.Quantity)
		cost := p.Quantity.Mul(p.AvgCostBasis).Add(t.Quantity.Mul(t.PricePerToken))
		p.Quantity = newQty
		p.AvgCostBasis = cost.DivRound(newQty, basisScale)
	case Sell:
		if t.Quantity.GreaterThan(p.Quantity) {
			return p, fmt.Errorf("sell %s exceeds held quantity %s", t.Quantity, p.Quantity)
		}
		p.Quantity = p.Quantity.Sub(t.Quantity)
		if p.Quantity.IsZero() {
			p.AvgCostBasis = decimal.Zero
		}
	default:
		return p, fmt.Errorf("unknown side %q", t.Side)
	}

	return p, nil
}

// Reader is the read-only view of the ledger that the reporter consumes.
type Reader interface {
	ListTradesBySymbol(symbol string) ([]Trade, error)
	ListPositions() ([]Position, error)
}
