package ledger

import (
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"
)

const tradeColumns = "id, side, symbol, quantity, usdc_amount, price_per_token, created_at"

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTrade(row rowScanner) (Trade, error) {
	var t Trade
	var side, qty, usdc, price string

	if err := row.Scan(&t.ID, &side, &t.Symbol, &qty, &usdc, &price, &t.CreatedAt); err != nil {
		return Trade{}, err
	}
	t.Side = Side(side)

	var err error
	if t.Quantity, err = decimal.NewFromString(qty); err != nil {
		return Trade{}, fmt.Errorf("trade %s: parse quantity: %w", t.ID, err)
	}
	if t.UsdcAmount, err = decimal.NewFromString(usdc); err != nil {
		return Trade{}, fmt.Errorf("trade %s: parse usdc_amount: %w", t.ID, err)
	}
	if t.PricePerToken, err = decimal.NewFromString(price); err != nil {
		return Trade{}, fmt.Errorf("trade %s: parse price_per_token: %w", t.ID, err)
	}

	return t, nil
}

func scanPosition(row rowScanner) (Position, error) {
	var p Position
	var qty, avg string

	if err := row.Scan(&p.AgentID, &p.Symbol, &qty, &avg); err != nil {
		return Position{}, err
	}

	var err error
	if p.Quantity, err = decimal.NewFromString(qty); err != nil {
		return Position{}, fmt.Errorf("position %s/%s: parse quantity: %w", p.AgentID, p.Symbol, err)
	}
	if p.AvgCostBasis, err = decimal.NewFromString(avg); err != nil {
		return Position{}, fmt.Errorf("position %s/%s: parse avg_cost_basis: %w", p.AgentID, p.Symbol, err)
	}

	return p, nil
}

// GetTrade returns a single trade by ID.
func (l *SQLite) GetTrade(id string) (Trade, error) {
	row := l.db.QueryRow(`
		SELECT ` + tradeColumns + `
		FROM trades
		WHERE id = ?`, id)

	t, err := scanTrade(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return Trade{}, fmt.Errorf("trade %q not found", id)
		}
		return Trade{}, err
	}
	return t, nil
}

// ListTradesBySymbol returns every trade for one symbol. No ordering is
// requested; rows come back in whatever order SQLite stores them.
func (l *SQLite) ListTradesBySymbol(symbol string) ([]Trade, error) {
	rows, err := l.db.Query(`
		SELECT ` + tradeColumns + `
		FROM trades
		WHERE symbol = ?`, symbol)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Trade
	for rows.Next() {
		t, err := scanTrade(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListTrades returns every trade in the ledger.
func (l *SQLite) ListTrades() ([]Trade, error) {
	rows, err := l.db.Query(`
		SELECT ` + tradeColumns + `
		FROM trades`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Trade
	for rows.Next() {
		t, err := scanTrade(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListPositions returns every position, unfiltered.
func (l *SQLite) ListPositions() ([]Position, error) {
	rows, err := l.db.Query(`
		SELECT agent_id, symbol, quantity, avg_cost_basis
		FROM positions`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Position
	for rows.Next() {
		p, err := scanPosition(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
