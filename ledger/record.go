package ledger

import (
	"database/sql"
	"errors"
	"fmt"
)

// execer is satisfied by both *sql.DB and *sql.Tx so the write helpers can
// run standalone or inside a transaction.
type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
	QueryRow(query string, args ...any) *sql.Row
}

// RecordTrade inserts one executed trade.
func (l *SQLite) RecordTrade(t Trade) error {
	return insertTrade(l.db, t)
}

// RecordExecution inserts the trade and folds it into agentID's position
// in a single transaction: a trade the position rejects (unknown side,
// oversell) leaves no row behind.
func (l *SQLite) RecordExecution(agentID string, t Trade) (Position, error) {
	tx, err := l.db.Begin()
	if err != nil {
		return Position{}, err
	}
	defer tx.Rollback()

	if err := insertTrade(tx, t); err != nil {
		return Position{}, err
	}
	pos, err := applyTrade(tx, agentID, t)
	if err != nil {
		return Position{}, err
	}
	if err := tx.Commit(); err != nil {
		return Position{}, err
	}
	return pos, nil
}

// ApplyTrade folds an executed trade into agentID's position for the
// trade's symbol, creating the position row on first contact.
func (l *SQLite) ApplyTrade(agentID string, t Trade) (Position, error) {
	return applyTrade(l.db, agentID, t)
}

// GetPosition returns one agent's position in one symbol. A missing row
// surfaces as sql.ErrNoRows so callers can distinguish "flat" from failure.
func (l *SQLite) GetPosition(agentID, symbol string) (Position, error) {
	return getPosition(l.db, agentID, symbol)
}

func insertTrade(q execer, t Trade) error {
	_, err := q.Exec(`
		INSERT INTO trades
		(id, side, symbol, quantity, usdc_amount, price_per_token, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.ID, string(t.Side), t.Symbol, t.Quantity.StringFixed(quantityScale),
		t.UsdcAmount.StringFixed(usdcScale), t.PricePerToken.StringFixed(usdcScale), t.CreatedAt,
	)
	return err
}

func applyTrade(q execer, agentID string, t Trade) (Position, error) {
	pos, err := getPosition(q, agentID, t.Symbol)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return Position{}, err
	}
	if errors.Is(err, sql.ErrNoRows) {
		pos = Position{AgentID: agentID, Symbol: t.Symbol}
	}

	next, err := pos.Apply(t)
	if err != nil {
		return Position{}, fmt.Errorf("apply trade %s: %w", t.ID, err)
	}

	if err := upsertPosition(q, next); err != nil {
		return Position{}, err
	}
	return next, nil
}

func getPosition(q execer, agentID, symbol string) (Position, error) {
	row := q.QueryRow(`
		SELECT agent_id, symbol, quantity, avg_cost_basis
		FROM positions
		WHERE agent_id = ? AND symbol = ?`, agentID, symbol)

	return scanPosition(row)
}

func upsertPosition(q execer, p Position) error {
	_, err := q.Exec(`
		INSERT INTO positions (agent_id, symbol, quantity, avg_cost_basis)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(agent_id, symbol) DO UPDATE SET
			quantity = excluded.quantity,
			avg_cost_basis = excluded.avg_cost_basis`,
		p.AgentID, p.Symbol, p.Quantity.StringFixed(quantityScale), p.AvgCostBasis.StringFixed(basisScale),
	)
	return err
}
