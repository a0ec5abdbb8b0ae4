package report

import (
	"bytes"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moltapp/tradescope/ledger"
)

type fakeLedger struct {
	trades    []ledger.Trade
	positions []ledger.Position
	tradesErr error
	posErr    error

	gotSymbol string
}

func (f *fakeLedger) ListTradesBySymbol(symbol string) ([]ledger.Trade, error) {
	f.gotSymbol = symbol
	return f.trades, f.tradesErr
}

func (f *fakeLedger) ListPositions() ([]ledger.Position, error) {
	return f.positions, f.posErr
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()

	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestFormatPosition(t *testing.T) {
	t.Parallel()

	p := ledger.Position{
		AgentID:      "agent-1",
		Symbol:       "AAPLx",
		Quantity:     dec(t, "2.000000000"),
		AvgCostBasis: dec(t, "10.50"),
	}

	assert.Equal(t, "agent-1  AAPLx  qty 2.000000000 @ 10.50 = $21.00", FormatPosition(p))
}

func TestFormatTrade(t *testing.T) {
	t.Parallel()

	tr := ledger.Trade{
		ID:            "01TRADE",
		Side:          ledger.Buy,
		Symbol:        "AAPLx",
		Quantity:      dec(t, "0.001234567"),
		UsdcAmount:    dec(t, "0.1"),
		PricePerToken: dec(t, "81.02"),
	}

	line := FormatTrade(tr)
	assert.Contains(t, line, "01TRADE")
	assert.Contains(t, line, "buy")
	assert.Contains(t, line, "qty=0.001234567")
	assert.Contains(t, line, "usdc=0.10")
	assert.Contains(t, line, "price=81.020000")
}

func TestWriteSections(t *testing.T) {
	t.Parallel()

	src := &fakeLedger{
		trades: []ledger.Trade{
			{
				ID:            "T1",
				Side:          ledger.Buy,
				Symbol:        "AAPLx",
				Quantity:      dec(t, "1"),
				UsdcAmount:    dec(t, "10.50"),
				PricePerToken: dec(t, "10.50"),
			},
		},
		positions: []ledger.Position{
			{
				AgentID:      "agent-1",
				Symbol:       "AAPLx",
				Quantity:     dec(t, "2.000000000"),
				AvgCostBasis: dec(t, "10.50"),
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, src, "AAPLx"))

	out := buf.String()
	assert.Equal(t, "AAPLx", src.gotSymbol)
	assert.Contains(t, out, "\n=== Trades (AAPLx) ===\n")
	assert.Contains(t, out, "\n=== Positions ===\n")
	assert.Contains(t, out, "qty 2.000000000 @ 10.50 = $21.00")

	// Trades section precedes positions.
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("Trades")), bytes.Index(buf.Bytes(), []byte("Positions")))
}

func TestWriteEmptySectionsStillPrintHeaders(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, &fakeLedger{}, "AAPLx"))

	assert.Equal(t, "\n=== Trades (AAPLx) ===\n\n=== Positions ===\n", buf.String())
}

func TestWriteTradeQueryError(t *testing.T) {
	t.Parallel()

	src := &fakeLedger{tradesErr: errors.New("db gone")}

	var buf bytes.Buffer
	err := Write(&buf, src, "AAPLx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query trades")
	assert.Empty(t, buf.String(), "nothing written on trade query failure")
}

func TestWritePositionQueryError(t *testing.T) {
	t.Parallel()

	src := &fakeLedger{posErr: errors.New("db gone")}

	var buf bytes.Buffer
	err := Write(&buf, src, "AAPLx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query positions")
}
