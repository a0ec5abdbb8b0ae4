// Package catalog holds the tokenized stock (xStocks) universe that
// tradescope knows about, keyed by ticker symbol.
package catalog

import "sort"

// USDCMint is the SPL mint address of USDC, the quote currency for every
// trade in the ledger.
const USDCMint = "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v"

// Stock describes one tokenized equity.
type Stock struct {
	Symbol string
	Name   string
	Mint   string
}

var stocks = map[string]Stock{
	"AAPLx":  {Symbol: "AAPLx", Name: "Apple", Mint: "XsbEhLAtcf6HdfpFZ5xEMdqW8nfAvcsP5bdudRLJzJp"},
	"TSLAx":  {Symbol: "TSLAx", Name: "Tesla", Mint: "XsDoVfqeBukxuZHWhdvWHBhgEHjGNst4MLodqsJHzoB"},
	"NVDAx":  {Symbol: "NVDAx", Name: "NVIDIA", Mint: "Xsc9qvGR1efVDFGLrVsmkzv3qi45LTBjeUKSPmx9qEh"},
	"GOOGLx": {Symbol: "GOOGLx", Name: "Alphabet", Mint: "XsCPL9dNWBMvFtTmwcCA5v3xWPSMEBCszbQdiLLq6aN"},
	"AMZNx":  {Symbol: "AMZNx", Name: "Amazon", Mint: "Xs3eBt7uRfJX8QUs4suhyU8p2M6DoUDrJyWBa8LLZsg"},
	"MSFTx":  {Symbol: "MSFTx", Name: "Microsoft", Mint: "XspzcW1PRtgf6Wj92HCiZdjzKCyFekVD8P5Ueh3dRMX"},
	"METAx":  {Symbol: "METAx", Name: "Meta", Mint: "Xsa62P5mvPszXL1krVUnU5ar38bBSVcWAB6fmPCo5Zu"},
	"SPYx":   {Symbol: "SPYx", Name: "S&P 500 ETF", Mint: "XsoCS1TfEyfFhfvj8EtZ528L3CaKBDBRqRapnBbDF2W"},
	"COINx":  {Symbol: "COINx", Name: "Coinbase", Mint: "Xs7ZdzSHLU9ftNJsii5fCeJhoRWSC32SQGzGQtePxNu"},
	"GMEx":   {Symbol: "GMEx", Name: "GameStop", Mint: "Xsf9mBktVB9BSU5kf4nHxPq5hCBJ2j2ui3ecFGxPRGc"},
}

// Lookup returns the catalog entry for symbol.
func Lookup(symbol string) (Stock, bool) {
	s, ok := stocks[symbol]
	return s, ok
}

// Symbols returns every known ticker symbol in sorted order.
func Symbols() []string {
	out := make([]string, 0, len(stocks))
	for sym := range stocks {
		out = append(out, sym)
	}
	sort.Strings(out)
	return out
}
