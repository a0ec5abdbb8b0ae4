// Package prices fetches current USD prices for catalog mints from the
// Jupiter Price API.
package prices

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultBaseURL is the public Jupiter API host.
const DefaultBaseURL = "https://api.jup.ag"

// Client is a Jupiter Price API client.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a Jupiter price client. An empty baseURL selects the
// public host.
func NewClient(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Price is one entry of the /price/v3 response.
type Price struct {
	Price decimal.Decimal `json:"price"`
}

type priceResponse struct {
	Data map[string]Price `json:"data"`
}

// GetPrices returns the current USD price for each mint. Mints the API has
// no price for are simply absent from the result.
func (c *Client) GetPrices(ctx context.Context, mints []string) (map[string]Price, error) {
	if len(mints) == 0 {
		return map[string]Price{}, nil
	}

	u, err := url.Parse(c.baseURL + "/price/v3")
	if err != nil {
		return nil, fmt.Errorf("parse price URL: %w", err)
	}
	q := u.Query()
	q.Set("ids", strings.Join(mints, ","))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create price request: %w", err)
	}
	req.Header.Set("x-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("price request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("price request failed: %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}

	var pr priceResponse
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		return nil, fmt.Errorf("decode price response: %w", err)
	}

	if pr.Data == nil {
		return map[string]Price{}, nil
	}
	return pr.Data, nil
}
