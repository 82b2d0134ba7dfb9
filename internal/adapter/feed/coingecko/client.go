package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"chronos-wallet/internal/core/domain"
	"chronos-wallet/internal/core/ports"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// tokenIDs maps wallet symbols to CoinGecko identifiers.
var tokenIDs = map[string]string{
	"SOL":   "solana",
	"ETH":   "ethereum",
	"BTC":   "bitcoin",
	"MATIC": "matic-network",
	"USDC":  "usd-coin",
}

// defaultQuotes is the hardcoded fallback pair per symbol, used when a
// successful response is missing an identifier or a field.
var defaultQuotes = map[string]ports.PriceQuote{
	"SOL":   {Price: 160.00, Change24h: 2.5},
	"ETH":   {Price: 3200.00, Change24h: -1.2},
	"BTC":   {Price: 67000.00, Change24h: 3.8},
	"MATIC": {Price: 0.85, Change24h: 5.2},
	"USDC":  {Price: 1.00, Change24h: 0.0},
}

// DefaultQuotes returns a copy of the hardcoded fallback table.
func DefaultQuotes() map[string]ports.PriceQuote {
	quotes := make(map[string]ports.PriceQuote, len(defaultQuotes))
	for sym, q := range defaultQuotes {
		quotes[sym] = q
	}
	return quotes
}

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client implements ports.PriceFeed and ports.ChartProvider against the
// CoinGecko v3 API. Outbound calls go through a client-side rate limiter:
// the public API throttles aggressively and the poller plus chart views can
// overlap.
type Client struct {
	baseURL    string
	httpClient HTTPClient
	limiter    *rate.Limiter
	log        zerolog.Logger
}

// New creates a CoinGecko client. rps/burst bound outbound request volume.
func New(baseURL string, httpClient HTTPClient, rps float64, burst int, log zerolog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		limiter:    rate.NewLimiter(rate.Limit(rps), burst),
		log:        log,
	}
}

// priceEntry mirrors one identifier's fields in the simple/price response.
// Pointers distinguish a missing field from a zero value.
type priceEntry struct {
	USD          *float64 `json:"usd"`
	USD24hChange *float64 `json:"usd_24h_change"`
}

// FetchPrices fetches USD price and 24h change for the wallet's token set.
// Symbols missing from the response fall back to the hardcoded defaults, so
// a nil error always comes with a complete map. A transport or decode
// failure returns an error and no partial data.
func (c *Client) FetchPrices(ctx context.Context) (map[string]ports.PriceQuote, error) {
	ids := make([]string, 0, len(tokenIDs))
	for _, id := range tokenIDs {
		ids = append(ids, id)
	}

	q := url.Values{}
	q.Set("ids", strings.Join(ids, ","))
	q.Set("vs_currencies", "usd")
	q.Set("include_24hr_change", "true")

	body, err := c.get(ctx, "/simple/price?"+q.Encode())
	if err != nil {
		return nil, err
	}

	var data map[string]priceEntry
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("decoding price response: %w", err)
	}

	quotes := make(map[string]ports.PriceQuote, len(tokenIDs))
	for sym, id := range tokenIDs {
		quote := defaultQuotes[sym]
		if entry, ok := data[id]; ok {
			if entry.USD != nil {
				quote.Price = *entry.USD
			}
			if entry.USD24hChange != nil {
				quote.Change24h = *entry.USD24hChange
			}
		} else {
			c.log.Debug().Str("symbol", sym).Msg("identifier missing from price response, using default")
		}
		quotes[sym] = quote
	}

	return quotes, nil
}

// chartResponse mirrors the market_chart response.
type chartResponse struct {
	Prices [][2]float64 `json:"prices"` // [epoch_ms, usd]
}

// FetchSeries fetches the price time series for a token over a window of
// days. Unknown symbols are an error; the chart service validates upstream.
func (c *Client) FetchSeries(ctx context.Context, symbol string, windowDays int) ([]domain.PricePoint, error) {
	id, ok := tokenIDs[symbol]
	if !ok {
		return nil, fmt.Errorf("unsupported token symbol %q", symbol)
	}

	q := url.Values{}
	q.Set("vs_currency", "usd")
	q.Set("days", fmt.Sprintf("%d", windowDays))

	body, err := c.get(ctx, "/coins/"+id+"/market_chart?"+q.Encode())
	if err != nil {
		return nil, err
	}

	var data chartResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("decoding chart response: %w", err)
	}

	points := make([]domain.PricePoint, len(data.Prices))
	for i, p := range data.Prices {
		points[i] = domain.PricePoint{Timestamp: int64(p[0]), Price: p[1]}
	}
	return points, nil
}

// get performs a rate-limited GET and returns the body on a 2xx response.
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("coingecko request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("coingecko returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	return body, nil
}
