package ports

import (
	"context"
	"time"

	"chronos-wallet/internal/core/domain"
)

// PriceQuote is the per-token result of a price feed fetch.
type PriceQuote struct {
	Price     float64 `json:"price"`
	Change24h float64 `json:"change_24h"`
}

// PriceFeed fetches current USD price and 24h change for the wallet's token
// set. A successful fetch always covers every symbol: entries the upstream
// response is missing are filled from the hardcoded defaults. A whole-request
// failure returns an error and no partial data.
type PriceFeed interface {
	FetchPrices(ctx context.Context) (map[string]PriceQuote, error)
}

// ChartProvider fetches a price time series for a token over a window of
// 1, 7, or 30 days. On failure the caller synthesizes a fallback series.
type ChartProvider interface {
	FetchSeries(ctx context.Context, symbol string, windowDays int) ([]domain.PricePoint, error)
}

// QuoteCache holds the last good feed results so a transient upstream
// failure can be served from recent data before falling back to defaults.
type QuoteCache interface {
	// GetPrices returns the cached snapshot, or nil if none is cached.
	GetPrices(ctx context.Context) (map[string]PriceQuote, error)
	SetPrices(ctx context.Context, quotes map[string]PriceQuote, ttl time.Duration) error
	// GetSeries returns the cached series for a symbol+window, or nil.
	GetSeries(ctx context.Context, symbol string, windowDays int) ([]domain.PricePoint, error)
	SetSeries(ctx context.Context, symbol string, windowDays int, points []domain.PricePoint, ttl time.Duration) error
}
