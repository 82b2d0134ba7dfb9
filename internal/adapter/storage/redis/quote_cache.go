package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"chronos-wallet/internal/core/domain"
	"chronos-wallet/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
)

// QuoteCache implements ports.QuoteCache using Redis. It holds the last
// good price snapshot and chart series so a transient upstream failure can
// be served from recent data before falling back to hardcoded defaults.
type QuoteCache struct {
	client *goredis.Client
	prefix string
}

// NewQuoteCache creates a Redis-backed quote cache.
func NewQuoteCache(client *goredis.Client) *QuoteCache {
	return &QuoteCache{
		client: client,
		prefix: "quotes:",
	}
}

// GetPrices retrieves the cached price snapshot.
// Returns nil, nil if nothing is cached.
func (c *QuoteCache) GetPrices(ctx context.Context) (map[string]ports.PriceQuote, error) {
	val, err := c.client.Get(ctx, c.prefix+"prices").Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis prices get: %w", err)
	}

	var quotes map[string]ports.PriceQuote
	if err := json.Unmarshal(val, &quotes); err != nil {
		return nil, fmt.Errorf("decoding cached prices: %w", err)
	}
	return quotes, nil
}

// SetPrices stores the price snapshot with TTL.
func (c *QuoteCache) SetPrices(ctx context.Context, quotes map[string]ports.PriceQuote, ttl time.Duration) error {
	data, err := json.Marshal(quotes)
	if err != nil {
		return fmt.Errorf("encoding prices: %w", err)
	}
	if err := c.client.Set(ctx, c.prefix+"prices", data, ttl).Err(); err != nil {
		return fmt.Errorf("redis prices set: %w", err)
	}
	return nil
}

// GetSeries retrieves a cached chart series for a symbol and window.
// Returns nil, nil if nothing is cached.
func (c *QuoteCache) GetSeries(ctx context.Context, symbol string, windowDays int) ([]domain.PricePoint, error) {
	val, err := c.client.Get(ctx, c.seriesKey(symbol, windowDays)).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis series get: %w", err)
	}

	var points []domain.PricePoint
	if err := json.Unmarshal(val, &points); err != nil {
		return nil, fmt.Errorf("decoding cached series: %w", err)
	}
	return points, nil
}

// SetSeries stores a chart series with TTL.
func (c *QuoteCache) SetSeries(ctx context.Context, symbol string, windowDays int, points []domain.PricePoint, ttl time.Duration) error {
	data, err := json.Marshal(points)
	if err != nil {
		return fmt.Errorf("encoding series: %w", err)
	}
	if err := c.client.Set(ctx, c.seriesKey(symbol, windowDays), data, ttl).Err(); err != nil {
		return fmt.Errorf("redis series set: %w", err)
	}
	return nil
}

func (c *QuoteCache) seriesKey(symbol string, windowDays int) string {
	return fmt.Sprintf("%sseries:%s:%d", c.prefix, symbol, windowDays)
}
