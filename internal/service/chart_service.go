package service

import (
	"context"
	"math/rand/v2"
	"time"

	"chronos-wallet/internal/core/domain"
	"chronos-wallet/internal/core/ports"
	"chronos-wallet/pkg/apperror"

	"github.com/rs/zerolog"
)

// Volatility of the synthesized random walk per step. USDC is pegged and
// barely moves; everything else gets the wider band.
const (
	stableVolatility  = 0.001
	defaultVolatility = 0.02
	minChartPrice     = 0.01
)

// ChartServiceImpl implements ports.ChartService. Resolution order on a
// fetch: live upstream, then the quote cache, then a synthesized random
// walk. The caller always gets a series; upstream failure is never surfaced.
type ChartServiceImpl struct {
	provider ports.ChartProvider
	store    ports.WalletStore
	cache    ports.QuoteCache // nil = caching disabled
	cacheTTL time.Duration
	log      zerolog.Logger
}

// NewChartService creates a new ChartServiceImpl. cache may be nil.
func NewChartService(
	provider ports.ChartProvider,
	store ports.WalletStore,
	cache ports.QuoteCache,
	cacheTTL time.Duration,
	log zerolog.Logger,
) *ChartServiceImpl {
	return &ChartServiceImpl{
		provider: provider,
		store:    store,
		cache:    cache,
		cacheTTL: cacheTTL,
		log:      log,
	}
}

// GetChart returns the price series and market stats for a held token.
func (s *ChartServiceImpl) GetChart(ctx context.Context, symbol string, windowDays int) (*ports.ChartResult, error) {
	switch windowDays {
	case domain.ChartWindowDay, domain.ChartWindowWeek, domain.ChartWindowMonth:
	default:
		return nil, apperror.ErrUnsupportedWindow(windowDays)
	}

	tok, ok := s.store.Token(symbol)
	if !ok {
		return nil, apperror.ErrUnknownToken(symbol)
	}

	points, source := s.resolveSeries(ctx, tok, windowDays)

	return &ports.ChartResult{
		Symbol: symbol,
		Window: windowDays,
		Points: points,
		Stats:  marketStats(tok.Price),
		Source: source,
	}, nil
}

// resolveSeries tries upstream, then cache, then synthesis.
func (s *ChartServiceImpl) resolveSeries(ctx context.Context, tok domain.Token, windowDays int) ([]domain.PricePoint, string) {
	points, err := s.provider.FetchSeries(ctx, tok.Symbol, windowDays)
	if err == nil && len(points) > 0 {
		if s.cache != nil {
			if cacheErr := s.cache.SetSeries(ctx, tok.Symbol, windowDays, points, s.cacheTTL); cacheErr != nil {
				s.log.Warn().Err(cacheErr).Str("symbol", tok.Symbol).Msg("failed to cache chart series")
			}
		}
		return points, "live"
	}
	if err != nil {
		s.log.Warn().Err(err).Str("symbol", tok.Symbol).Int("window_days", windowDays).
			Msg("chart fetch failed, falling back")
	}

	if s.cache != nil {
		cached, cacheErr := s.cache.GetSeries(ctx, tok.Symbol, windowDays)
		if cacheErr != nil {
			s.log.Warn().Err(cacheErr).Str("symbol", tok.Symbol).Msg("chart cache lookup failed")
		} else if len(cached) > 0 {
			return cached, "cache"
		}
	}

	return synthesizeSeries(tok, windowDays, time.Now()), "synthetic"
}

// synthesizeSeries builds a plausible fallback series: a random walk seeded
// from the token's current price, biased so the whole window drifts by
// roughly the token's 24h change, floored at a minimum price.
func synthesizeSeries(tok domain.Token, windowDays int, now time.Time) []domain.PricePoint {
	points := domain.ChartPoints(windowDays)
	volatility := defaultVolatility
	if tok.Symbol == "USDC" {
		volatility = stableVolatility
	}
	trend := tok.PriceChange24h / 100 / float64(points)

	series := make([]domain.PricePoint, 0, points)
	price := tok.Price
	for i := points - 1; i >= 0; i-- {
		ts := now.Add(-time.Duration(i) * time.Hour)
		price *= 1 + trend + (rand.Float64()-0.5)*volatility
		price = max(minChartPrice, price)
		series = append(series, domain.PricePoint{
			Timestamp: ts.UnixMilli(),
			Price:     price,
		})
	}
	return series
}

// marketStats derives the display figures shown next to the chart. Market
// cap and volume are synthesized; this wallet has no supply data.
func marketStats(price float64) domain.MarketStats {
	return domain.MarketStats{
		High24h:   price * 1.05,
		Low24h:    price * 0.95,
		MarketCap: price * (rand.Float64()*1e9 + 1e9),
		Volume24h: price * (rand.Float64()*1e8 + 1e7),
	}
}
