package service

import (
	"context"
	"time"

	"chronos-wallet/internal/core/ports"

	"github.com/rs/zerolog"
)

// PricePoller refreshes the store's prices on a fixed interval. A failed
// fetch is logged and skipped; prior values persist. The very first poll may
// instead seed from the quote cache so a restart during an upstream outage
// still shows recent prices rather than the hardcoded defaults.
type PricePoller struct {
	feed     ports.PriceFeed
	store    ports.WalletStore
	cache    ports.QuoteCache // nil = caching disabled
	interval time.Duration
	cacheTTL time.Duration
	log      zerolog.Logger
}

// NewPricePoller creates a poller. cache may be nil.
func NewPricePoller(
	feed ports.PriceFeed,
	store ports.WalletStore,
	cache ports.QuoteCache,
	interval time.Duration,
	cacheTTL time.Duration,
	log zerolog.Logger,
) *PricePoller {
	return &PricePoller{
		feed:     feed,
		store:    store,
		cache:    cache,
		interval: interval,
		cacheTTL: cacheTTL,
		log:      log,
	}
}

// Run polls once immediately, then on every interval tick until ctx is
// cancelled. It blocks; callers run it in its own goroutine and cancel the
// context at shutdown.
func (p *PricePoller) Run(ctx context.Context) {
	if !p.pollOnce(ctx) {
		p.seedFromCache(ctx)
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.log.Info().Msg("price poller stopped")
			return
		case <-ticker.C:
			p.pollOnce(ctx)
		}
	}
}

// pollOnce fetches and applies a price snapshot. Returns false on failure,
// in which case the store is left untouched.
func (p *PricePoller) pollOnce(ctx context.Context) bool {
	quotes, err := p.feed.FetchPrices(ctx)
	if err != nil {
		p.log.Warn().Err(err).Msg("price fetch failed, keeping previous values")
		return false
	}

	p.store.UpdatePrices(quotes)
	p.log.Debug().Int("symbols", len(quotes)).Msg("prices updated")

	if p.cache != nil {
		if err := p.cache.SetPrices(ctx, quotes, p.cacheTTL); err != nil {
			p.log.Warn().Err(err).Msg("failed to cache price snapshot")
		}
	}
	return true
}

// seedFromCache applies the last cached snapshot, if any.
func (p *PricePoller) seedFromCache(ctx context.Context) {
	if p.cache == nil {
		return
	}
	quotes, err := p.cache.GetPrices(ctx)
	if err != nil {
		p.log.Warn().Err(err).Msg("price cache lookup failed")
		return
	}
	if quotes == nil {
		return
	}
	p.store.UpdatePrices(quotes)
	p.log.Info().Int("symbols", len(quotes)).Msg("prices seeded from cache")
}
