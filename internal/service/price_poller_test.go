package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"chronos-wallet/internal/adapter/storage/memory"
	"chronos-wallet/internal/core/ports"
	"chronos-wallet/internal/core/ports/mocks"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestPricePoller_PollOnce_UpdatesStoreAndCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	feed := mocks.NewMockPriceFeed(ctrl)
	cache := mocks.NewMockQuoteCache(ctrl)
	store := memory.NewWalletStore("CryptoTrader47")
	poller := NewPricePoller(feed, store, cache, time.Second, time.Minute, zerolog.Nop())

	quotes := map[string]ports.PriceQuote{
		"SOL": {Price: 170, Change24h: 4.1},
	}
	feed.EXPECT().FetchPrices(gomock.Any()).Return(quotes, nil)
	cache.EXPECT().SetPrices(gomock.Any(), quotes, time.Minute).Return(nil)

	assert.True(t, poller.pollOnce(context.Background()))

	tok, _ := store.Token("SOL")
	assert.InDelta(t, 170.0, tok.Price, 1e-9)
	assert.InDelta(t, 4.1, tok.PriceChange24h, 1e-9)
}

func TestPricePoller_PollOnce_FailureKeepsPreviousValues(t *testing.T) {
	ctrl := gomock.NewController(t)
	feed := mocks.NewMockPriceFeed(ctrl)
	store := memory.NewWalletStore("CryptoTrader47")
	poller := NewPricePoller(feed, store, nil, time.Second, time.Minute, zerolog.Nop())

	feed.EXPECT().FetchPrices(gomock.Any()).Return(nil, errors.New("coingecko timeout"))

	before := store.NetWorth()
	assert.False(t, poller.pollOnce(context.Background()))

	tok, _ := store.Token("SOL")
	assert.InDelta(t, 160.0, tok.Price, 1e-9)
	assert.InDelta(t, before, store.NetWorth(), 1e-9)
}

func TestPricePoller_PollOnce_CacheWriteFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	feed := mocks.NewMockPriceFeed(ctrl)
	cache := mocks.NewMockQuoteCache(ctrl)
	store := memory.NewWalletStore("CryptoTrader47")
	poller := NewPricePoller(feed, store, cache, time.Second, time.Minute, zerolog.Nop())

	quotes := map[string]ports.PriceQuote{"ETH": {Price: 3300, Change24h: 1.0}}
	feed.EXPECT().FetchPrices(gomock.Any()).Return(quotes, nil)
	cache.EXPECT().SetPrices(gomock.Any(), quotes, time.Minute).Return(errors.New("redis down"))

	assert.True(t, poller.pollOnce(context.Background()))
}

func TestPricePoller_SeedFromCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mocks.NewMockQuoteCache(ctrl)
	store := memory.NewWalletStore("CryptoTrader47")
	poller := NewPricePoller(nil, store, cache, time.Second, time.Minute, zerolog.Nop())

	cache.EXPECT().GetPrices(gomock.Any()).Return(map[string]ports.PriceQuote{
		"BTC": {Price: 69000, Change24h: 2.2},
	}, nil)

	poller.seedFromCache(context.Background())

	tok, _ := store.Token("BTC")
	assert.InDelta(t, 69000.0, tok.Price, 1e-9)
}

func TestPricePoller_SeedFromCache_MissLeavesDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mocks.NewMockQuoteCache(ctrl)
	store := memory.NewWalletStore("CryptoTrader47")
	poller := NewPricePoller(nil, store, cache, time.Second, time.Minute, zerolog.Nop())

	cache.EXPECT().GetPrices(gomock.Any()).Return(nil, nil)

	poller.seedFromCache(context.Background())

	tok, _ := store.Token("BTC")
	assert.InDelta(t, 67000.0, tok.Price, 1e-9)
}

func TestPricePoller_Run_StopsOnContextCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	feed := mocks.NewMockPriceFeed(ctrl)
	store := memory.NewWalletStore("CryptoTrader47")
	poller := NewPricePoller(feed, store, nil, 5*time.Millisecond, time.Minute, zerolog.Nop())

	feed.EXPECT().FetchPrices(gomock.Any()).Return(map[string]ports.PriceQuote{
		"SOL": {Price: 161, Change24h: 2.5},
	}, nil).MinTimes(1)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		poller.Run(ctx)
		close(done)
	}()

	time.Sleep(25 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("poller did not stop after context cancellation")
	}
}
