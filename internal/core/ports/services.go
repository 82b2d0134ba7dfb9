package ports

import (
	"context"
	"time"

	"chronos-wallet/internal/core/domain"
)

// --- Service Ports (Business Logic) ---

// SendRequest holds validated input for a simulated send.
type SendRequest struct {
	Symbol  string
	Amount  float64
	Address string
}

// ReceiveRequest holds validated input for a simulated receive.
type ReceiveRequest struct {
	Symbol string
	Amount float64
}

// DepositUSDRequest holds input for a USD-denominated deposit, converted to
// token units at the current price.
type DepositUSDRequest struct {
	Symbol    string
	USDAmount float64
}

// WalletService defines the wallet business logic. Send, Receive, and
// DepositUSD block through the transaction simulator before committing.
type WalletService interface {
	Snapshot(ctx context.Context) domain.WalletState
	Tokens(ctx context.Context) []domain.Token
	Transactions(ctx context.Context, limit int) []domain.Transaction
	Portfolio(ctx context.Context) []domain.PortfolioEntry
	Send(ctx context.Context, req SendRequest) (domain.Transaction, error)
	Receive(ctx context.Context, req ReceiveRequest) (domain.Transaction, error)
	DepositUSD(ctx context.Context, req DepositUSDRequest) (domain.Transaction, error)
	// Lock sets the lock flag unconditionally.
	Lock(ctx context.Context)
	// Unlock compares the credential verbatim and clears the lock flag on
	// a match. A mismatch leaves state unchanged.
	Unlock(ctx context.Context, credential string) error
	// ReceiveAddress returns the wallet's fixed deposit address.
	ReceiveAddress() string
}

// ChartResult is a chart series plus derived market stats.
type ChartResult struct {
	Symbol string              `json:"symbol"`
	Window int                 `json:"window_days"`
	Points []domain.PricePoint `json:"points"`
	Stats  domain.MarketStats  `json:"stats"`
	Source string              `json:"source"` // live, cache, or synthetic
}

// ChartService produces price charts, synthesizing a fallback series when
// the upstream source is unavailable.
type ChartService interface {
	GetChart(ctx context.Context, symbol string, windowDays int) (*ChartResult, error)
}

// SessionClaims holds the parsed session token claims.
type SessionClaims struct {
	Username string
}

// SessionService issues and validates session tokens handed out at unlock.
type SessionService interface {
	Generate(username string) (string, time.Time, error)
	Validate(tokenString string) (*SessionClaims, error)
}
