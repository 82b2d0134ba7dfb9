package dto

// UnlockRequest is the request body for unlocking the wallet.
type UnlockRequest struct {
	Password string `json:"password" binding:"required"`
}

// SessionResponse is the response body for a successful unlock.
type SessionResponse struct {
	Token    string `json:"token"`
	Expiry   int64  `json:"expiry"` // Unix timestamp
	Username string `json:"username"`
}

// SendRequest is the request body for sending tokens.
type SendRequest struct {
	Symbol  string  `json:"symbol" binding:"required,symbol"`
	Amount  float64 `json:"amount"`
	Address string  `json:"address"`
}

// ReceiveRequest is the request body for the simulated incoming transfer.
type ReceiveRequest struct {
	Symbol string  `json:"symbol" binding:"required,symbol"`
	Amount float64 `json:"amount"`
}

// DepositUSDRequest is the request body for a fiat-denominated deposit.
type DepositUSDRequest struct {
	Symbol    string  `json:"symbol" binding:"required,symbol"`
	USDAmount float64 `json:"usd_amount"`
}

// TokenResponse is a single held token with its current quote.
type TokenResponse struct {
	Symbol         string  `json:"symbol"`
	Name           string  `json:"name"`
	Balance        float64 `json:"balance"`
	Price          float64 `json:"price"`
	PriceChange24h float64 `json:"price_change_24h"`
	Icon           string  `json:"icon"`
	Value          float64 `json:"value"`
}

// TransactionResponse is a single history entry.
type TransactionResponse struct {
	ID        string  `json:"id"`
	Type      string  `json:"type"`
	Token     string  `json:"token"`
	Amount    float64 `json:"amount"`
	Timestamp string  `json:"timestamp"`
	Status    string  `json:"status"`
	To        string  `json:"to,omitempty"`
	From      string  `json:"from,omitempty"`
}

// WalletResponse is the full wallet view.
type WalletResponse struct {
	Username      string                `json:"username"`
	IsLocked      bool                  `json:"is_locked"`
	TotalNetWorth float64               `json:"total_net_worth"`
	Tokens        []TokenResponse       `json:"tokens"`
	Transactions  []TransactionResponse `json:"transactions"`
}

// PortfolioEntryResponse is one token's share of net worth.
type PortfolioEntryResponse struct {
	Symbol     string  `json:"symbol"`
	Name       string  `json:"name"`
	Value      float64 `json:"value"`
	Percentage float64 `json:"percentage"`
}

// ReceiveAddressResponse carries the wallet's deposit address.
type ReceiveAddressResponse struct {
	Address string `json:"address"`
}

// PricePointResponse is one sample on the chart.
type PricePointResponse struct {
	Timestamp int64   `json:"timestamp"` // epoch milliseconds
	Price     float64 `json:"price"`
}

// MarketStatsResponse is the figures shown next to the chart.
type MarketStatsResponse struct {
	High24h   float64 `json:"high_24h"`
	Low24h    float64 `json:"low_24h"`
	MarketCap float64 `json:"market_cap"`
	Volume24h float64 `json:"volume_24h"`
}

// ChartResponse is the response body for a price chart query.
type ChartResponse struct {
	Symbol     string               `json:"symbol"`
	WindowDays int                  `json:"window_days"`
	Points     []PricePointResponse `json:"points"`
	Stats      MarketStatsResponse  `json:"stats"`
	Source     string               `json:"source"`
}
