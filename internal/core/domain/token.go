package domain

// Token is a tracked asset with a balance, market data, and display metadata.
// The token set is fixed at wallet initialization; balances and price fields
// are mutated in place, tokens are never added or removed at runtime.
type Token struct {
	Symbol         string  `json:"symbol"`
	Name           string  `json:"name"`
	Balance        float64 `json:"balance"` // never negative, clamped on debit
	Price          float64 `json:"price"`
	PriceChange24h float64 `json:"price_change_24h"` // signed percentage
	Icon           string  `json:"icon"`
}

// Value returns the USD value of the held balance.
func (t Token) Value() float64 {
	return t.Balance * t.Price
}

// DefaultTokens returns the fixed five-token set the wallet starts with,
// using the hardcoded default price pairs.
func DefaultTokens() []Token {
	return []Token{
		{Symbol: "SOL", Name: "Solana", Balance: 3, Price: 160, PriceChange24h: 2.5, Icon: "◉"},
		{Symbol: "ETH", Name: "Ethereum", Balance: 0.5, Price: 3200, PriceChange24h: -1.2, Icon: "♦"},
		{Symbol: "BTC", Name: "Bitcoin", Balance: 0.01, Price: 67000, PriceChange24h: 3.8, Icon: "₿"},
		{Symbol: "MATIC", Name: "Polygon", Balance: 100, Price: 0.85, PriceChange24h: 5.2, Icon: "▲"},
		{Symbol: "USDC", Name: "USD Coin", Balance: 1000, Price: 1.00, PriceChange24h: 0.0, Icon: "$"},
	}
}
