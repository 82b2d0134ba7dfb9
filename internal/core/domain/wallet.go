package domain

// WalletState is the full in-memory wallet snapshot. The store owns the
// authoritative copy; everything else receives value copies of it.
type WalletState struct {
	IsLocked      bool          `json:"is_locked"`
	Username      string        `json:"username"`
	Tokens        []Token       `json:"tokens"`       // order-preserving, keyed by symbol
	Transactions  []Transaction `json:"transactions"` // newest first
	TotalNetWorth float64       `json:"total_net_worth"`
}

// NetWorth sums balance × price over the given token set.
func NetWorth(tokens []Token) float64 {
	var total float64
	for _, t := range tokens {
		total += t.Value()
	}
	return total
}

// PortfolioEntry is one token's share of the wallet's net worth.
type PortfolioEntry struct {
	Symbol     string  `json:"symbol"`
	Name       string  `json:"name"`
	Value      float64 `json:"value"`
	Percentage float64 `json:"percentage"` // of total net worth, 0 when net worth is 0
}
