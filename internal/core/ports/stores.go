package ports

import "chronos-wallet/internal/core/domain"

// ApplyTransactionRequest holds validated input for a balance mutation.
type ApplyTransactionRequest struct {
	Type    domain.TransactionType
	Symbol  string
	Amount  float64 // positive
	Address string  // destination, send only
}

// WalletStore is the single source of truth for balances, transaction
// history, lock status, and derived net worth. It never rejects a mutation:
// callers are expected to pre-validate input. The store serializes all
// access internally; callers may invoke it from any goroutine.
type WalletStore interface {
	// Snapshot returns a value copy of the full wallet state.
	Snapshot() domain.WalletState
	// Token returns the token with the given symbol, if held.
	Token(symbol string) (domain.Token, bool)
	// Tokens returns the token set in its fixed display order.
	Tokens() []domain.Token
	// Transactions returns the history newest-first. limit <= 0 means all.
	Transactions(limit int) []domain.Transaction
	// ApplyTransaction records a transaction and mutates the matching
	// token's balance: sends subtract (floored at zero), receives add.
	// An unknown symbol still produces a record but changes no balance.
	ApplyTransaction(req ApplyTransactionRequest) domain.Transaction
	// UpdatePrices overwrites price and 24h change for tokens present in
	// the map; absent tokens are left untouched.
	UpdatePrices(quotes map[string]PriceQuote)
	// SetLocked flips the lock flag. Credential checks happen upstream.
	SetLocked(locked bool)
	// IsLocked reports the lock flag.
	IsLocked() bool
	// NetWorth returns the current derived net worth.
	NetWorth() float64
}
