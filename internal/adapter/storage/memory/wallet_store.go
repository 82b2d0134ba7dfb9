package memory

import (
	"sync"
	"time"

	"chronos-wallet/internal/core/domain"
	"chronos-wallet/internal/core/ports"
)

// WalletStore implements ports.WalletStore with a mutex-guarded in-memory
// snapshot. Every mutation entry point runs under the lock, so the price
// poller and in-flight transaction simulations serialize here regardless of
// which goroutine they arrive on. Nothing is persisted; a restart resets to
// the default token set.
type WalletStore struct {
	mu    sync.RWMutex
	state domain.WalletState
	now   func() time.Time
}

// NewWalletStore creates a store seeded with the fixed five-token set.
func NewWalletStore(username string) *WalletStore {
	tokens := domain.DefaultTokens()
	return &WalletStore{
		state: domain.WalletState{
			Username:      username,
			Tokens:        tokens,
			Transactions:  []domain.Transaction{},
			TotalNetWorth: domain.NetWorth(tokens),
		},
		now: time.Now,
	}
}

// Snapshot returns a value copy of the full wallet state.
func (s *WalletStore) Snapshot() domain.WalletState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.state
	snap.Tokens = append([]domain.Token(nil), s.state.Tokens...)
	snap.Transactions = append([]domain.Transaction(nil), s.state.Transactions...)
	return snap
}

// Token returns the token with the given symbol, if held.
func (s *WalletStore) Token(symbol string) (domain.Token, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.state.Tokens {
		if t.Symbol == symbol {
			return t, true
		}
	}
	return domain.Token{}, false
}

// Tokens returns the token set in its fixed display order.
func (s *WalletStore) Tokens() []domain.Token {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]domain.Token(nil), s.state.Tokens...)
}

// Transactions returns the history newest-first. limit <= 0 means all.
func (s *WalletStore) Transactions(limit int) []domain.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	txns := s.state.Transactions
	if limit > 0 && limit < len(txns) {
		txns = txns[:limit]
	}
	return append([]domain.Transaction(nil), txns...)
}

// ApplyTransaction records a transaction and mutates the matching token's
// balance. Sends subtract the amount floored at zero, receives add it. An
// unknown symbol produces a record with no balance effect; rejecting such
// requests is the service layer's job.
func (s *WalletStore) ApplyTransaction(req ports.ApplyTransactionRequest) domain.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	txn := domain.NewTransaction(req.Type, req.Symbol, req.Amount, req.Address, s.now())

	for i := range s.state.Tokens {
		if s.state.Tokens[i].Symbol != req.Symbol {
			continue
		}
		if req.Type == domain.TransactionTypeSend {
			s.state.Tokens[i].Balance = max(0, s.state.Tokens[i].Balance-req.Amount)
		} else {
			s.state.Tokens[i].Balance += req.Amount
		}
		break
	}

	s.state.Transactions = append([]domain.Transaction{txn}, s.state.Transactions...)
	s.recomputeNetWorth()
	return txn
}

// UpdatePrices overwrites price and 24h change for tokens present in the
// map; absent tokens are left untouched.
func (s *WalletStore) UpdatePrices(quotes map[string]ports.PriceQuote) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Tokens {
		if q, ok := quotes[s.state.Tokens[i].Symbol]; ok {
			s.state.Tokens[i].Price = q.Price
			s.state.Tokens[i].PriceChange24h = q.Change24h
		}
	}
	s.recomputeNetWorth()
}

// SetLocked flips the lock flag. Credential checks happen upstream.
func (s *WalletStore) SetLocked(locked bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.IsLocked = locked
}

// IsLocked reports the lock flag.
func (s *WalletStore) IsLocked() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.IsLocked
}

// NetWorth returns the current derived net worth.
func (s *WalletStore) NetWorth() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.TotalNetWorth
}

// recomputeNetWorth must be called with the write lock held after every
// balance or price mutation. TotalNetWorth is never edited directly.
func (s *WalletStore) recomputeNetWorth() {
	s.state.TotalNetWorth = domain.NetWorth(s.state.Tokens)
}
