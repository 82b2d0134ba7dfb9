package service

import (
	"context"

	"chronos-wallet/internal/core/domain"
	"chronos-wallet/internal/core/ports"
	"chronos-wallet/pkg/apperror"

	"github.com/rs/zerolog"
)

// WalletServiceImpl implements ports.WalletService on top of the store and
// the transaction simulator.
type WalletServiceImpl struct {
	store          ports.WalletStore
	sim            *Simulator
	password       string // fixed shared secret, compared verbatim
	receiveAddress string
	log            zerolog.Logger
}

// NewWalletService creates a new WalletServiceImpl.
func NewWalletService(
	store ports.WalletStore,
	sim *Simulator,
	password string,
	receiveAddress string,
	log zerolog.Logger,
) *WalletServiceImpl {
	return &WalletServiceImpl{
		store:          store,
		sim:            sim,
		password:       password,
		receiveAddress: receiveAddress,
		log:            log,
	}
}

// Snapshot returns the full wallet state.
func (s *WalletServiceImpl) Snapshot(_ context.Context) domain.WalletState {
	return s.store.Snapshot()
}

// Tokens returns the token set in display order.
func (s *WalletServiceImpl) Tokens(_ context.Context) []domain.Token {
	return s.store.Tokens()
}

// Transactions returns the history newest-first.
func (s *WalletServiceImpl) Transactions(_ context.Context, limit int) []domain.Transaction {
	return s.store.Transactions(limit)
}

// Portfolio returns each token's USD value and share of net worth.
func (s *WalletServiceImpl) Portfolio(_ context.Context) []domain.PortfolioEntry {
	snap := s.store.Snapshot()
	entries := make([]domain.PortfolioEntry, len(snap.Tokens))
	for i, tok := range snap.Tokens {
		entry := domain.PortfolioEntry{
			Symbol: tok.Symbol,
			Name:   tok.Name,
			Value:  tok.Value(),
		}
		if snap.TotalNetWorth > 0 {
			entry.Percentage = entry.Value / snap.TotalNetWorth * 100
		}
		entries[i] = entry
	}
	return entries
}

// Send runs a simulated send. The symbol is validated against the held
// token set before anything is recorded: the store would tolerate an
// unknown symbol and produce an orphaned record, which is exactly the
// inconsistency this check exists to prevent.
func (s *WalletServiceImpl) Send(_ context.Context, req ports.SendRequest) (domain.Transaction, error) {
	if req.Amount <= 0 {
		return domain.Transaction{}, apperror.ErrInvalidAmount()
	}
	if req.Address == "" {
		return domain.Transaction{}, apperror.ErrMissingAddress()
	}
	if _, ok := s.store.Token(req.Symbol); !ok {
		return domain.Transaction{}, apperror.ErrUnknownToken(req.Symbol)
	}

	txn := s.sim.Submit(ports.ApplyTransactionRequest{
		Type:    domain.TransactionTypeSend,
		Symbol:  req.Symbol,
		Amount:  req.Amount,
		Address: req.Address,
	})
	return txn, nil
}

// Receive runs a simulated receive.
func (s *WalletServiceImpl) Receive(_ context.Context, req ports.ReceiveRequest) (domain.Transaction, error) {
	if req.Amount <= 0 {
		return domain.Transaction{}, apperror.ErrInvalidAmount()
	}
	if _, ok := s.store.Token(req.Symbol); !ok {
		return domain.Transaction{}, apperror.ErrUnknownToken(req.Symbol)
	}

	txn := s.sim.Submit(ports.ApplyTransactionRequest{
		Type:   domain.TransactionTypeReceive,
		Symbol: req.Symbol,
		Amount: req.Amount,
	})
	return txn, nil
}

// DepositUSD converts a USD amount to token units at the current price and
// applies it as a receive.
func (s *WalletServiceImpl) DepositUSD(ctx context.Context, req ports.DepositUSDRequest) (domain.Transaction, error) {
	if req.USDAmount <= 0 {
		return domain.Transaction{}, apperror.ErrInvalidAmount()
	}
	tok, ok := s.store.Token(req.Symbol)
	if !ok {
		return domain.Transaction{}, apperror.ErrUnknownToken(req.Symbol)
	}
	if tok.Price <= 0 {
		return domain.Transaction{}, apperror.ErrInvalidAmount()
	}

	amount := req.USDAmount / tok.Price
	s.log.Info().
		Str("symbol", req.Symbol).
		Float64("usd", req.USDAmount).
		Float64("amount", amount).
		Msg("converting USD deposit at current price")

	return s.Receive(ctx, ports.ReceiveRequest{Symbol: req.Symbol, Amount: amount})
}

// Lock sets the lock flag unconditionally.
func (s *WalletServiceImpl) Lock(_ context.Context) {
	s.store.SetLocked(true)
	s.log.Info().Msg("wallet locked")
}

// Unlock compares the credential verbatim and clears the lock flag on a
// match. A mismatch leaves state unchanged.
func (s *WalletServiceImpl) Unlock(_ context.Context, credential string) error {
	if credential != s.password {
		s.log.Warn().Msg("unlock attempt with incorrect password")
		return apperror.ErrIncorrectPassword()
	}
	s.store.SetLocked(false)
	s.log.Info().Msg("wallet unlocked")
	return nil
}

// ReceiveAddress returns the wallet's fixed deposit address.
func (s *WalletServiceImpl) ReceiveAddress() string {
	return s.receiveAddress
}
