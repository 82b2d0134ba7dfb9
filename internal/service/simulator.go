package service

import (
	"math/rand/v2"
	"time"

	"chronos-wallet/config"
	"chronos-wallet/internal/core/domain"
	"chronos-wallet/internal/core/ports"

	"github.com/rs/zerolog"
)

// Simulator emulates the latency and two-phase feel of a real transfer
// without any settlement. A submission holds in a pending phase for a
// randomized duration, then a fixed success phase, then commits to the store
// exactly once. The delays are cosmetic: once started, a submission cannot
// fail and cannot be cancelled. Tests configure all delays to zero.
type Simulator struct {
	store ports.WalletStore
	cfg   config.SimulatorConfig
	log   zerolog.Logger
}

// NewSimulator creates a transaction simulator committing into the store.
func NewSimulator(store ports.WalletStore, cfg config.SimulatorConfig, log zerolog.Logger) *Simulator {
	return &Simulator{store: store, cfg: cfg, log: log}
}

// Submit runs the two delay phases and applies the transaction. It blocks
// the calling goroutine for the full duration; concurrent submissions
// serialize only at the store.
func (s *Simulator) Submit(req ports.ApplyTransactionRequest) domain.Transaction {
	pending := s.pendingDelay()

	s.log.Debug().
		Str("type", string(req.Type)).
		Str("symbol", req.Symbol).
		Float64("amount", req.Amount).
		Dur("pending", pending).
		Msg("transaction pending")
	time.Sleep(pending)

	time.Sleep(s.cfg.SuccessHold)

	txn := s.store.ApplyTransaction(req)

	s.log.Info().
		Str("tx_id", txn.ID).
		Str("type", string(txn.Type)).
		Str("symbol", txn.Token).
		Float64("amount", txn.Amount).
		Msg("transaction committed")

	return txn
}

// pendingDelay draws uniformly from [PendingMin, PendingMax).
func (s *Simulator) pendingDelay() time.Duration {
	spread := s.cfg.PendingMax - s.cfg.PendingMin
	if spread <= 0 {
		return s.cfg.PendingMin
	}
	return s.cfg.PendingMin + time.Duration(rand.Int64N(int64(spread)))
}
