package domain

import (
	"strconv"
	"time"
)

// TransactionType represents the direction of a balance change.
type TransactionType string

const (
	TransactionTypeSend    TransactionType = "send"
	TransactionTypeReceive TransactionType = "receive"
)

// TransactionStatus represents the lifecycle state of a transaction.
// Current flows only ever produce completed records.
type TransactionStatus string

const (
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusFailed    TransactionStatus = "failed"
)

// ExternalWalletOrigin is the origin descriptor attributed to received funds.
const ExternalWalletOrigin = "External Wallet"

// Transaction is an immutable record of a simulated balance-changing event.
// Exactly one of To/From is populated, determined by Type.
type Transaction struct {
	ID        string            `json:"id"`
	Type      TransactionType   `json:"type"`
	Token     string            `json:"token"` // symbol reference into the token set
	Amount    float64           `json:"amount"`
	Timestamp time.Time         `json:"timestamp"`
	Status    TransactionStatus `json:"status"`
	To        string            `json:"to,omitempty"`   // set only for send
	From      string            `json:"from,omitempty"` // set only for receive
}

// NewTransaction builds a completed transaction record. The ID is derived
// from the creation instant so records created later always sort after
// earlier ones. Sends record the destination address; receives are
// attributed to the external wallet origin.
func NewTransaction(txType TransactionType, symbol string, amount float64, address string, now time.Time) Transaction {
	txn := Transaction{
		ID:        strconv.FormatInt(now.UnixNano(), 10),
		Type:      txType,
		Token:     symbol,
		Amount:    amount,
		Timestamp: now,
		Status:    TransactionStatusCompleted,
	}
	if txType == TransactionTypeSend {
		txn.To = address
	} else {
		txn.From = ExternalWalletOrigin
	}
	return txn
}
