package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewTransaction_SendSetsOnlyTo(t *testing.T) {
	now := time.Now()
	txn := NewTransaction(TransactionTypeSend, "SOL", 1.5, "addrX", now)

	assert.Equal(t, TransactionTypeSend, txn.Type)
	assert.Equal(t, "SOL", txn.Token)
	assert.Equal(t, 1.5, txn.Amount)
	assert.Equal(t, TransactionStatusCompleted, txn.Status)
	assert.Equal(t, "addrX", txn.To)
	assert.Empty(t, txn.From)
	assert.Equal(t, now, txn.Timestamp)
}

func TestNewTransaction_ReceiveSetsOnlyFrom(t *testing.T) {
	txn := NewTransaction(TransactionTypeReceive, "ETH", 0.25, "", time.Now())

	assert.Equal(t, ExternalWalletOrigin, txn.From)
	assert.Empty(t, txn.To)
}

func TestNewTransaction_IDOrdering(t *testing.T) {
	t1 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Millisecond)

	a := NewTransaction(TransactionTypeSend, "SOL", 1, "x", t1)
	b := NewTransaction(TransactionTypeSend, "SOL", 1, "x", t2)
	assert.Less(t, a.ID, b.ID)
}

func TestNetWorth(t *testing.T) {
	tokens := []Token{
		{Symbol: "SOL", Balance: 3, Price: 160},
		{Symbol: "USDC", Balance: 1000, Price: 1},
	}
	assert.InDelta(t, 1480.0, NetWorth(tokens), 1e-9)
	assert.Zero(t, NetWorth(nil))
}

func TestDefaultTokens(t *testing.T) {
	tokens := DefaultTokens()
	assert.Len(t, tokens, 5)
	assert.Equal(t, "SOL", tokens[0].Symbol)
	for _, tok := range tokens {
		assert.GreaterOrEqual(t, tok.Balance, 0.0)
		assert.Greater(t, tok.Price, 0.0)
	}
}

func TestChartPoints(t *testing.T) {
	assert.Equal(t, 24, ChartPoints(ChartWindowDay))
	assert.Equal(t, 168, ChartPoints(ChartWindowWeek))
	assert.Equal(t, 720, ChartPoints(ChartWindowMonth))
	assert.Equal(t, 24, ChartPoints(99))
}
