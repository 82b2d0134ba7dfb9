package handler

import (
	"strconv"
	"time"

	"chronos-wallet/internal/adapter/http/dto"
	"chronos-wallet/internal/core/domain"
	"chronos-wallet/internal/core/ports"
	"chronos-wallet/pkg/apperror"
	"chronos-wallet/pkg/response"

	"github.com/gin-gonic/gin"
)

// WalletHandler handles wallet state and transfer endpoints.
type WalletHandler struct {
	walletSvc ports.WalletService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletSvc ports.WalletService) *WalletHandler {
	return &WalletHandler{walletSvc: walletSvc}
}

// GetWallet handles GET /api/v1/wallet.
func (h *WalletHandler) GetWallet(c *gin.Context) {
	state := h.walletSvc.Snapshot(c.Request.Context())

	tokens := make([]dto.TokenResponse, 0, len(state.Tokens))
	for _, tok := range state.Tokens {
		tokens = append(tokens, toTokenResponse(tok))
	}
	txns := make([]dto.TransactionResponse, 0, len(state.Transactions))
	for _, txn := range state.Transactions {
		txns = append(txns, toTransactionResponse(txn))
	}

	response.OK(c, dto.WalletResponse{
		Username:      state.Username,
		IsLocked:      state.IsLocked,
		TotalNetWorth: state.TotalNetWorth,
		Tokens:        tokens,
		Transactions:  txns,
	})
}

// ListTokens handles GET /api/v1/wallet/tokens.
func (h *WalletHandler) ListTokens(c *gin.Context) {
	held := h.walletSvc.Tokens(c.Request.Context())
	tokens := make([]dto.TokenResponse, 0, len(held))
	for _, tok := range held {
		tokens = append(tokens, toTokenResponse(tok))
	}
	response.OK(c, tokens)
}

// ListTransactions handles GET /api/v1/wallet/transactions?limit=N.
func (h *WalletHandler) ListTransactions(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			response.Error(c, apperror.Validation("limit must be a non-negative integer"))
			return
		}
		limit = parsed
	}

	history := h.walletSvc.Transactions(c.Request.Context(), limit)
	txns := make([]dto.TransactionResponse, 0, len(history))
	for _, txn := range history {
		txns = append(txns, toTransactionResponse(txn))
	}
	response.OK(c, txns)
}

// GetPortfolio handles GET /api/v1/wallet/portfolio.
func (h *WalletHandler) GetPortfolio(c *gin.Context) {
	entries := h.walletSvc.Portfolio(c.Request.Context())
	out := make([]dto.PortfolioEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.PortfolioEntryResponse{
			Symbol:     e.Symbol,
			Name:       e.Name,
			Value:      e.Value,
			Percentage: e.Percentage,
		})
	}
	response.OK(c, out)
}

// Send handles POST /api/v1/wallet/send. The call blocks through the
// simulated pending phase and returns the committed transaction.
func (h *WalletHandler) Send(c *gin.Context) {
	var req dto.SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	txn, err := h.walletSvc.Send(c.Request.Context(), ports.SendRequest{
		Symbol:  req.Symbol,
		Amount:  req.Amount,
		Address: req.Address,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toTransactionResponse(txn))
}

// Receive handles POST /api/v1/wallet/receive.
func (h *WalletHandler) Receive(c *gin.Context) {
	var req dto.ReceiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	txn, err := h.walletSvc.Receive(c.Request.Context(), ports.ReceiveRequest{
		Symbol: req.Symbol,
		Amount: req.Amount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toTransactionResponse(txn))
}

// DepositUSD handles POST /api/v1/wallet/deposit-usd, crediting tokens
// bought with a dollar amount at the current price.
func (h *WalletHandler) DepositUSD(c *gin.Context) {
	var req dto.DepositUSDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	txn, err := h.walletSvc.DepositUSD(c.Request.Context(), ports.DepositUSDRequest{
		Symbol:    req.Symbol,
		USDAmount: req.USDAmount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toTransactionResponse(txn))
}

// GetReceiveAddress handles GET /api/v1/wallet/receive-address.
func (h *WalletHandler) GetReceiveAddress(c *gin.Context) {
	response.OK(c, dto.ReceiveAddressResponse{Address: h.walletSvc.ReceiveAddress()})
}

func toTokenResponse(tok domain.Token) dto.TokenResponse {
	return dto.TokenResponse{
		Symbol:         tok.Symbol,
		Name:           tok.Name,
		Balance:        tok.Balance,
		Price:          tok.Price,
		PriceChange24h: tok.PriceChange24h,
		Icon:           tok.Icon,
		Value:          tok.Value(),
	}
}

func toTransactionResponse(txn domain.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:        txn.ID,
		Type:      string(txn.Type),
		Token:     txn.Token,
		Amount:    txn.Amount,
		Timestamp: txn.Timestamp.Format(time.RFC3339),
		Status:    string(txn.Status),
		To:        txn.To,
		From:      txn.From,
	}
}
