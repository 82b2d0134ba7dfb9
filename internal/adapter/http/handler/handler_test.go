package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"chronos-wallet/internal/adapter/http/dto"
	"chronos-wallet/internal/core/domain"
	"chronos-wallet/internal/core/ports"
	"chronos-wallet/internal/core/ports/mocks"
	"chronos-wallet/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func postJSON(t *testing.T, body any) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(raw))
	c.Request.Header.Set("Content-Type", "application/json")
	return w, c
}

// --- Session Handler Tests ---

func TestUnlock_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	walletSvc := mocks.NewMockWalletService(ctrl)
	sessionSvc := mocks.NewMockSessionService(ctrl)
	h := NewSessionHandler(walletSvc, sessionSvc)

	expiry := time.Now().Add(time.Hour)
	walletSvc.EXPECT().Unlock(gomock.Any(), "1234").Return(nil)
	walletSvc.EXPECT().Snapshot(gomock.Any()).Return(domain.WalletState{Username: "CryptoTrader47"})
	sessionSvc.EXPECT().Generate("CryptoTrader47").Return("session-token", expiry, nil)

	w, c := postJSON(t, dto.UnlockRequest{Password: "1234"})
	h.Unlock(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "session-token", data["token"])
	assert.Equal(t, "CryptoTrader47", data["username"])
	assert.Equal(t, float64(expiry.Unix()), data["expiry"])
}

func TestUnlock_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	walletSvc := mocks.NewMockWalletService(ctrl)
	sessionSvc := mocks.NewMockSessionService(ctrl)
	h := NewSessionHandler(walletSvc, sessionSvc)

	walletSvc.EXPECT().Unlock(gomock.Any(), "0000").Return(apperror.ErrIncorrectPassword())

	w, c := postJSON(t, dto.UnlockRequest{Password: "0000"})
	h.Unlock(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_001")
}

func TestUnlock_PasswordNotTrimmed(t *testing.T) {
	ctrl := gomock.NewController(t)
	walletSvc := mocks.NewMockWalletService(ctrl)
	sessionSvc := mocks.NewMockSessionService(ctrl)
	h := NewSessionHandler(walletSvc, sessionSvc)

	// The credential must reach the service byte for byte.
	walletSvc.EXPECT().Unlock(gomock.Any(), " 1234 ").Return(apperror.ErrIncorrectPassword())

	w, c := postJSON(t, dto.UnlockRequest{Password: " 1234 "})
	h.Unlock(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUnlock_MissingPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewSessionHandler(mocks.NewMockWalletService(ctrl), mocks.NewMockSessionService(ctrl))

	w, c := postJSON(t, gin.H{})
	h.Unlock(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLock(t *testing.T) {
	ctrl := gomock.NewController(t)
	walletSvc := mocks.NewMockWalletService(ctrl)
	h := NewSessionHandler(walletSvc, mocks.NewMockSessionService(ctrl))

	walletSvc.EXPECT().Lock(gomock.Any())

	w, c := postJSON(t, gin.H{})
	h.Lock(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"is_locked":true`)
}

// --- Wallet Handler Tests ---

func TestGetWallet_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	walletSvc := mocks.NewMockWalletService(ctrl)
	h := NewWalletHandler(walletSvc)

	walletSvc.EXPECT().Snapshot(gomock.Any()).Return(domain.WalletState{
		Username:      "CryptoTrader47",
		IsLocked:      false,
		TotalNetWorth: 3835,
		Tokens:        domain.DefaultTokens(),
		Transactions:  nil,
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	h.GetWallet(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(3835), data["total_net_worth"])
	assert.Len(t, data["tokens"], 5)
	tokens := data["tokens"].([]interface{})
	sol := tokens[0].(map[string]interface{})
	assert.Equal(t, "SOL", sol["symbol"])
	assert.Equal(t, float64(480), sol["value"])
}

func TestSend_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	walletSvc := mocks.NewMockWalletService(ctrl)
	h := NewWalletHandler(walletSvc)

	now := time.Now()
	walletSvc.EXPECT().Send(gomock.Any(), ports.SendRequest{
		Symbol:  "SOL",
		Amount:  1.5,
		Address: "destAddr",
	}).Return(domain.Transaction{
		ID:        "1756700000000000000",
		Type:      domain.TransactionTypeSend,
		Token:     "SOL",
		Amount:    1.5,
		Timestamp: now,
		Status:    domain.TransactionStatusCompleted,
		To:        "destAddr",
	}, nil)

	w, c := postJSON(t, dto.SendRequest{Symbol: "SOL", Amount: 1.5, Address: "destAddr"})
	h.Send(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "send", data["type"])
	assert.Equal(t, "destAddr", data["to"])
	assert.NotContains(t, data, "from")
}

func TestSend_MissingSymbol(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewWalletHandler(mocks.NewMockWalletService(ctrl))

	w, c := postJSON(t, gin.H{"amount": 1, "address": "x"})
	h.Send(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSend_UnknownToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	walletSvc := mocks.NewMockWalletService(ctrl)
	h := NewWalletHandler(walletSvc)

	walletSvc.EXPECT().Send(gomock.Any(), gomock.Any()).Return(domain.Transaction{}, apperror.ErrUnknownToken("DOGE"))

	w, c := postJSON(t, dto.SendRequest{Symbol: "DOGE", Amount: 1, Address: "x"})
	h.Send(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "WALLET_001")
}

func TestReceive_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	walletSvc := mocks.NewMockWalletService(ctrl)
	h := NewWalletHandler(walletSvc)

	walletSvc.EXPECT().Receive(gomock.Any(), ports.ReceiveRequest{Symbol: "ETH", Amount: 0.25}).
		Return(domain.Transaction{
			ID:        "1756700000000000001",
			Type:      domain.TransactionTypeReceive,
			Token:     "ETH",
			Amount:    0.25,
			Timestamp: time.Now(),
			Status:    domain.TransactionStatusCompleted,
			From:      domain.ExternalWalletOrigin,
		}, nil)

	w, c := postJSON(t, dto.ReceiveRequest{Symbol: "ETH", Amount: 0.25})
	h.Receive(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "External Wallet", data["from"])
	assert.NotContains(t, data, "to")
}

func TestDepositUSD_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	walletSvc := mocks.NewMockWalletService(ctrl)
	h := NewWalletHandler(walletSvc)

	walletSvc.EXPECT().DepositUSD(gomock.Any(), ports.DepositUSDRequest{Symbol: "SOL", USDAmount: 11829}).
		Return(domain.Transaction{
			ID:     "1756700000000000002",
			Type:   domain.TransactionTypeReceive,
			Token:  "SOL",
			Amount: 73.93125,
			Status: domain.TransactionStatusCompleted,
			From:   domain.ExternalWalletOrigin,
		}, nil)

	w, c := postJSON(t, dto.DepositUSDRequest{Symbol: "SOL", USDAmount: 11829})
	h.DepositUSD(c)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestListTransactions_LimitParsing(t *testing.T) {
	ctrl := gomock.NewController(t)
	walletSvc := mocks.NewMockWalletService(ctrl)
	h := NewWalletHandler(walletSvc)

	walletSvc.EXPECT().Transactions(gomock.Any(), 5).Return([]domain.Transaction{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/?limit=5", nil)

	h.ListTransactions(c)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListTransactions_BadLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewWalletHandler(mocks.NewMockWalletService(ctrl))

	for _, q := range []string{"limit=abc", "limit=-1"} {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/?"+q, nil)

		h.ListTransactions(c)
		assert.Equal(t, http.StatusBadRequest, w.Code, q)
	}
}

func TestGetPortfolio_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	walletSvc := mocks.NewMockWalletService(ctrl)
	h := NewWalletHandler(walletSvc)

	walletSvc.EXPECT().Portfolio(gomock.Any()).Return([]domain.PortfolioEntry{
		{Symbol: "SOL", Name: "Solana", Value: 480, Percentage: 12.516297262059973},
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	h.GetPortfolio(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"symbol":"SOL"`)
}

func TestGetReceiveAddress(t *testing.T) {
	ctrl := gomock.NewController(t)
	walletSvc := mocks.NewMockWalletService(ctrl)
	h := NewWalletHandler(walletSvc)

	walletSvc.EXPECT().ReceiveAddress().Return("9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	h.GetReceiveAddress(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM")
}

// --- Chart Handler Tests ---

func TestGetChart_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	chartSvc := mocks.NewMockChartService(ctrl)
	h := NewChartHandler(chartSvc)

	chartSvc.EXPECT().GetChart(gomock.Any(), "SOL", 7).Return(&ports.ChartResult{
		Symbol: "SOL",
		Window: 7,
		Points: []domain.PricePoint{{Timestamp: 1000, Price: 159.5}},
		Stats:  domain.MarketStats{High24h: 168, Low24h: 152, MarketCap: 7e10, Volume24h: 2e9},
		Source: "live",
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/?window=7", nil)
	c.Params = gin.Params{{Key: "symbol", Value: "sol"}}

	h.GetChart(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "SOL", data["symbol"])
	assert.Equal(t, float64(7), data["window_days"])
	assert.Equal(t, "live", data["source"])
}

func TestGetChart_DefaultWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	chartSvc := mocks.NewMockChartService(ctrl)
	h := NewChartHandler(chartSvc)

	chartSvc.EXPECT().GetChart(gomock.Any(), "BTC", 1).Return(&ports.ChartResult{
		Symbol: "BTC", Window: 1, Source: "synthetic",
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Params = gin.Params{{Key: "symbol", Value: "BTC"}}

	h.GetChart(c)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetChart_BadWindowParam(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewChartHandler(mocks.NewMockChartService(ctrl))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/?window=week", nil)
	c.Params = gin.Params{{Key: "symbol", Value: "SOL"}}

	h.GetChart(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetChart_UnsupportedWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	chartSvc := mocks.NewMockChartService(ctrl)
	h := NewChartHandler(chartSvc)

	chartSvc.EXPECT().GetChart(gomock.Any(), "SOL", 14).Return(nil, apperror.ErrUnsupportedWindow(14))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/?window=14", nil)
	c.Params = gin.Params{{Key: "symbol", Value: "SOL"}}

	h.GetChart(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "FEED_002")
}

// --- Router Tests ---

func TestRouter_WalletRequiresSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	deps := RouterDeps{
		WalletSvc:  mocks.NewMockWalletService(ctrl),
		ChartSvc:   mocks.NewMockChartService(ctrl),
		SessionSvc: mocks.NewMockSessionService(ctrl),
		Logger:     zerolog.Nop(),
	}
	r := SetupRouter(deps)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/wallet", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_002")
}

func TestRouter_LockedWalletRejectsWalletRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	walletSvc := mocks.NewMockWalletService(ctrl)
	sessionSvc := mocks.NewMockSessionService(ctrl)
	deps := RouterDeps{
		WalletSvc:  walletSvc,
		ChartSvc:   mocks.NewMockChartService(ctrl),
		SessionSvc: sessionSvc,
		Logger:     zerolog.Nop(),
	}
	r := SetupRouter(deps)

	sessionSvc.EXPECT().Validate("stale-token").Return(&ports.SessionClaims{Username: "CryptoTrader47"}, nil)
	walletSvc.EXPECT().Snapshot(gomock.Any()).Return(domain.WalletState{IsLocked: true})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/wallet", nil)
	req.Header.Set("Authorization", "Bearer stale-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusLocked, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_003")
}

func TestRouter_UnlockIsPublic(t *testing.T) {
	ctrl := gomock.NewController(t)
	walletSvc := mocks.NewMockWalletService(ctrl)
	sessionSvc := mocks.NewMockSessionService(ctrl)
	deps := RouterDeps{
		WalletSvc:  walletSvc,
		ChartSvc:   mocks.NewMockChartService(ctrl),
		SessionSvc: sessionSvc,
		Logger:     zerolog.Nop(),
	}
	r := SetupRouter(deps)

	walletSvc.EXPECT().Unlock(gomock.Any(), "1234").Return(nil)
	walletSvc.EXPECT().Snapshot(gomock.Any()).Return(domain.WalletState{Username: "CryptoTrader47"})
	sessionSvc.EXPECT().Generate("CryptoTrader47").Return("tok", time.Now().Add(time.Hour), nil)

	body, _ := json.Marshal(dto.UnlockRequest{Password: "1234"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/session/unlock", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Health Check Tests ---

type stubChecker struct {
	name string
	err  error
}

func (s stubChecker) Ping(_ context.Context) error { return s.err }
func (s stubChecker) Name() string                 { return s.name }

func TestHealthCheck_Healthy(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	HealthCheck(stubChecker{name: "price_feed"})(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp["status"])
}

func TestHealthCheck_Degraded(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	HealthCheck(
		stubChecker{name: "price_feed"},
		stubChecker{name: "redis", err: errors.New("connection refused")},
	)(c)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "degraded", resp["status"])
}

// --- Swagger Tests ---

func TestSwaggerUI(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/swagger", nil)

	SwaggerUI(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "swagger-ui")
}

func TestSwaggerSpec_Loaded(t *testing.T) {
	SetSwaggerSpec([]byte("openapi: '3.0.0'\ninfo:\n  title: Chronos Wallet"))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/swagger/spec", nil)

	SwaggerSpec(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "openapi")
}

func TestSwaggerSpec_NotLoaded(t *testing.T) {
	SetSwaggerSpec(nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/swagger/spec", nil)

	SwaggerSpec(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
