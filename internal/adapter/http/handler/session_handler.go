package handler

import (
	"net/http"

	"chronos-wallet/internal/adapter/http/dto"
	"chronos-wallet/internal/adapter/http/middleware"
	"chronos-wallet/internal/core/ports"
	"chronos-wallet/pkg/apperror"
	"chronos-wallet/pkg/response"

	"github.com/gin-gonic/gin"
)

// SessionHandler handles the lock screen endpoints.
type SessionHandler struct {
	walletSvc  ports.WalletService
	sessionSvc ports.SessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(walletSvc ports.WalletService, sessionSvc ports.SessionService) *SessionHandler {
	return &SessionHandler{walletSvc: walletSvc, sessionSvc: sessionSvc}
}

// Unlock handles POST /api/v1/session/unlock. The credential is compared
// verbatim; it is never trimmed or escaped.
func (h *SessionHandler) Unlock(c *gin.Context) {
	var req dto.UnlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.walletSvc.Unlock(c.Request.Context(), req.Password); err != nil {
		response.Error(c, err)
		return
	}

	username := h.walletSvc.Snapshot(c.Request.Context()).Username
	token, expiry, err := h.sessionSvc.Generate(username)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}

	response.OK(c, dto.SessionResponse{
		Token:    token,
		Expiry:   expiry.Unix(),
		Username: username,
	})
}

// Lock handles POST /api/v1/session/lock.
func (h *SessionHandler) Lock(c *gin.Context) {
	h.walletSvc.Lock(c.Request.Context())
	response.OK(c, gin.H{"is_locked": true})
}

// CurrentUser handles GET /api/v1/session/me.
func (h *SessionHandler) CurrentUser(c *gin.Context) {
	response.OK(c, gin.H{"username": c.GetString(middleware.CtxUsername)})
}

// HealthCheck handles GET /health, pinging every registered dependency.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
