package middleware

import (
	"net/http"
	"time"

	"chronos-wallet/internal/core/ports"
	"chronos-wallet/pkg/apperror"
	"chronos-wallet/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// CtxUsername is the context key holding the authenticated session user.
const CtxUsername = "username"

// SessionAuth validates the bearer session token issued at unlock.
func SessionAuth(sessionSvc ports.SessionService, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || len(authHeader) < 8 || authHeader[:7] != "Bearer " {
			response.Error(c, apperror.ErrInvalidSession())
			c.Abort()
			return
		}

		claims, err := sessionSvc.Validate(authHeader[7:])
		if err != nil {
			log.Debug().Err(err).Msg("session token rejected")
			response.Error(c, apperror.ErrInvalidSession())
			c.Abort()
			return
		}

		c.Set(CtxUsername, claims.Username)
		c.Next()
	}
}

// LockGate rejects requests while the wallet is locked. Only the unlock
// endpoint and the health check live outside this gate.
func LockGate(walletSvc ports.WalletService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if walletSvc.Snapshot(c.Request.Context()).IsLocked {
			response.Error(c, apperror.ErrWalletLocked())
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequestLogger logs every HTTP request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else if status >= http.StatusBadRequest {
			event = log.Warn()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Msg("http request")
	}
}

// Recovery creates a panic recovery middleware.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("path", c.Request.URL.Path).Msg("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error_code": "SYS_001",
					"message":    "Internal server error",
				})
			}
		}()
		c.Next()
	}
}

// MaxBodySize returns middleware that limits the request body size.
// Once the limit is exceeded the reader returns an error and the
// request is rejected with 413 Payload Too Large.
func MaxBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}
