package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Session & Lock (AUTH) ----

func ErrIncorrectPassword() *AppError {
	return New("AUTH_001", "Incorrect password", http.StatusUnauthorized)
}

func ErrInvalidSession() *AppError {
	return New("AUTH_002", "Invalid or expired session token", http.StatusUnauthorized)
}

func ErrWalletLocked() *AppError {
	return New("AUTH_003", "Wallet is locked", http.StatusLocked)
}

// ---- Wallet Business Logic (WALLET) ----

func ErrUnknownToken(symbol string) *AppError {
	return New("WALLET_001", fmt.Sprintf("Token %q is not held in this wallet", symbol), http.StatusNotFound)
}

func ErrInvalidAmount() *AppError {
	return New("WALLET_002", "Amount must be greater than zero", http.StatusBadRequest)
}

func ErrMissingAddress() *AppError {
	return New("WALLET_003", "Destination address is required", http.StatusBadRequest)
}

// ---- Feed Clients (FEED) ----

func ErrFeedUnavailable(err error) *AppError {
	return Wrap("FEED_001", "Price feed unavailable", http.StatusBadGateway, err)
}

func ErrUnsupportedWindow(days int) *AppError {
	return New("FEED_002", fmt.Sprintf("Unsupported chart window: %d days", days), http.StatusBadRequest)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a WALLET_002-style validation error.
func Validation(message string) *AppError {
	return New("WALLET_002", message, http.StatusBadRequest)
}
