package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
// Code is for logs and metrics; Message is the only part shown to callers.
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

// ---- Submission Input (SUB) ----

func ErrInvalidTxID() *AppError {
	return New("SUB_001", "TXID must be a 64-character hex string.", http.StatusBadRequest)
}

func ErrMissingLocation() *AppError {
	return New("SUB_002", "City and country are required.", http.StatusBadRequest)
}

func ErrMalformedBody() *AppError {
	return New("SUB_003", "Request body must be a JSON object.", http.StatusBadRequest)
}

// ---- Verification (VER) ----
// Both cover a false claim and an unreachable fact-source alike; callers
// never learn which it was.

func ErrPaymentUnverified() *AppError {
	return New("VER_001", "Could not verify a payment to the project address for this TXID.", http.StatusBadRequest)
}

func ErrLocationUnresolved() *AppError {
	return New("VER_002", "Could not geocode that city/country. Try a nearby major city.", http.StatusBadRequest)
}

// ---- Ledger (LOG) ----

func ErrDuplicateTxID() *AppError {
	return New("LOG_001", "That TXID is already in the log.", http.StatusConflict)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Too many requests. Try again later.", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
