package ports

import (
	"context"
	"time"

	"traveling-message/internal/core/domain"
)

// SubmitRequest carries one sanitizer-bound submission through the pipeline.
type SubmitRequest struct {
	TxID    string
	Alias   string
	City    string
	Country string
}

// SubmissionService runs the accept/reject pipeline for one submission.
type SubmissionService interface {
	// Submit verifies and records a submission. Every rejection is an
	// *apperror.AppError; on success the stored entry is returned.
	Submit(ctx context.Context, req SubmitRequest) (*domain.Entry, error)
}

// ProjectStats is the best-effort balance snapshot served by /api/stats.
// BalanceBTC is nil when the explorer could not be reached.
type ProjectStats struct {
	BTCAddress  string
	OriginLabel string
	BalanceBTC  *float64
	ISODate     string
}

// ReportingService builds read-side documents from the ledger.
type ReportingService interface {
	BuildLog(ctx context.Context) (*domain.LogDocument, error)
	GetStats(ctx context.Context) (*ProjectStats, error)
}

// LogExporter materializes the current ledger as a durable artifact. Export
// is idempotent and best-effort: callers on the write path log failures and
// carry on, because the ledger itself already committed.
type LogExporter interface {
	Export(ctx context.Context) error
}

// PaymentVerifier confirms that a transaction pays the receiving address.
// Any error — no output to the address, tx unknown, explorer unreachable —
// is a soft failure; callers treat all causes identically.
type PaymentVerifier interface {
	// AmountPaid returns the total BTC paid to address by txid.
	AmountPaid(ctx context.Context, txid, address string) (float64, error)
}

// BalanceSource reports the receiving address's net balance (confirmed plus
// unconfirmed) in BTC.
type BalanceSource interface {
	AddressBalance(ctx context.Context, address string) (float64, error)
}

// Geocoder resolves a free-text city/country claim to coordinates. An empty
// result list and a transport failure are the same soft failure.
type Geocoder interface {
	Resolve(ctx context.Context, city, country string) (domain.Coordinates, error)
}

// RateLimitResult holds the outcome of an attempt-counter check.
type RateLimitResult struct {
	Allowed   bool
	Limit     int64
	Remaining int64
	ResetAt   int64 // Unix timestamp
}

// AttemptCounter records one attempt for an origin and reports whether the
// origin is within its sliding-window quota. Backed either by in-process
// memory (single instance) or Redis (multi-instance).
type AttemptCounter interface {
	Allow(ctx context.Context, key string, limit int64, window time.Duration) (*RateLimitResult, error)
}

// HealthChecker verifies one backing dependency is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
	Name() string
}
