package service

import (
	"context"
	"errors"

	"traveling-message/internal/core/domain"
	"traveling-message/internal/core/ports"
	"traveling-message/internal/metrics"
	"traveling-message/pkg/apperror"

	"github.com/rs/zerolog"
)

// SubmissionService orchestrates the submit flow: sanitize, validate,
// verify payment, geocode, record, export.
type SubmissionService struct {
	entryRepo ports.EntryRepository
	verifier  ports.PaymentVerifier
	geocoder  ports.Geocoder
	exporter  ports.LogExporter
	project   domain.Project
	metrics   *metrics.Metrics
	log       zerolog.Logger
}

// NewSubmissionService creates a SubmissionService.
func NewSubmissionService(
	entryRepo ports.EntryRepository,
	verifier ports.PaymentVerifier,
	geocoder ports.Geocoder,
	exporter ports.LogExporter,
	project domain.Project,
	m *metrics.Metrics,
	log zerolog.Logger,
) *SubmissionService {
	return &SubmissionService{
		entryRepo: entryRepo,
		verifier:  verifier,
		geocoder:  geocoder,
		exporter:  exporter,
		project:   project,
		metrics:   m,
		log:       log.With().Str("service", "submission").Logger(),
	}
}

// Submit validates the request, verifies the payment on-chain, resolves
// the claimed location, and appends exactly one entry for the txid.
func (s *SubmissionService) Submit(ctx context.Context, req ports.SubmitRequest) (*domain.Entry, error) {
	txid := domain.SanitizeText(req.TxID, domain.TxIDLen)
	alias := domain.SanitizeText(req.Alias, domain.AliasMax)
	city := domain.SanitizeText(req.City, domain.CityMax)
	country := domain.SanitizeText(req.Country, domain.CountryMax)

	if !domain.ValidTxID(txid) {
		s.metrics.SubmissionsTotal.WithLabelValues(metrics.OutcomeBadInput).Inc()
		return nil, apperror.ErrInvalidTxID()
	}
	if city == "" || country == "" {
		s.metrics.SubmissionsTotal.WithLabelValues(metrics.OutcomeBadInput).Inc()
		return nil, apperror.ErrMissingLocation()
	}

	amount, err := s.verifier.AmountPaid(ctx, txid, s.project.BTCAddress)
	if err != nil {
		s.log.Debug().Err(err).Str("txid", txid).Msg("payment verification failed")
		s.metrics.SubmissionsTotal.WithLabelValues(metrics.OutcomePaymentUnverified).Inc()
		return nil, apperror.ErrPaymentUnverified()
	}

	coords, err := s.geocoder.Resolve(ctx, city, country)
	if err != nil {
		s.log.Debug().Err(err).Str("city", city).Str("country", country).Msg("geocoding failed")
		s.metrics.SubmissionsTotal.WithLabelValues(metrics.OutcomeLocationUnresolved).Inc()
		return nil, apperror.ErrLocationUnresolved()
	}

	entry := &domain.Entry{
		TxID:      txid,
		Alias:     alias,
		City:      city,
		Country:   country,
		Lat:       coords.Lat,
		Lng:       coords.Lng,
		AmountBTC: amount,
		ISODate:   domain.UTCNowISO(),
	}

	if err := s.entryRepo.Insert(ctx, entry); err != nil {
		if errors.Is(err, ports.ErrDuplicateEntry) {
			s.metrics.SubmissionsTotal.WithLabelValues(metrics.OutcomeDuplicate).Inc()
			return nil, apperror.ErrDuplicateTxID()
		}
		s.log.Error().Err(err).Str("txid", txid).Msg("failed to record entry")
		s.metrics.SubmissionsTotal.WithLabelValues(metrics.OutcomeInternalError).Inc()
		return nil, apperror.InternalError(err)
	}

	s.log.Info().
		Str("txid", txid).
		Str("city", city).
		Str("country", country).
		Float64("amount_btc", amount).
		Msg("entry recorded")
	s.metrics.SubmissionsTotal.WithLabelValues(metrics.OutcomeAccepted).Inc()

	// The entry is committed; a failed export never undoes a submission.
	// The artifact catches up on the next successful write.
	if err := s.exporter.Export(ctx); err != nil {
		s.log.Warn().Err(err).Msg("post-submit export failed")
		s.metrics.ExportFailures.Inc()
	}

	return entry, nil
}
