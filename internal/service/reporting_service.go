package service

import (
	"context"
	"fmt"

	"traveling-message/internal/core/domain"
	"traveling-message/internal/core/ports"

	"github.com/rs/zerolog"
)

// ReportingService assembles read-side views of the ledger.
type ReportingService struct {
	entryRepo   ports.EntryRepository
	projectRepo ports.ProjectRepository
	balance     ports.BalanceSource
	log         zerolog.Logger
}

// NewReportingService creates a ReportingService.
func NewReportingService(
	entryRepo ports.EntryRepository,
	projectRepo ports.ProjectRepository,
	balance ports.BalanceSource,
	log zerolog.Logger,
) *ReportingService {
	return &ReportingService{
		entryRepo:   entryRepo,
		projectRepo: projectRepo,
		balance:     balance,
		log:         log.With().Str("service", "reporting").Logger(),
	}
}

// BuildLog assembles the full log document in insertion order.
func (s *ReportingService) BuildLog(ctx context.Context) (*domain.LogDocument, error) {
	project, err := s.projectRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load project meta: %w", err)
	}

	entries, err := s.entryRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	if entries == nil {
		entries = []domain.Entry{}
	}

	return &domain.LogDocument{
		Project: domain.ProjectInfo{
			OriginLabel: project.OriginLabel,
			BTCAddress:  project.BTCAddress,
			ExportedISO: domain.UTCNowISO(),
		},
		Entries: entries,
	}, nil
}

// GetStats returns the project summary. The on-chain balance is fetched
// best-effort; a null balance means the explorer could not be reached.
func (s *ReportingService) GetStats(ctx context.Context) (*ports.ProjectStats, error) {
	project, err := s.projectRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load project meta: %w", err)
	}

	stats := &ports.ProjectStats{
		BTCAddress:  project.BTCAddress,
		OriginLabel: project.OriginLabel,
		ISODate:     domain.UTCNowISO(),
	}

	balance, err := s.balance.AddressBalance(ctx, project.BTCAddress)
	if err != nil {
		s.log.Warn().Err(err).Msg("balance lookup failed")
	} else {
		stats.BalanceBTC = &balance
	}

	return stats, nil
}
