package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"traveling-message/internal/core/ports"

	"github.com/rs/zerolog"
)

// ExportService writes the log document to a static JSON artifact so the
// site can serve it without touching the database.
type ExportService struct {
	reporting ports.ReportingService
	path      string
	log       zerolog.Logger
}

// NewExportService creates an ExportService writing to path.
func NewExportService(reporting ports.ReportingService, path string, log zerolog.Logger) *ExportService {
	return &ExportService{
		reporting: reporting,
		path:      path,
		log:       log.With().Str("service", "export").Logger(),
	}
}

// Export rebuilds the artifact from the ledger. The write is atomic:
// readers only ever see a complete document.
func (s *ExportService) Export(ctx context.Context) error {
	doc, err := s.reporting.BuildLog(ctx)
	if err != nil {
		return fmt.Errorf("build log document: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal log document: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create export directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "log-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace artifact: %w", err)
	}

	s.log.Info().Str("path", s.path).Int("entries", len(doc.Entries)).Msg("log exported")
	return nil
}
