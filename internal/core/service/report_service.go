package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/gct/report-admin/internal/core/ports"
)

// ReportService exposes the report-name uniqueness check used by the report
// designer before saving a definition.
type ReportService struct {
	reports ports.ReportRepository
	logger  zerolog.Logger
}

func NewReportService(reports ports.ReportRepository, logger zerolog.Logger) *ReportService {
	return &ReportService{reports: reports, logger: logger}
}

// CheckNameExists returns false for blank names without hitting the store;
// otherwise it performs an exact, case-sensitive existence check.
func (s *ReportService) CheckNameExists(ctx context.Context, name string) (bool, error) {
	if strings.TrimSpace(name) == "" {
		return false, nil
	}

	exists, err := s.reports.ExistsByName(ctx, name)
	if err != nil {
		return false, err
	}

	s.logger.Debug().Str("name", name).Bool("exists", exists).Msg("report name checked")
	return exists, nil
}
