package ports

import (
	"context"

	"github.com/gct/report-admin/internal/core/domain"
)

// ReportRepository defines persistence operations for report definitions.
type ReportRepository interface {
	Insert(ctx context.Context, report *domain.Report) (*domain.Report, error)
	// ExistsByName performs an exact, case-sensitive existence check.
	ExistsByName(ctx context.Context, name string) (bool, error)
}
