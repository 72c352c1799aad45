package ports

import "context"

type ReportService interface {
	// CheckNameExists reports whether a report with exactly this name is
	// already stored. Blank names short-circuit to false without a lookup.
	CheckNameExists(ctx context.Context, name string) (bool, error)
}
