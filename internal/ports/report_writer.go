package ports

import (
	"context"

	"github.com/bnema/seqlcs/internal/domain"
)

// ReportWriter persists a complete report. Implementations must leave no
// partial output behind when they fail.
type ReportWriter interface {
	Write(ctx context.Context, path string, entries []domain.ReportEntry) error
}

type ReportFormats interface {
	Writer(format string) (ReportWriter, error)
}
