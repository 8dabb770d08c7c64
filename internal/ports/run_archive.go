package ports

import (
	"context"

	"github.com/bnema/seqlcs/internal/domain"
)

type RunArchive interface {
	Save(ctx context.Context, run domain.Run) error
	ListRuns(ctx context.Context) ([]domain.Run, error)
	Entries(ctx context.Context, id domain.RunID) ([]domain.ReportEntry, error)
}
