package ports

import (
	"context"

	"github.com/bnema/seqlcs/internal/domain"
)

type SequenceRepository interface {
	Load(ctx context.Context, path string) ([]domain.Sequence, error)
	Save(ctx context.Context, path string, sequences []domain.Sequence) error
}
