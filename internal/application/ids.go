package application

import (
	"github.com/bnema/seqlcs/internal/domain"
	"github.com/bnema/seqlcs/internal/ports"
	"github.com/google/uuid"
)

// UUIDv7Generator issues time-ordered run ids, so archived runs sort by
// creation when listed by id.
type UUIDv7Generator struct{}

var _ ports.IDGenerator = UUIDv7Generator{}

func (UUIDv7Generator) NewRunID() domain.RunID {
	return domain.RunID(uuid.Must(uuid.NewV7()).String())
}
