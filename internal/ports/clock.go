package ports

import (
	"time"

	"github.com/bnema/seqlcs/internal/domain"
)

type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

type IDGenerator interface {
	NewRunID() domain.RunID
}
