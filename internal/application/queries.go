package application

import (
	"time"

	"github.com/bnema/seqlcs/internal/domain"
)

type RunSummary struct {
	ID              domain.RunID
	InputPath       string
	StartedAt       time.Time
	Pairs           int
	TotalOperations int
	TotalElapsed    time.Duration
}

func summaryFromRun(run domain.Run) RunSummary {
	return RunSummary{
		ID:              run.ID,
		InputPath:       run.InputPath,
		StartedAt:       run.StartedAt,
		Pairs:           len(run.Entries),
		TotalOperations: run.TotalOperations(),
		TotalElapsed:    run.TotalElapsed(),
	}
}
