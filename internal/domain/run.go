package domain

import "time"

type RunID string

// Run is one complete invocation over an input file, as archived.
type Run struct {
	ID         RunID
	InputPath  string
	OutputPath string
	Format     string
	StartedAt  time.Time
	Entries    []ReportEntry
}

func (r Run) TotalOperations() int {
	total := 0
	for _, entry := range r.Entries {
		total += entry.Metrics.Operations
	}

	return total
}

func (r Run) TotalElapsed() time.Duration {
	var total time.Duration
	for _, entry := range r.Entries {
		total += entry.Metrics.Elapsed
	}

	return total
}
