package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/bnema/seqlcs/internal/domain"
	"github.com/bnema/seqlcs/internal/ports"
)

var ErrArchiveNotConfigured = errors.New("run archive not configured")

type Service struct {
	sequences ports.SequenceRepository
	reports   ports.ReportFormats
	archive   ports.RunArchive
	clock     ports.Clock
	ids       ports.IDGenerator
	logger    *slog.Logger
}

type ServiceOption func(*Service)

func WithArchive(archive ports.RunArchive) ServiceOption {
	return func(s *Service) {
		s.archive = archive
	}
}

func WithLogger(logger *slog.Logger) ServiceOption {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithIDGenerator(ids ports.IDGenerator) ServiceOption {
	return func(s *Service) {
		if ids != nil {
			s.ids = ids
		}
	}
}

func NewService(sequences ports.SequenceRepository, reports ports.ReportFormats, clock ports.Clock, opts ...ServiceOption) *Service {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	s := &Service{
		sequences: sequences,
		reports:   reports,
		clock:     clock,
		ids:       UUIDv7Generator{},
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Run loads req.InputPath, compares every pair and writes the report. The
// report is written whole or not at all; a load failure aborts before any
// output exists.
func (s *Service) Run(ctx context.Context, req RunRequest) (domain.Run, error) {
	writer, err := s.reports.Writer(req.Format)
	if err != nil {
		return domain.Run{}, fmt.Errorf("resolve report writer: %w", err)
	}

	startedAt := s.clock.Now()
	sequences, err := s.sequences.Load(ctx, req.InputPath)
	if err != nil {
		return domain.Run{}, fmt.Errorf("load sequences: %w", err)
	}
	s.logger.Info("sequences loaded",
		"path", req.InputPath,
		"sequences", len(sequences),
		"pairs", domain.PairCount(len(sequences)),
	)

	entries := CompareAll(sequences, WithWorkers(req.Workers), WithProgress(req.Progress))
	for _, entry := range entries {
		s.logger.Debug("pair compared",
			"index", entry.Index,
			"first", entry.First.Name,
			"second", entry.Second.Name,
			"lcs_length", entry.LCSLen(),
			"operations", entry.Metrics.Operations,
			"elapsed", entry.Metrics.Elapsed,
		)
	}

	if err := ctx.Err(); err != nil {
		return domain.Run{}, err
	}

	if err := writer.Write(ctx, req.OutputPath, entries); err != nil {
		return domain.Run{}, fmt.Errorf("%w: write report %s: %w", domain.ErrOutputWrite, req.OutputPath, err)
	}
	s.logger.Info("report written", "path", req.OutputPath, "format", req.Format, "entries", len(entries))

	run := domain.Run{
		ID:         s.ids.NewRunID(),
		InputPath:  req.InputPath,
		OutputPath: req.OutputPath,
		Format:     req.Format,
		StartedAt:  startedAt,
		Entries:    entries,
	}

	if s.archive != nil {
		if err := s.archive.Save(ctx, run); err != nil {
			return run, fmt.Errorf("%w: archive run %s: %w", domain.ErrOutputWrite, run.ID, err)
		}
		s.logger.Info("run archived", "id", run.ID)
	}

	return run, nil
}

// Generate writes random sequences to path in the same format Run reads.
func (s *Service) Generate(ctx context.Context, path string, opts GenerateOptions) ([]domain.Sequence, error) {
	sequences, err := Generate(opts)
	if err != nil {
		return nil, err
	}

	if err := s.sequences.Save(ctx, path, sequences); err != nil {
		return nil, fmt.Errorf("%w: save sequences %s: %w", domain.ErrOutputWrite, path, err)
	}
	s.logger.Info("sequences generated", "path", path, "count", len(sequences))

	return sequences, nil
}

func (s *Service) History(ctx context.Context) ([]RunSummary, error) {
	if s.archive == nil {
		return nil, ErrArchiveNotConfigured
	}

	runs, err := s.archive.ListRuns(ctx)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}

	summaries := make([]RunSummary, 0, len(runs))
	for _, run := range runs {
		summaries = append(summaries, summaryFromRun(run))
	}

	return summaries, nil
}

func (s *Service) RunEntries(ctx context.Context, id domain.RunID) ([]domain.ReportEntry, error) {
	if s.archive == nil {
		return nil, ErrArchiveNotConfigured
	}

	entries, err := s.archive.Entries(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load run %s: %w", id, err)
	}

	return entries, nil
}
