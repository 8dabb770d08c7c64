package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/seqlcs/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestArchive(t *testing.T) (*Archive, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "history", "runs.db")
	archive, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = archive.Close() })

	return archive, path
}

func sampleRun(id string, startedAt time.Time) domain.Run {
	return domain.Run{
		ID:         domain.RunID(id),
		InputPath:  "in.txt",
		OutputPath: "out.txt",
		Format:     "text",
		StartedAt:  startedAt,
		Entries: []domain.ReportEntry{
			{
				Index:   1,
				First:   domain.NewSequence("S2", "CA"),
				Second:  domain.NewSequence("S1", "AC"),
				LCS:     "C",
				Metrics: domain.ComparisonMetrics{Operations: 4, Elapsed: 1200 * time.Nanosecond},
			},
			{
				Index:   2,
				First:   domain.NewSequence("S3", "AA"),
				Second:  domain.NewSequence("S1", "AC"),
				LCS:     "A",
				Metrics: domain.ComparisonMetrics{Operations: 4, Elapsed: 800 * time.Nanosecond},
			},
		},
	}
}

func TestOpenAppliesPragmasAndVersion(t *testing.T) {
	archive, _ := openTestArchive(t)

	var mode string
	require.NoError(t, archive.db.QueryRow("PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)

	var version int
	require.NoError(t, archive.db.QueryRow("PRAGMA user_version").Scan(&version))
	assert.Equal(t, currentSchemaVersion, version)
}

func TestOpenIsIdempotent(t *testing.T) {
	archive, path := openTestArchive(t)
	require.NoError(t, archive.Save(context.Background(), sampleRun("run-1", time.Unix(100, 0))))
	require.NoError(t, archive.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	runs, err := reopened.ListRuns(context.Background())
	require.NoError(t, err)
	require.Len(t, runs, 1)
}

func TestSaveAndReadBack(t *testing.T) {
	archive, _ := openTestArchive(t)
	ctx := context.Background()

	older := sampleRun("run-b", time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC))
	newer := sampleRun("run-a", time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC))
	newer.Entries = newer.Entries[:1]

	require.NoError(t, archive.Save(ctx, newer))
	require.NoError(t, archive.Save(ctx, older))

	runs, err := archive.ListRuns(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, older, runs[0])
	assert.Equal(t, newer, runs[1])

	entries, err := archive.Entries(ctx, older.ID)
	require.NoError(t, err)
	assert.Equal(t, older.Entries, entries)
}

func TestSaveRunWithoutEntries(t *testing.T) {
	archive, _ := openTestArchive(t)
	ctx := context.Background()

	run := sampleRun("empty", time.Unix(5, 0).UTC())
	run.Entries = nil
	require.NoError(t, archive.Save(ctx, run))

	entries, err := archive.Entries(ctx, run.ID)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSaveDuplicateRunRollsBack(t *testing.T) {
	archive, _ := openTestArchive(t)
	ctx := context.Background()

	run := sampleRun("dup", time.Unix(10, 0).UTC())
	require.NoError(t, archive.Save(ctx, run))
	require.Error(t, archive.Save(ctx, run))

	var count int
	require.NoError(t, archive.db.QueryRow("SELECT COUNT(*) FROM entries WHERE run_id = ?", "dup").Scan(&count))
	assert.Equal(t, len(run.Entries), count)
}

func TestEntriesUnknownRun(t *testing.T) {
	archive, _ := openTestArchive(t)

	_, err := archive.Entries(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrRunNotFound)
}
