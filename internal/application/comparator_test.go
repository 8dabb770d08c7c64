package application

import (
	"fmt"
	"testing"

	"github.com/bnema/seqlcs/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareAllThreeSequences(t *testing.T) {
	t.Parallel()

	sequences := []domain.Sequence{
		domain.NewSequence("S1", "AC"),
		domain.NewSequence("S2", "CA"),
		domain.NewSequence("S3", "AA"),
	}

	entries := CompareAll(sequences)
	require.Len(t, entries, 3)

	want := []struct {
		index         int
		first, second string
		lcs           string
	}{
		{index: 1, first: "S2", second: "S1", lcs: "C"},
		{index: 2, first: "S3", second: "S1", lcs: "A"},
		{index: 3, first: "S3", second: "S2", lcs: "A"},
	}
	for k, w := range want {
		assert.Equal(t, w.index, entries[k].Index)
		assert.Equal(t, w.first, entries[k].First.Name)
		assert.Equal(t, w.second, entries[k].Second.Name)
		assert.Equal(t, w.lcs, entries[k].LCS)
		assert.Equal(t, 1, entries[k].LCSLen())
		assert.Equal(t, 4, entries[k].Metrics.Operations)
	}
}

func TestCompareAllReadsSubsequenceFromOuterSequence(t *testing.T) {
	t.Parallel()

	entries := CompareAll([]domain.Sequence{
		domain.NewSequence("first", "BA"),
		domain.NewSequence("second", "AB"),
	})
	require.Len(t, entries, 1)
	assert.Equal(t, "second", entries[0].First.Name)
	assert.Equal(t, "A", entries[0].LCS)

	swapped := CompareAll([]domain.Sequence{
		domain.NewSequence("second", "AB"),
		domain.NewSequence("first", "BA"),
	})
	require.Len(t, swapped, 1)
	assert.Equal(t, "B", swapped[0].LCS)
}

func TestCompareAllPairCountAndNumbering(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1, 2, 3, 5, 8} {
		n := n
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()

			sequences := make([]domain.Sequence, n)
			for k := range sequences {
				sequences[k] = domain.NewSequence(fmt.Sprintf("S%d", k), "ACGT"[:k%4+1])
			}

			entries := CompareAll(sequences)
			require.Len(t, entries, n*(n-1)/2)

			k := 0
			for i := 1; i < n; i++ {
				for j := 0; j < i; j++ {
					assert.Equal(t, k+1, entries[k].Index)
					assert.Equal(t, sequences[i], entries[k].First)
					assert.Equal(t, sequences[j], entries[k].Second)
					k++
				}
			}
		})
	}
}

func TestCompareAllEmptySequences(t *testing.T) {
	t.Parallel()

	entries := CompareAll([]domain.Sequence{
		domain.NewSequence("empty", ""),
		domain.NewSequence("dna", "ACGT"),
	})
	require.Len(t, entries, 1)
	assert.Empty(t, entries[0].LCS)
	assert.Zero(t, entries[0].Metrics.Operations)
}

func TestCompareAllDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	sequences := []domain.Sequence{
		domain.NewSequence("S1", "ACGT"),
		domain.NewSequence("S2", "AGT"),
	}
	snapshot := append([]domain.Sequence(nil), sequences...)

	_ = CompareAll(sequences, WithWorkers(4))
	assert.Equal(t, snapshot, sequences)
}

func TestCompareAllWorkersMatchSequential(t *testing.T) {
	t.Parallel()

	sequences, err := Generate(GenerateOptions{Count: 12, MinLength: 5, MaxLength: 40, Seed: 99})
	require.NoError(t, err)

	sequential := withoutElapsed(CompareAll(sequences))
	for _, workers := range []int{0, 1, 2, 7, 64} {
		parallel := withoutElapsed(CompareAll(sequences, WithWorkers(workers)))
		assert.Equal(t, sequential, parallel, "workers=%d", workers)
	}
}

func TestCompareAllReportsProgress(t *testing.T) {
	t.Parallel()

	sequences, err := Generate(GenerateOptions{Count: 9, MinLength: 3, MaxLength: 12, Seed: 5})
	require.NoError(t, err)

	for _, workers := range []int{1, 4} {
		var calls []int
		totals := map[int]bool{}
		entries := CompareAll(sequences, WithWorkers(workers), WithProgress(func(done, total int) {
			calls = append(calls, done)
			totals[total] = true
		}))

		require.Len(t, calls, len(entries), "workers=%d", workers)
		for k, done := range calls {
			assert.Equal(t, k+1, done, "workers=%d", workers)
		}
		assert.Equal(t, map[int]bool{36: true}, totals, "workers=%d", workers)
	}
}

func TestCompareAllWithoutPairsReportsNothing(t *testing.T) {
	t.Parallel()

	called := false
	entries := CompareAll([]domain.Sequence{domain.NewSequence("S1", "A")}, WithProgress(func(int, int) {
		called = true
	}))

	assert.Empty(t, entries)
	assert.False(t, called)
}

func withoutElapsed(entries []domain.ReportEntry) []domain.ReportEntry {
	out := make([]domain.ReportEntry, len(entries))
	for k, entry := range entries {
		entry.Metrics.Elapsed = 0
		out[k] = entry
	}
	return out
}
