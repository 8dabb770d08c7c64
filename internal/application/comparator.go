package application

import (
	"sync"

	"github.com/bnema/seqlcs/internal/domain"
	"github.com/bnema/seqlcs/internal/lcs"
	"github.com/sourcegraph/conc/iter"
)

type compareConfig struct {
	workers  int
	progress func(done, total int)
}

type CompareOption func(*compareConfig)

// WithWorkers bounds the number of pairs computed at once. Values below 2
// keep the comparison strictly sequential.
func WithWorkers(n int) CompareOption {
	return func(cfg *compareConfig) {
		cfg.workers = n
	}
}

// WithProgress registers fn to be called after each pair completes. Calls
// are serialized and done increases by one per call up to total.
func WithProgress(fn func(done, total int)) CompareOption {
	return func(cfg *compareConfig) {
		cfg.progress = fn
	}
}

// pair addresses sequences[i] and sequences[j] with j < i. index is the
// 1-based position of the pair in the report.
type pair struct {
	index int
	i, j  int
}

// CompareAll computes the LCS of every unordered pair of sequences. Pairs are
// visited with i ascending from 1 and j ascending from 0 up to i-1, and
// entries are numbered from 1 in that order. The subsequence of each entry is
// read out of sequences[i]. Concurrent mode returns the same entries in the
// same order; only the elapsed times differ.
func CompareAll(sequences []domain.Sequence, opts ...CompareOption) []domain.ReportEntry {
	cfg := compareConfig{workers: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	pairs := enumeratePairs(len(sequences))
	report := progressReporter(cfg.progress, len(pairs))
	compare := func(p *pair) domain.ReportEntry {
		entry := comparePair(p.index, sequences[p.i], sequences[p.j])
		report()
		return entry
	}

	if cfg.workers < 2 || len(pairs) < 2 {
		entries := make([]domain.ReportEntry, 0, len(pairs))
		for k := range pairs {
			entries = append(entries, compare(&pairs[k]))
		}
		return entries
	}

	return iter.Mapper[pair, domain.ReportEntry]{MaxGoroutines: cfg.workers}.Map(pairs, compare)
}

func progressReporter(fn func(done, total int), total int) func() {
	if fn == nil {
		return func() {}
	}

	var (
		mu   sync.Mutex
		done int
	)
	return func() {
		mu.Lock()
		defer mu.Unlock()
		done++
		fn(done, total)
	}
}

func enumeratePairs(n int) []pair {
	pairs := make([]pair, 0, domain.PairCount(n))
	index := 1
	for i := 1; i < n; i++ {
		for j := 0; j < i; j++ {
			pairs = append(pairs, pair{index: index, i: i, j: j})
			index++
		}
	}

	return pairs
}

func comparePair(index int, first, second domain.Sequence) domain.ReportEntry {
	res := lcs.Compute(first.Runes(), second.Runes())

	return domain.ReportEntry{
		Index:  index,
		First:  first,
		Second: second,
		LCS:    string(res.Subsequence),
		Metrics: domain.ComparisonMetrics{
			Operations: res.Metrics.Operations,
			Elapsed:    res.Metrics.Elapsed,
		},
	}
}
