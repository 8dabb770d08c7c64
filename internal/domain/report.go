package domain

import (
	"time"
	"unicode/utf8"
)

type ComparisonMetrics struct {
	Operations int
	Elapsed    time.Duration
}

// ReportEntry is the result of comparing one unordered pair. First is always the
// outer-indexed sequence and LCS is read out of First.
type ReportEntry struct {
	Index   int
	First   Sequence
	Second  Sequence
	LCS     string
	Metrics ComparisonMetrics
}

func (e ReportEntry) LCSLen() int {
	return utf8.RuneCountInString(e.LCS)
}

// PairCount returns n*(n-1)/2, the number of entries produced for n sequences.
func PairCount(n int) int {
	if n < 2 {
		return 0
	}

	return n * (n - 1) / 2
}
