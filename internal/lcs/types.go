package lcs

import (
	"fmt"
	"time"
)

// Direction records which recurrence case produced a length-table cell.
type Direction uint8

const (
	// None marks row 0 and column 0, which no recurrence case fills.
	None Direction = iota
	// Diagonal: X[i-1] == Y[j-1], came from c[i-1][j-1].
	Diagonal
	// Up: came from c[i-1][j]; preferred on ties.
	Up
	// Left: came from c[i][j-1].
	Left
)

func (d Direction) String() string {
	switch d {
	case Diagonal:
		return "↖"
	case Up:
		return "↑"
	case Left:
		return "←"
	default:
		return "·"
	}
}

// Metrics is observational data about one Build call. Nothing in the
// algorithm reads it.
type Metrics struct {
	Operations int
	Elapsed    time.Duration
}

// Table holds the length and direction tables produced by Build, both stored
// as flattened row-major buffers of (Rows()+1)*(Cols()+1) cells.
type Table struct {
	m, n       int
	lengths    []int
	directions []Direction
}

func newTable(m, n int) *Table {
	size := (m + 1) * (n + 1)
	return &Table{
		m:          m,
		n:          n,
		lengths:    make([]int, size),
		directions: make([]Direction, size),
	}
}

// Rows returns m, the length of X.
func (t *Table) Rows() int { return t.m }

// Cols returns n, the length of Y.
func (t *Table) Cols() int { return t.n }

// Length returns c[i][j], the LCS length of X[:i] and Y[:j].
func (t *Table) Length(i, j int) int {
	return t.lengths[t.index(i, j)]
}

// Direction returns b[i][j]. Cells in row 0 or column 0 are None.
func (t *Table) Direction(i, j int) Direction {
	return t.directions[t.index(i, j)]
}

// LCSLength returns c[m][n].
func (t *Table) LCSLength() int {
	return t.lengths[len(t.lengths)-1]
}

func (t *Table) index(i, j int) int {
	if i < 0 || i > t.m || j < 0 || j > t.n {
		panic(fmt.Sprintf("lcs: cell (%d, %d) outside table [0..%d]x[0..%d]", i, j, t.m, t.n))
	}
	return i*(t.n+1) + j
}

// Result is the outcome of Compute for one pair.
type Result[E comparable] struct {
	Subsequence []E
	Length      int
	Metrics     Metrics
}
