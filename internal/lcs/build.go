package lcs

import "time"

// Build fills the length and direction tables for x and y.
//
// Algorithm (i outer, j inner):
//
//	x[i-1] == y[j-1]         → c[i][j] = c[i-1][j-1] + 1, Diagonal
//	c[i-1][j] >= c[i][j-1]   → c[i][j] = c[i-1][j],       Up
//	otherwise                → c[i][j] = c[i][j-1],       Left
//
// Every cell fill counts as one operation, so Metrics.Operations is always
// len(x)*len(y). Metrics.Elapsed covers the fill loop only. Build accepts any
// inputs, including empty ones, and the returned table is never modified
// afterwards.
func Build[E comparable](x, y []E) (*Table, Metrics) {
	m, n := len(x), len(y)
	t := newTable(m, n)
	stride := n + 1

	var metrics Metrics
	start := time.Now()
	for i := 1; i <= m; i++ {
		row, prev := i*stride, (i-1)*stride
		xi := x[i-1]
		for j := 1; j <= n; j++ {
			cell := row + j
			switch {
			case xi == y[j-1]:
				t.lengths[cell] = t.lengths[prev+j-1] + 1
				t.directions[cell] = Diagonal
			case t.lengths[prev+j] >= t.lengths[cell-1]:
				t.lengths[cell] = t.lengths[prev+j]
				t.directions[cell] = Up
			default:
				t.lengths[cell] = t.lengths[cell-1]
				t.directions[cell] = Left
			}
			metrics.Operations++
		}
	}
	metrics.Elapsed = time.Since(start)

	return t, metrics
}
