// Package lcs computes the longest common subsequence (LCS) of two symbol
// sequences with the classic dynamic-programming tables.
//
// What it does:
//
//	Build fills an (m+1)x(n+1) length table c and a direction table b for
//	inputs X (length m) and Y (length n). Reconstruct walks b backwards from
//	(m, n) and reads the matched symbols out of X. Compute does both and drops
//	the tables.
//
// Tie-break policy:
//
//	When X[i-1] != Y[j-1] and c[i-1][j] == c[i][j-1], the cell points Up.
//	This decides which of several equally long subsequences is returned, so
//	LCS("AB", "BA") is "A" while LCS("BA", "AB") is "B". Lengths are always
//	symmetric, the text is not.
//
// Usage:
//
//	res := lcs.Compute([]rune("ACGT"), []rune("AGT"))
//	fmt.Println(string(res.Subsequence), res.Length, res.Metrics.Operations)
//	// AGT 3 12
//
// Performance:
//
//   - Time:   O(m·n), exactly m·n cell fills (Metrics.Operations)
//   - Memory: O(m·n) per pair, held only while the pair is being processed
package lcs
