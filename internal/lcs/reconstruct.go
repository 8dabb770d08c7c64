package lcs

import "slices"

// Reconstruct walks the direction table backwards from (i, j) and returns the
// symbols of x on the chosen path, in their original order. The result has
// length t.Length(i, j). The walk is a loop bounded by i+j steps, so input
// size never grows the call stack.
//
// Reconstruct panics if (i, j) lies outside the table or if x is shorter
// than i.
func Reconstruct[E comparable](t *Table, x []E, i, j int) []E {
	out := make([]E, 0, t.Length(i, j))
	for i > 0 && j > 0 {
		switch t.Direction(i, j) {
		case Diagonal:
			out = append(out, x[i-1])
			i--
			j--
		case Up:
			i--
		default:
			j--
		}
	}
	slices.Reverse(out)
	return out
}
