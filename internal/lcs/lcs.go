package lcs

// Compute builds the tables for x and y, reconstructs the subsequence from x
// and discards the tables before returning.
func Compute[E comparable](x, y []E) Result[E] {
	t, metrics := Build(x, y)
	sub := Reconstruct(t, x, len(x), len(y))

	return Result[E]{
		Subsequence: sub,
		Length:      len(sub),
		Metrics:     metrics,
	}
}

// String is Compute for strings, comparing by rune.
func String(x, y string) (string, Metrics) {
	res := Compute([]rune(x), []rune(y))
	return string(res.Subsequence), res.Metrics
}
