package domain

import "unicode/utf8"

// Sequence is a named run of symbols loaded from an input file or generated.
// Symbols are Unicode code points; a Sequence is never modified after construction.
type Sequence struct {
	Name    string
	Symbols string
}

func NewSequence(name, symbols string) Sequence {
	return Sequence{Name: name, Symbols: symbols}
}

// Len returns the number of symbols, not bytes.
func (s Sequence) Len() int {
	return utf8.RuneCountInString(s.Symbols)
}

func (s Sequence) Runes() []rune {
	return []rune(s.Symbols)
}

func (s Sequence) String() string {
	return s.Name + " = " + s.Symbols
}
