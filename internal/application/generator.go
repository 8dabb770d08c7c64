package application

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/bnema/seqlcs/internal/domain"
)

const DefaultAlphabet = "TGCA"

var ErrInvalidGenerateOptions = errors.New("invalid generate options")

// Generate produces Count random sequences whose lengths fall in
// [MinLength, MaxLength), or exactly MinLength when both bounds are equal.
// A zero Seed draws a fresh seed; any other value is reproducible.
func Generate(opts GenerateOptions) ([]domain.Sequence, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	alphabet := []rune(opts.Alphabet)
	if len(alphabet) == 0 {
		alphabet = []rune(DefaultAlphabet)
	}

	seed := opts.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	sequences := make([]domain.Sequence, 0, opts.Count)
	for range opts.Count {
		sequences = append(sequences, generateSequence(rng, alphabet, opts.MinLength, opts.MaxLength))
	}

	return sequences, nil
}

func generateSequence(rng *rand.Rand, alphabet []rune, minLength, maxLength int) domain.Sequence {
	length := minLength
	if maxLength > minLength {
		length += rng.IntN(maxLength - minLength)
	}

	var b strings.Builder
	b.Grow(length)
	for range length {
		b.WriteRune(alphabet[rng.IntN(len(alphabet))])
	}

	name := fmt.Sprintf("RAND-N%d-%d%d%d%d", length, rng.IntN(10), rng.IntN(10), rng.IntN(10), rng.IntN(10))

	return domain.NewSequence(name, b.String())
}

func (o GenerateOptions) validate() error {
	switch {
	case o.Count < 0:
		return fmt.Errorf("%w: count %d is negative", ErrInvalidGenerateOptions, o.Count)
	case o.MinLength < 0:
		return fmt.Errorf("%w: min length %d is negative", ErrInvalidGenerateOptions, o.MinLength)
	case o.MinLength > o.MaxLength:
		return fmt.Errorf("%w: min length %d exceeds max length %d", ErrInvalidGenerateOptions, o.MinLength, o.MaxLength)
	case strings.ContainsAny(o.Alphabet, "= \t\r\n"):
		return fmt.Errorf("%w: alphabet %q contains a separator or whitespace", ErrInvalidGenerateOptions, o.Alphabet)
	}

	return nil
}
