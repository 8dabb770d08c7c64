package seqfile

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/bnema/seqlcs/internal/adapters/atomicfile"
	"github.com/bnema/seqlcs/internal/domain"
	"github.com/bnema/seqlcs/internal/ports"
	"golang.org/x/text/unicode/norm"
)

const (
	separator   = "="
	maxLineSize = 64 << 20
)

// Repository reads and writes sequence files: one "name = symbols" record per
// line, blank lines ignored.
type Repository struct{}

var _ ports.SequenceRepository = Repository{}

func NewRepository() Repository {
	return Repository{}
}

func (Repository) Load(ctx context.Context, path string) ([]domain.Sequence, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInputUnreadable, err)
	}
	defer file.Close()

	return Parse(file)
}

func (Repository) Save(ctx context.Context, path string, sequences []domain.Sequence) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var b strings.Builder
	for _, seq := range sequences {
		b.WriteString(seq.Name)
		b.WriteString(" = ")
		b.WriteString(seq.Symbols)
		b.WriteByte('\n')
	}

	if err := atomicfile.WriteFile(path, []byte(b.String()), atomicfile.DefaultFileMode); err != nil {
		return fmt.Errorf("write sequences file: %w", err)
	}

	return nil
}

// Parse reads records until EOF. The first malformed line aborts the whole
// parse; no partial result is returned.
func Parse(r io.Reader) ([]domain.Sequence, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var sequences []domain.Sequence
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		seq, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d %q: %w", lineNo, line, err)
		}
		sequences = append(sequences, seq)
	}

	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, fmt.Errorf("line %d: %w: %w", lineNo+1, domain.ErrMalformedLine, err)
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrInputUnreadable, err)
	}

	return sequences, nil
}

func parseLine(line string) (domain.Sequence, error) {
	if !utf8.ValidString(line) {
		return domain.Sequence{}, fmt.Errorf("%w: invalid UTF-8", domain.ErrMalformedLine)
	}
	if n := strings.Count(line, separator); n != 1 {
		return domain.Sequence{}, fmt.Errorf("%w: expected exactly one %q, found %d", domain.ErrMalformedLine, separator, n)
	}

	name, symbols, _ := strings.Cut(line, separator)

	return domain.NewSequence(normalize(name), normalize(symbols)), nil
}

func normalize(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
