package report

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/seqlcs/internal/adapters/atomicfile"
	"github.com/bnema/seqlcs/internal/domain"
)

// TextWriter writes the human-readable report: one block per comparison
// followed by a blank line.
type TextWriter struct{}

func (TextWriter) Write(ctx context.Context, path string, entries []domain.ReportEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var b strings.Builder
	if err := WriteText(&b, entries); err != nil {
		return err
	}

	if err := atomicfile.WriteFile(path, []byte(b.String()), atomicfile.DefaultFileMode); err != nil {
		return fmt.Errorf("write text report: %w", err)
	}

	return nil
}

func WriteText(w io.Writer, entries []domain.ReportEntry) error {
	for _, entry := range entries {
		_, err := fmt.Fprintf(w,
			"Comparison #%d\n%s = %s; n = %d\n%s = %s; n = %d\nSubSeq = %s; n = %d\nCountOperations = %d\nNanoseconds = %d\n\n",
			entry.Index,
			entry.First.Name, entry.First.Symbols, entry.First.Len(),
			entry.Second.Name, entry.Second.Symbols, entry.Second.Len(),
			entry.LCS, entry.LCSLen(),
			entry.Metrics.Operations,
			entry.Metrics.Elapsed.Nanoseconds(),
		)
		if err != nil {
			return fmt.Errorf("format comparison #%d: %w", entry.Index, err)
		}
	}

	return nil
}
