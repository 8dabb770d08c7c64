package report

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/bnema/seqlcs/internal/ports"
)

const (
	FormatText = "text"
	FormatTOML = "toml"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

var ErrUnknownFormat = errors.New("unknown report format")

// Formats resolves a format name to its writer. The empty name selects text.
type Formats struct {
	writers map[string]ports.ReportWriter
}

var _ ports.ReportFormats = Formats{}

func NewFormats() Formats {
	return Formats{
		writers: map[string]ports.ReportWriter{
			FormatText: TextWriter{},
			FormatTOML: documentWriter{encode: encodeTOML},
			FormatYAML: documentWriter{encode: encodeYAML},
			FormatJSON: documentWriter{encode: encodeJSON},
		},
	}
}

func (f Formats) Writer(format string) (ports.ReportWriter, error) {
	name := strings.ToLower(strings.TrimSpace(format))
	if name == "" {
		name = FormatText
	}

	writer, ok := f.writers[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (supported: %s)", ErrUnknownFormat, format, strings.Join(f.Names(), ", "))
	}

	return writer, nil
}

func (f Formats) Names() []string {
	names := make([]string, 0, len(f.writers))
	for name := range f.writers {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
