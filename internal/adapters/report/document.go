package report

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/bnema/seqlcs/internal/adapters/atomicfile"
	"github.com/bnema/seqlcs/internal/domain"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const documentVersion = 1

type document struct {
	Version     int             `toml:"version" yaml:"version" json:"version"`
	Comparisons []comparisonDoc `toml:"comparisons" yaml:"comparisons" json:"comparisons"`
}

type comparisonDoc struct {
	Index       int         `toml:"index" yaml:"index" json:"index"`
	First       sequenceDoc `toml:"first" yaml:"first" json:"first"`
	Second      sequenceDoc `toml:"second" yaml:"second" json:"second"`
	Subsequence string      `toml:"subsequence" yaml:"subsequence" json:"subsequence"`
	Length      int         `toml:"length" yaml:"length" json:"length"`
	Operations  int         `toml:"operations" yaml:"operations" json:"operations"`
	ElapsedNS   int64       `toml:"elapsed_ns" yaml:"elapsed_ns" json:"elapsed_ns"`
}

type sequenceDoc struct {
	Name    string `toml:"name" yaml:"name" json:"name"`
	Symbols string `toml:"symbols" yaml:"symbols" json:"symbols"`
	Length  int    `toml:"length" yaml:"length" json:"length"`
}

func newDocument(entries []domain.ReportEntry) document {
	doc := document{
		Version:     documentVersion,
		Comparisons: make([]comparisonDoc, 0, len(entries)),
	}

	for _, entry := range entries {
		doc.Comparisons = append(doc.Comparisons, comparisonDoc{
			Index:       entry.Index,
			First:       newSequenceDoc(entry.First),
			Second:      newSequenceDoc(entry.Second),
			Subsequence: entry.LCS,
			Length:      entry.LCSLen(),
			Operations:  entry.Metrics.Operations,
			ElapsedNS:   entry.Metrics.Elapsed.Nanoseconds(),
		})
	}

	return doc
}

func newSequenceDoc(seq domain.Sequence) sequenceDoc {
	return sequenceDoc{Name: seq.Name, Symbols: seq.Symbols, Length: seq.Len()}
}

type documentWriter struct {
	encode func(document) ([]byte, error)
}

func (w documentWriter) Write(ctx context.Context, path string, entries []domain.ReportEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := w.encode(newDocument(entries))
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	if err := atomicfile.WriteFile(path, data, atomicfile.DefaultFileMode); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}

func encodeTOML(doc document) ([]byte, error) {
	return toml.Marshal(doc)
}

func encodeYAML(doc document) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func encodeJSON(doc document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}

	return append(data, '\n'), nil
}
