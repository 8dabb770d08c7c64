package seqfile

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bnema/seqlcs/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSkipsBlankLinesAndTrims(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		"S1 = ACGT",
		"",
		"   ",
		"  S2=AGT  ",
		"\tS3 =\t",
	}, "\n")

	sequences, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []domain.Sequence{
		{Name: "S1", Symbols: "ACGT"},
		{Name: "S2", Symbols: "AGT"},
		{Name: "S3", Symbols: ""},
	}, sequences)
}

func TestParseRejectsMalformedLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{name: "missing separator", input: "S1 = AC\nS2 CA\n", wantErr: `line 2 "S2 CA"`},
		{name: "two separators", input: "S1 = A = C\n", wantErr: "found 2"},
		{name: "only separators", input: "==\n", wantErr: "line 1"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			sequences, err := Parse(strings.NewReader(tc.input))
			require.ErrorIs(t, err, domain.ErrMalformedLine)
			assert.ErrorContains(t, err, tc.wantErr)
			assert.Nil(t, sequences)
		})
	}
}

func TestParseRejectsInvalidUTF8(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{name: "invalid symbols", input: "A = \xff\xfe\nB = \xfe\xff\n", wantErr: "line 1"},
		{name: "invalid name", input: "A = AC\n\xc3 = AC\n", wantErr: "line 2"},
		{name: "truncated rune", input: "A = AC\xe2\x82\n", wantErr: "invalid UTF-8"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			sequences, err := Parse(strings.NewReader(tc.input))
			require.ErrorIs(t, err, domain.ErrMalformedLine)
			assert.ErrorContains(t, err, tc.wantErr)
			assert.Nil(t, sequences)
		})
	}
}

func TestParseNormalizesToNFC(t *testing.T) {
	t.Parallel()

	decomposed := "e\u0301"
	sequences, err := Parse(strings.NewReader("caf" + decomposed + " = A" + decomposed + "\n"))
	require.NoError(t, err)
	require.Len(t, sequences, 1)
	assert.Equal(t, "caf\u00e9", sequences[0].Name)
	assert.Equal(t, 2, sequences[0].Len())
}

func TestParseEmptyInput(t *testing.T) {
	t.Parallel()

	sequences, err := Parse(strings.NewReader("\n\n"))
	require.NoError(t, err)
	assert.Empty(t, sequences)
}

func TestRepositoryLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := NewRepository().Load(context.Background(), filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, domain.ErrInputUnreadable)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestRepositorySaveThenLoadRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "sequences.txt")
	repo := NewRepository()
	want := []domain.Sequence{
		domain.NewSequence("RAND-N4-0001", "TGCA"),
		domain.NewSequence("RAND-N0-1234", ""),
		domain.NewSequence("S3", "AAAA"),
	}

	require.NoError(t, repo.Save(context.Background(), path, want))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "RAND-N4-0001 = TGCA\nRAND-N0-1234 = \nS3 = AAAA\n", string(data))

	got, err := repo.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRepositoryHonorsCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRepository().Load(ctx, "whatever")
	require.ErrorIs(t, err, context.Canceled)
	require.ErrorIs(t, NewRepository().Save(ctx, "whatever", nil), context.Canceled)
}
