package summary

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/bnema/seqlcs/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultMaxPairs = 10
	barWidth        = 24
)

type RenderOptions struct {
	// MaxPairs caps how many of the closest pairs are listed. Zero means 10,
	// negative lists none.
	MaxPairs int
}

func renderView(run domain.Run, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("LCS Comparison Summary"),
		s.header.Render(fmt.Sprintf("pairs: %d  operations: %d  elapsed: %s",
			len(run.Entries), run.TotalOperations(), formatElapsed(run.TotalElapsed()))),
	}

	if len(run.Entries) == 0 {
		lines = append(lines, s.empty.Render("Fewer than two sequences, nothing to compare."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	closest := closestPairs(run.Entries, maxPairs(opts))
	if len(closest) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	pairLines := []string{s.key.Render("closest pairs:")}
	for _, entry := range closest {
		pairLines = append(pairLines, pairLine(entry, s))
	}
	lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, pairLines...)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func maxPairs(opts RenderOptions) int {
	if opts.MaxPairs == 0 {
		return defaultMaxPairs
	}
	if opts.MaxPairs < 0 {
		return 0
	}

	return opts.MaxPairs
}

// closestPairs orders by similarity, highest first, then by index.
func closestPairs(entries []domain.ReportEntry, limit int) []domain.ReportEntry {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b domain.ReportEntry) int {
		if c := cmp.Compare(similarity(b), similarity(a)); c != 0 {
			return c
		}
		return cmp.Compare(a.Index, b.Index)
	})

	if len(sorted) > limit {
		sorted = sorted[:limit]
	}

	return sorted
}

// similarity is the LCS length as a percentage of the longer sequence.
func similarity(entry domain.ReportEntry) float64 {
	longest := max(entry.First.Len(), entry.Second.Len())
	if longest == 0 {
		return 100
	}

	return 100 * float64(entry.LCSLen()) / float64(longest)
}

func pairLine(entry domain.ReportEntry, s styles) string {
	label := s.pair.Render(fmt.Sprintf("#%d %s × %s", entry.Index, entry.First.Name, entry.Second.Name))
	percent := similarity(entry)
	meta := s.meta.Render(fmt.Sprintf("%3.0f%%  lcs %d/%d  ops %d",
		percent, entry.LCSLen(), max(entry.First.Len(), entry.Second.Len()), entry.Metrics.Operations))

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		label,
		" ",
		renderProgressBar(percent, barWidth, s),
		" ",
		meta,
	)
}

func renderProgressBar(percent float64, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	filled := int(math.Round(float64(width) * clampPercent(percent) / 100))
	filled = min(max(filled, 0), width)

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func formatElapsed(d time.Duration) string {
	if d < time.Millisecond {
		return d.String()
	}

	return d.Round(time.Microsecond).String()
}
