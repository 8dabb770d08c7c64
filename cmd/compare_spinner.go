package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const progressBarWidth = 20

type compareDoneMsg struct {
	err error
}

type compareProgressMsg struct {
	done  int
	total int
}

type compareSpinnerModel struct {
	spinner   spinner.Model
	inputPath string
	work      tea.Cmd
	done      int
	total     int
	err       error
	finished  bool
}

func newCompareSpinnerModel(inputPath string, work tea.Cmd) compareSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return compareSpinnerModel{
		spinner:   s,
		inputPath: inputPath,
		work:      work,
	}
}

func (m compareSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.work)
}

func (m compareSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case compareProgressMsg:
		m.done = msg.done
		m.total = msg.total
		return m, nil
	case compareDoneMsg:
		m.finished = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m compareSpinnerModel) View() string {
	if m.finished {
		return ""
	}

	if m.total == 0 {
		return fmt.Sprintf("%s Comparing sequences in '%s'...", m.spinner.View(), m.inputPath)
	}

	filled := m.done * progressBarWidth / m.total
	return fmt.Sprintf("%s Comparing pairs %d/%d [%s%s] %d%%",
		m.spinner.View(),
		m.done, m.total,
		strings.Repeat("=", filled), strings.Repeat("-", progressBarWidth-filled),
		m.done*100/m.total,
	)
}

// progressSender forwards pair progress to the program, at most once per
// percent step.
func progressSender(p *tea.Program) func(done, total int) {
	lastPercent := -1
	return func(done, total int) {
		percent := done * 100 / total
		if percent == lastPercent && done != total {
			return
		}
		lastPercent = percent
		p.Send(compareProgressMsg{done: done, total: total})
	}
}

// runWithSpinner shows pair progress on output until work returns.
func runWithSpinner(ctx context.Context, output io.Writer, inputPath string, work func(context.Context, func(done, total int)) error) error {
	var p *tea.Program
	workCmd := func() tea.Msg {
		return compareDoneMsg{err: work(ctx, progressSender(p))}
	}

	p = tea.NewProgram(
		newCompareSpinnerModel(inputPath, workCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(compareSpinnerModel)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.err
}
