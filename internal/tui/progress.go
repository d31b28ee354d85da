// internal/tui/progress.go
// Package tui renders an interactive progress view for sampling runs on
// terminals; non-interactive runs bypass it entirely.
package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mwiater/benchpress/internal/bench"
)

type productDoneMsg struct {
	name  string
	done  int
	total int
}

type samplingDoneMsg struct {
	results map[string]float64
	err     error
}

type model struct {
	cancel   context.CancelFunc
	spinner  spinner.Model
	progress progress.Model
	current  string
	done     int
	total    int
	results  map[string]float64
	err      error
}

func initialModel(cancel context.CancelFunc, total int) *model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return &model{
		cancel:   cancel,
		spinner:  s,
		progress: progress.New(progress.WithDefaultGradient()),
		total:    total,
	}
}

func (m *model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			m.cancel()
			return m, nil
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.progress.Width = msg.Width - 8
		return m, nil

	case productDoneMsg:
		m.current = msg.name
		m.done = msg.done
		return m, m.progress.SetPercent(float64(msg.done) / float64(msg.total))

	case samplingDoneMsg:
		m.results = msg.results
		m.err = msg.err
		return m, tea.Quit

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		return m, cmd

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *model) View() string {
	status := "Sampling products..."
	if m.current != "" {
		status = fmt.Sprintf("Sampled %s (%d/%d)", m.current, m.done, m.total)
	}
	return fmt.Sprintf("\n %s %s\n\n %s\n", m.spinner.View(), status, m.progress.View())
}

// RunSampling executes the product sampler behind a progress display. The
// returned error is ctx.Err() when the user cancels with ctrl+c or q.
func RunSampling(ctx context.Context, products []string, iterations int) (map[string]float64, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := initialModel(cancel, len(products))
	p := tea.NewProgram(m, tea.WithContext(ctx))

	go func() {
		results, err := bench.MeasureProductsContext(ctx, products, iterations, func(name string, done, total int) {
			p.Send(productDoneMsg{name: name, done: done, total: total})
		})
		p.Send(samplingDoneMsg{results: results, err: err})
	}()

	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return nil, err
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	return m.results, m.err
}
