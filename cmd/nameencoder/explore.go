package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jusunglee/nameencoder/internal/encoder"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	matchStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))
)

// explorer re-encodes the typed name on every key stroke. Enter pins the
// current name so the next one can be compared against it.
type explorer struct {
	ruleset  string
	pipeline *encoder.Pipeline
	input    textinput.Model
	pinned   *encoder.Result
}

func newExplorer(ruleset string, p *encoder.Pipeline) explorer {
	ti := textinput.New()
	ti.Placeholder = "Müller"
	ti.Prompt = "name> "
	ti.CharLimit = 128
	ti.Focus()
	return explorer{ruleset: ruleset, pipeline: p, input: ti}
}

func (m explorer) Init() tea.Cmd {
	return textinput.Blink
}

func (m explorer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			if m.input.Value() != "" {
				r := m.pipeline.Encode(m.input.Value())
				m.pinned = &r
				m.input.Reset()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m explorer) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s (%d layers)", m.ruleset, m.pipeline.Layers())))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if word := m.input.Value(); word != "" {
		r := m.pipeline.Encode(word)
		b.WriteString(renderPath(r))
		if m.pinned != nil {
			b.WriteString("\n")
			if m.pinned.Code() == r.Code() {
				b.WriteString(matchStyle.Render(fmt.Sprintf("same code as %s", m.pinned.Word())))
			} else {
				b.WriteString(subtleStyle.Render(fmt.Sprintf("%s is %s", m.pinned.Word(), m.pinned.Code())))
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(subtleStyle.Render("enter: pin for comparison • esc: quit"))
	b.WriteString("\n")
	return b.String()
}

func explore(ctx context.Context, ruleset string, p *encoder.Pipeline, in io.Reader, out io.Writer) error {
	prog := tea.NewProgram(newExplorer(ruleset, p),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("running explorer: %w", err)
	}
	return nil
}
