package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	contextStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

const maxEntries = 20

type entry struct {
	err    error
	input  string
	output string
}

type consoleModel struct {
	err     error
	session *session
	cfg     config
	entries []entry
	history []string
	input   textinput.Model
	recall  int
	busy    bool
}

type loadedMsg struct {
	err     error
	session *session
}

type evalResultMsg struct {
	err    error
	input  string
	output string
}

func newConsoleModel(cfg config) *consoleModel {
	ti := textinput.New()
	ti.Placeholder = "gl.createBuffer()"
	ti.Prompt = promptStyle.Render("> ")
	ti.Width = 72
	ti.Focus()

	return &consoleModel{cfg: cfg, input: ti}
}

func (m *consoleModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.load)
}

func (m *consoleModel) load() tea.Msg {
	s, err := newSession(m.cfg)
	return loadedMsg{session: s, err: err}
}

func (m *consoleModel) evaluate(src string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.session.eval(src)
		return evalResultMsg{input: src, output: out, err: err}
	}
}

func (m *consoleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			if m.session != nil {
				m.session.close()
			}
			return m, tea.Quit

		case "enter":
			src := strings.TrimSpace(m.input.Value())
			if src == "" || m.busy || m.session == nil {
				return m, nil
			}
			m.busy = true
			m.history = append(m.history, src)
			m.recall = len(m.history)
			m.input.SetValue("")
			return m, m.evaluate(src)

		case "up":
			if m.recall > 0 {
				m.recall--
				m.input.SetValue(m.history[m.recall])
				m.input.CursorEnd()
			}
			return m, nil

		case "down":
			if m.recall < len(m.history)-1 {
				m.recall++
				m.input.SetValue(m.history[m.recall])
				m.input.CursorEnd()
			} else {
				m.recall = len(m.history)
				m.input.SetValue("")
			}
			return m, nil
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.session = msg.session

	case evalResultMsg:
		m.busy = false
		m.entries = append(m.entries, entry{input: msg.input, output: msg.output, err: msg.err})
		if len(m.entries) > maxEntries {
			m.entries = m.entries[len(m.entries)-maxEntries:]
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *consoleModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress esc to quit.", m.err))
	}
	if m.session == nil {
		return "Creating context..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("glsh"))
	b.WriteString(" ")
	b.WriteString(m.session.driverName)
	b.WriteString("  ")
	b.WriteString(contextStyle.Render(m.session.describeContexts()))
	b.WriteString("\n\n")

	for _, e := range m.entries {
		b.WriteString(promptStyle.Render("> "))
		b.WriteString(e.input)
		b.WriteString("\n")
		if e.err != nil {
			b.WriteString(errorStyle.Render(e.err.Error()))
		} else {
			b.WriteString(resultStyle.Render(e.output))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("enter evaluate • ↑/↓ history • esc quit"))
	return b.String()
}

func runInteractive(cfg config) error {
	p := tea.NewProgram(newConsoleModel(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
