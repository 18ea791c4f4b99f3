package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/quale-dev/tablesmith/designer"
)

type model struct {
	designer designer.Model
}

func newModel() model {
	cfg := designer.Config{
		Style:       designer.DefaultStyle(),
		KeyMap:      designer.DefaultKeyMap(),
		Clipboard:   designer.SystemClipboard{},
		ShowPreview: true,
	}
	return model{designer: designer.New(cfg)}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "ctrl+q":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.designer, cmd = m.designer.Update(msg)
	return m, cmd
}

func (m model) View() string { return m.designer.View() }

func main() {
	if termenv.EnvNoColor() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	p := tea.NewProgram(newModel(), tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
