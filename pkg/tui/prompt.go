package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// promptModel is a minimal one-shot text input used when a CLI argument
// was not supplied on the command line.
type promptModel struct {
	label    string
	input    textinput.Model
	value    string
	canceled bool
}

func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			m.value = strings.TrimSpace(m.input.Value())
			return m, tea.Quit
		case "esc", "ctrl+c":
			m.canceled = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m promptModel) View() string {
	return titleStyle.Render(" "+m.label+" ") + "\n\n" + m.input.View() + "\n" +
		helpStyle.Render("enter: confirm • esc: cancel") + "\n"
}

// Prompt asks the user for a single line of input
func Prompt(label, placeholder string) (string, error) {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 256
	ti.Focus()

	p := tea.NewProgram(promptModel{label: label, input: ti})
	final, err := p.Run()
	if err != nil {
		return "", err
	}

	m, ok := final.(promptModel)
	if !ok || m.canceled {
		return "", errors.New("prompt canceled")
	}
	return m.value, nil
}
