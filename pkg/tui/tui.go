// Package tui provides a terminal user interface for osu2vectra
package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vectra-eng/osu2vectra/pkg/converter"
	"github.com/vectra-eng/osu2vectra/pkg/converter/layouts"
)

// osu-inspired color scheme
var (
	osuPink    = lipgloss.Color("#FF66AA")
	laneYellow = lipgloss.Color("#FFCC22")
	silverGray = lipgloss.Color("#C0C0C0")
	darkGray   = lipgloss.Color("#333333")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(osuPink).
			Background(darkGray).
			Padding(0, 2).
			MarginBottom(1)

	menuStyle = lipgloss.NewStyle().
			Foreground(silverGray).
			PaddingLeft(2)

	selectedStyle = lipgloss.NewStyle().
			Foreground(osuPink).
			Bold(true).
			PaddingLeft(2)

	statusStyle = lipgloss.NewStyle().
			Foreground(laneYellow).
			PaddingTop(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(osuPink).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			MarginTop(1)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(osuPink).
			Padding(1, 2)
)

// State represents the current TUI state
type State int

const (
	StateMenu State = iota
	StateFilePicker
	StateOutput
	StateConverting
	StateResult
)

// MenuItem represents a menu option
type MenuItem struct {
	Title       string
	Description string
	ToFormat    string
}

var menuItems = []MenuItem{
	{Title: "OSU → LUA", Description: "Convert an osu!mania chart to a Vectra map.lua", ToFormat: "lua"},
	{Title: "OSU → MIDI", Description: "Export an osu!mania chart as a MIDI preview", ToFormat: "midi"},
	{Title: "Exit", Description: "Exit the application", ToFormat: ""},
}

// Model represents the TUI model
type Model struct {
	state        State
	menuIndex    int
	filePicker   filepicker.Model
	outputInput  textinput.Model
	spinner      spinner.Model
	keys         int
	selectedFile string
	outputPath   string
	conversion   MenuItem
	err          error
	width        int
	height       int
}

// conversionDoneMsg signals conversion completion
type conversionDoneMsg struct {
	outputPath string
	err        error
}

// New creates a new TUI model
func New(keys int) Model {
	fp := filepicker.New()
	fp.AllowedTypes = []string{".osu"}
	fp.CurrentDirectory, _ = os.Getwd()

	ti := textinput.New()
	ti.Placeholder = "output folder"
	ti.CharLimit = 256

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(osuPink)

	return Model{
		state:       StateMenu,
		menuIndex:   0,
		filePicker:  fp,
		outputInput: ti,
		spinner:     s,
		keys:        keys,
	}
}

// Init initializes the TUI model
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick)
}

// Update handles TUI updates
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state == StateFilePicker {
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case "esc":
				m.state = StateMenu
				return m, nil
			case "ctrl+c":
				return m, tea.Quit
			}
		}

		var cmd tea.Cmd
		m.filePicker, cmd = m.filePicker.Update(msg)

		if didSelect, path := m.filePicker.DidSelectFile(msg); didSelect {
			m.selectedFile = path
			m.state = StateOutput
			m.outputInput.SetValue(defaultOutput(path, m.conversion.ToFormat))
			m.outputInput.Focus()
			return m, textinput.Blink
		}

		return m, cmd
	}

	if m.state == StateOutput {
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case "esc":
				m.state = StateFilePicker
				return m, nil
			case "ctrl+c":
				return m, tea.Quit
			case "enter":
				m.outputPath = strings.TrimSpace(m.outputInput.Value())
				m.state = StateConverting
				return m, tea.Batch(m.spinner.Tick, m.performConversion())
			}
		}
		var cmd tea.Cmd
		m.outputInput, cmd = m.outputInput.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.filePicker.SetHeight(msg.Height - 10)
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case StateMenu:
			return m.updateMenu(msg)
		case StateResult:
			return m.updateResult(msg)
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case conversionDoneMsg:
		m.state = StateResult
		m.outputPath = msg.outputPath
		m.err = msg.err
		return m, nil
	}

	return m, nil
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.menuIndex > 0 {
			m.menuIndex--
		}
	case "down", "j":
		if m.menuIndex < len(menuItems)-1 {
			m.menuIndex++
		}
	case "enter":
		if m.menuIndex == len(menuItems)-1 {
			return m, tea.Quit
		}
		m.conversion = menuItems[m.menuIndex]
		m.state = StateFilePicker
		return m, m.filePicker.Init()
	case "q", "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.state = StateMenu
		m.err = nil
		m.selectedFile = ""
		m.outputPath = ""
		return m, nil
	case "q", "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

// defaultOutput suggests an output target for the selected chart
func defaultOutput(input, toFormat string) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	if toFormat == "midi" {
		return base + ".mid"
	}
	return filepath.Dir(input)
}

func (m Model) performConversion() tea.Cmd {
	input := m.selectedFile
	output := m.outputPath
	toFormat := m.conversion.ToFormat
	keys := m.keys

	return func() tea.Msg {
		conv := converter.New(layouts.New(keys))

		if toFormat == "midi" {
			data, err := os.ReadFile(input)
			if err != nil {
				return conversionDoneMsg{err: err}
			}
			result, err := conv.OsuToMIDI(string(data))
			if err != nil {
				return conversionDoneMsg{err: err}
			}
			if err := os.WriteFile(output, result, 0644); err != nil {
				return conversionDoneMsg{err: err}
			}
			return conversionDoneMsg{outputPath: output}
		}

		outPath, _, err := conv.ConvertFile(input, output, "")
		if err != nil {
			return conversionDoneMsg{err: err}
		}
		return conversionDoneMsg{outputPath: outPath}
	}
}

// View renders the TUI
func (m Model) View() string {
	var s strings.Builder

	s.WriteString(asciiLogo())
	s.WriteString("\n")

	switch m.state {
	case StateMenu:
		s.WriteString(m.viewMenu())
	case StateFilePicker:
		s.WriteString(m.viewFilePicker())
	case StateOutput:
		s.WriteString(m.viewOutput())
	case StateConverting:
		s.WriteString(m.viewConverting())
	case StateResult:
		s.WriteString(m.viewResult())
	}

	s.WriteString("\n")
	s.WriteString(helpStyle.Render("↑/↓: navigate • enter: select • q: quit"))

	return s.String()
}

func (m Model) viewMenu() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render(" SELECT CONVERSION "))
	s.WriteString("\n\n")

	for i, item := range menuItems {
		if i == m.menuIndex {
			s.WriteString(selectedStyle.Render(fmt.Sprintf("▸ %s", item.Title)))
			s.WriteString("\n")
			s.WriteString(lipgloss.NewStyle().Foreground(laneYellow).PaddingLeft(4).Render(item.Description))
		} else {
			s.WriteString(menuStyle.Render(fmt.Sprintf("  %s", item.Title)))
		}
		s.WriteString("\n")
	}

	return boxStyle.Render(s.String())
}

func (m Model) viewFilePicker() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render(" SELECT OSU FILE "))
	s.WriteString("\n\n")
	s.WriteString(m.filePicker.View())
	s.WriteString("\n")
	s.WriteString(helpStyle.Render("esc: back to menu"))

	return s.String()
}

func (m Model) viewOutput() string {
	var s strings.Builder

	label := " OUTPUT FOLDER "
	if m.conversion.ToFormat == "midi" {
		label = " OUTPUT FILE "
	}
	s.WriteString(titleStyle.Render(label))
	s.WriteString("\n\n")
	s.WriteString(m.outputInput.View())
	s.WriteString("\n")
	s.WriteString(helpStyle.Render("enter: confirm • esc: back"))

	return boxStyle.Render(s.String())
}

func (m Model) viewConverting() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render(" CONVERTING "))
	s.WriteString("\n\n")
	s.WriteString(fmt.Sprintf("%s Converting %s...\n", m.spinner.View(), filepath.Base(m.selectedFile)))
	s.WriteString(statusStyle.Render(fmt.Sprintf("  osu → %s (%dK)", m.conversion.ToFormat, m.keys)))

	return boxStyle.Render(s.String())
}

func (m Model) viewResult() string {
	var s strings.Builder

	if m.err != nil {
		s.WriteString(titleStyle.Render(" ERROR "))
		s.WriteString("\n\n")
		s.WriteString(errorStyle.Render(fmt.Sprintf("✗ Conversion failed: %s", m.err.Error())))
	} else {
		s.WriteString(titleStyle.Render(" SUCCESS "))
		s.WriteString("\n\n")
		s.WriteString(successStyle.Render("✓ Conversion complete!"))
		s.WriteString("\n\n")
		s.WriteString(fmt.Sprintf("Input:  %s\n", filepath.Base(m.selectedFile)))
		s.WriteString(fmt.Sprintf("Output: %s", m.outputPath))
	}

	s.WriteString("\n\n")
	s.WriteString(helpStyle.Render("Press enter to continue"))

	return boxStyle.Render(s.String())
}

func asciiLogo() string {
	logo := `
   ___  ____  _   _ ____ __     _______ ____ _____ ____      _
  / _ \/ ___|| | | |___ \\ \   / / ____/ ___|_   _|  _ \    / \
 | | | \___ \| | | | __) |\ \ / /|  _|| |     | | | |_) |  / _ \
 | |_| |___) | |_| |/ __/  \ V / | |__| |___  | | |  _ <  / ___ \
  \___/|____/ \___/|_____|  \_/  |_____\____| |_| |_| \_\/_/   \_\
`
	return lipgloss.NewStyle().Foreground(osuPink).Render(logo)
}

// Run starts the TUI application
func Run(keys int) error {
	p := tea.NewProgram(New(keys), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
