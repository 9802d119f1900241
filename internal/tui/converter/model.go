// Package converter is the interactive unit converter behind
// "sciops units interactive". The result is recomputed on every keystroke.
package converter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	scierr "github.com/msto63/sciops/foundation/core/error"
	"github.com/msto63/sciops/internal/output"
	"github.com/msto63/sciops/internal/units"
)

// maxHistory bounds the list of accepted conversions shown under the inputs.
const maxHistory = 8

type field int

const (
	fieldSource field = iota
	fieldTarget
)

// Model is the bubbletea model of the converter.
type Model struct {
	conv      *units.Converter
	precision int

	source textinput.Model
	target textinput.Model
	focus  field

	result  string
	err     error
	history []string
	width   int
}

// NewModel creates a converter model. precision is the number of
// significant digits shown.
func NewModel(conv *units.Converter, precision int) Model {
	source := textinput.New()
	source.Placeholder = "12.5 km/h"
	source.CharLimit = 64
	source.Width = 32
	source.Focus()

	target := textinput.New()
	target.Placeholder = "m/s"
	target.CharLimit = 64
	target.Width = 32

	return Model{
		conv:      conv,
		precision: precision,
		source:    source,
		target:    target,
		focus:     fieldSource,
	}
}

// Init starts the cursor blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key presses and window resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab", "shift+tab", "up", "down":
			m.toggleFocus()
			return m, nil

		case "enter":
			if m.err == nil && m.result != "" {
				m.history = append([]string{m.result}, m.history...)
				if len(m.history) > maxHistory {
					m.history = m.history[:maxHistory]
				}
			}
			return m, nil

		case "ctrl+l":
			m.history = nil
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	}

	if m.focus == fieldSource {
		m.source, cmd = m.source.Update(msg)
	} else {
		m.target, cmd = m.target.Update(msg)
	}
	m.recompute()
	return m, cmd
}

func (m *Model) toggleFocus() {
	if m.focus == fieldSource {
		m.focus = fieldTarget
		m.source.Blur()
		m.target.Focus()
		return
	}
	m.focus = fieldSource
	m.target.Blur()
	m.source.Focus()
}

func (m *Model) recompute() {
	m.result, m.err = Evaluate(m.conv, m.source.Value(), m.target.Value(), m.precision)
}

// Evaluate converts "VALUE FROM" to the unit expression to and renders the
// result line. Incomplete input yields an empty result and no error.
func Evaluate(conv *units.Converter, source, to string, precision int) (string, error) {
	source = strings.TrimSpace(source)
	to = strings.TrimSpace(to)
	if source == "" || to == "" {
		return "", nil
	}

	valueText, from, ok := strings.Cut(source, " ")
	from = strings.TrimSpace(from)
	if !ok || from == "" {
		return "", nil
	}

	value, err := strconv.ParseFloat(valueText, 64)
	if err != nil {
		return "", scierr.InvalidInput("%q is not a number", valueText)
	}

	out, err := conv.Convert(value, from, to)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s %s = %s %s",
		output.FormatNumber(value, precision), from,
		output.FormatNumber(out, precision), to), nil
}

// Result returns the current conversion line and error.
func (m Model) Result() (string, error) {
	return m.result, m.err
}

// History returns accepted conversions, newest first.
func (m Model) History() []string {
	return append([]string(nil), m.history...)
}

// View renders the converter.
func (m Model) View() string {
	var s strings.Builder

	s.WriteString(TitleStyle.Render("sciops unit converter"))
	s.WriteString("\n")

	s.WriteString(m.renderInput("value", m.source, m.focus == fieldSource))
	s.WriteString("\n")
	s.WriteString(m.renderInput("to", m.target, m.focus == fieldTarget))
	s.WriteString("\n\n")

	switch {
	case m.err != nil:
		s.WriteString(ErrorStyle.Render("Error: " + m.err.Error()))
		for _, line := range output.Diagnose(m.err) {
			s.WriteString("\n")
			s.WriteString(ErrorStyle.Render(line))
		}
	case m.result != "":
		s.WriteString(ResultStyle.Render(m.result))
	default:
		s.WriteString(HistoryStyle.Render("type a value with its unit, e.g. 100 C"))
	}
	s.WriteString("\n")

	if len(m.history) > 0 {
		s.WriteString("\n")
		for _, h := range m.history {
			s.WriteString(HistoryStyle.Render("  " + h))
			s.WriteString("\n")
		}
	}

	s.WriteString(HelpStyle.Render("Tab: switch field • Enter: keep • Ctrl+L: clear • Esc: quit"))
	return s.String()
}

func (m Model) renderInput(label string, in textinput.Model, focused bool) string {
	style := InputStyle
	if focused {
		style = FocusedInputStyle
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, LabelStyle.Render(label), style.Render(in.View()))
}

// Run starts the converter in the alternate screen and blocks until the
// user quits.
func Run(conv *units.Converter, precision int) error {
	p := tea.NewProgram(NewModel(conv, precision), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return scierr.Wrap(err, "interactive converter failed").WithCode(scierr.CodeInternal)
	}
	return nil
}
