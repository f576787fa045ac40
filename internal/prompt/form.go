package prompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginBottom(1)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	focusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1)
)

// formModel is a bubbletea model with one text input per field.
type formModel struct {
	fields []Field
	inputs []textinput.Model
	focus  int

	// message is shown when submit is refused
	message string

	done      bool
	cancelled bool
}

func newFormModel(fields []Field) formModel {
	m := formModel{
		fields: fields,
		inputs: make([]textinput.Model, len(fields)),
	}

	for i, f := range fields {
		input := textinput.New()
		input.Prompt = "> "
		input.CharLimit = 256
		input.Width = 40
		if f.Secret {
			input.EchoMode = textinput.EchoPassword
			input.EchoCharacter = '•'
		}
		m.inputs[i] = input
	}
	if len(m.inputs) > 0 {
		m.inputs[0].Focus()
		m.inputs[0].PromptStyle = focusedStyle
	}

	return m
}

func (m formModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m formModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if len(m.inputs) == 0 {
		m.done = true
		return m, tea.Quit
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit

		case tea.KeyEnter:
			if m.focus < len(m.inputs)-1 {
				cmd := m.setFocus(m.focus + 1)
				return m, cmd
			}
			if empty := m.firstEmpty(); empty >= 0 {
				m.message = m.fields[empty].Label + " is required"
				cmd := m.setFocus(empty)
				return m, cmd
			}
			m.done = true
			return m, tea.Quit

		case tea.KeyTab, tea.KeyDown:
			cmd := m.setFocus((m.focus + 1) % len(m.inputs))
			return m, cmd

		case tea.KeyShiftTab, tea.KeyUp:
			cmd := m.setFocus((m.focus - 1 + len(m.inputs)) % len(m.inputs))
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m formModel) View() string {
	if m.done || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Nutanix cluster connection"))
	b.WriteString("\n")

	for i, f := range m.fields {
		style := labelStyle
		if i == m.focus {
			style = focusedStyle
		}
		b.WriteString(style.Render(f.Label))
		b.WriteString("\n")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}

	if m.message != "" {
		b.WriteString(errorStyle.Render(m.message))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("enter next/submit • tab move • esc cancel"))
	b.WriteString("\n")

	return b.String()
}

// setFocus moves the cursor to input i.
func (m *formModel) setFocus(i int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.inputs[m.focus].PromptStyle = lipgloss.NewStyle()
	m.focus = i
	m.inputs[i].PromptStyle = focusedStyle
	return m.inputs[i].Focus()
}

func (m formModel) firstEmpty() int {
	for i, input := range m.inputs {
		if strings.TrimSpace(input.Value()) == "" {
			return i
		}
	}
	return -1
}

func (m formModel) values() map[string]string {
	values := make(map[string]string, len(m.fields))
	for i, f := range m.fields {
		value := m.inputs[i].Value()
		if !f.Secret {
			value = strings.TrimSpace(value)
		}
		values[f.Key] = value
	}
	return values
}
