package ui

import (
	"strings"

	"dateplan/internal/location"
	"dateplan/internal/model"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// LocationFormModel edits the reference zone.
type LocationFormModel struct {
	input   textinput.Model
	presets []string
	preset  int // -1 while the input holds free text
	keys    FormKeyMap
	error   string
}

// NewLocationFormModel creates the form prefilled with the current zone.
func NewLocationFormModel(current string, presets []string) *LocationFormModel {
	input := textinput.New()
	input.Placeholder = "Neighborhood or zone"
	input.CharLimit = 64
	input.SetValue(current)
	input.Focus()

	m := &LocationFormModel{
		input:   input,
		presets: presets,
		preset:  -1,
		keys:    DefaultFormKeyMap(),
	}
	for i, p := range presets {
		if p == current {
			m.preset = i
		}
	}
	return m
}

// Value is the current text.
func (m *LocationFormModel) Value() string {
	return m.input.Value()
}

// Update handles input.
func (m LocationFormModel) Update(msg tea.Msg) (LocationFormModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Cancel):
			return m, func() tea.Msg {
				return model.FormCancelledMsg{}
			}
		case key.Matches(keyMsg, m.keys.Current):
			m.error = ""
			return m, func() tea.Msg {
				return model.LocationRequestedMsg{}
			}
		case key.Matches(keyMsg, m.keys.Save):
			zone := location.Snap(m.input.Value(), m.presets)
			if zone == "" {
				m.error = "Enter a zone or pick one with tab"
				return m, nil
			}
			return m, func() tea.Msg {
				return model.LocationSubmittedMsg{Zone: zone}
			}
		case key.Matches(keyMsg, m.keys.NextPreset):
			m.cyclePreset(1)
			return m, nil
		case key.Matches(keyMsg, m.keys.PrevPreset):
			m.cyclePreset(-1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.preset = -1
		m.error = ""
	}
	return m, cmd
}

func (m *LocationFormModel) cyclePreset(step int) {
	if len(m.presets) == 0 {
		return
	}
	if m.preset < 0 {
		if step > 0 {
			m.preset = 0
		} else {
			m.preset = len(m.presets) - 1
		}
	} else {
		m.preset = (m.preset + step + len(m.presets)) % len(m.presets)
	}
	m.input.SetValue(m.presets[m.preset])
	m.input.CursorEnd()
	m.error = ""
}

// SetError shows a lookup failure under the input.
func (m *LocationFormModel) SetError(msg string) {
	m.error = msg
}

// View renders the form. status is shown while a lookup is in flight.
func (m *LocationFormModel) View(width, height int, status string) string {
	field := ActiveBorderStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		LabelStyle.Render("Where are you starting?"),
		m.input.View(),
	))

	var chips []string
	for i, p := range m.presets {
		style := HelpDescStyle
		if i == m.preset {
			style = BreadcrumbActiveStyle.Bold(true)
		}
		chips = append(chips, style.Render(p))
	}

	sections := []string{field}
	if len(chips) > 0 {
		sections = append(sections, LabelStyle.Render("Zones: ")+strings.Join(chips, HelpDescStyle.Render("  ·  ")))
	}
	if status != "" {
		sections = append(sections, NormalRowStyle.Render(status))
	}
	if m.error != "" {
		sections = append(sections, ErrorStyle.Render(m.error))
	}

	return PanelStyle.
		Width(max(20, width-4)).
		Render(strings.Join(sections, "\n\n"))
}
