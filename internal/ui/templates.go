package ui

import (
	"strings"

	"dateplan/internal/model"

	"github.com/charmbracelet/lipgloss"
)

// TemplatesModel is the template picker overlay.
type TemplatesModel struct {
	templates []model.Template
	cursor    int
}

// NewTemplatesModel creates a picker over the given templates.
func NewTemplatesModel(templates []model.Template) *TemplatesModel {
	return &TemplatesModel{templates: templates}
}

func (m *TemplatesModel) MoveDown() {
	if m.cursor < len(m.templates)-1 {
		m.cursor++
	}
}

func (m *TemplatesModel) MoveUp() {
	if m.cursor > 0 {
		m.cursor--
	}
}

// Selected returns the highlighted template.
func (m *TemplatesModel) Selected() (model.Template, bool) {
	if len(m.templates) == 0 {
		return model.Template{}, false
	}
	return m.templates[m.cursor], true
}

// View renders the picker.
func (m *TemplatesModel) View(width, height int, replacing int) string {
	if len(m.templates) == 0 {
		return EmptyStateStyle.Width(width).Height(height).Render("No templates available.")
	}

	var blocks []string
	for i, t := range m.templates {
		steps := make([]string, 0, len(t.Categories))
		for _, c := range t.Categories {
			steps = append(steps, CategoryStyle(c).Render(c.Label()))
		}

		nameStyle := NormalRowStyle.Bold(true)
		prefix := "  "
		if i == m.cursor {
			nameStyle = SelectedRowStyle
			prefix = DropTargetStyle.Render("▸ ")
		}
		blocks = append(blocks, lipgloss.JoinVertical(lipgloss.Left,
			prefix+nameStyle.Render(t.Name)+"  "+HelpDescStyle.Render(t.Duration),
			"    "+HelpDescStyle.Render(t.Description),
			"    "+strings.Join(steps, HelpDescStyle.Render(" → ")),
		))
	}

	title := LabelStyle.Render("Choose a date template")
	if replacing > 0 {
		title += "  " + ErrorStyle.Render("starting a template clears your current plan")
	}

	return OverlayStyle.
		Width(max(20, width-4)).
		Render(title + "\n\n" + strings.Join(blocks, "\n\n"))
}
