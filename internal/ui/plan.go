package ui

import (
	"fmt"
	"strings"

	"dateplan/internal/distance"
	"dateplan/internal/guide"
	"dateplan/internal/itinerary"
	"dateplan/internal/model"
	"dateplan/internal/util"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// PlanModel renders the itinerary with its legs and totals.
type PlanModel struct {
	stops   []model.Venue
	summary model.Summary
	guide   guide.Guide
	cursor  int

	bar progress.Model
}

// NewPlanModel creates an empty plan view.
func NewPlanModel() *PlanModel {
	return &PlanModel{
		bar: progress.New(
			progress.WithGradient(string(ColorAccent), string(ColorRose)),
			progress.WithoutPercentage(),
		),
	}
}

// SetPlan refreshes the rendered itinerary.
func (m *PlanModel) SetPlan(stops []model.Venue, summary model.Summary, g guide.Guide) {
	m.stops = stops
	m.summary = summary
	m.guide = g
	if m.cursor >= len(m.stops) {
		m.cursor = len(m.stops) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Cursor is the index of the highlighted stop.
func (m *PlanModel) Cursor() int { return m.cursor }

// SetCursor moves the highlight, clamped to the itinerary.
func (m *PlanModel) SetCursor(i int) {
	if len(m.stops) == 0 {
		m.cursor = 0
		return
	}
	m.cursor = min(max(i, 0), len(m.stops)-1)
}

// Selected returns the highlighted stop.
func (m *PlanModel) Selected() (model.Venue, bool) {
	if len(m.stops) == 0 {
		return model.Venue{}, false
	}
	return m.stops[m.cursor], true
}

func (m *PlanModel) MoveDown() { m.SetCursor(m.cursor + 1) }

func (m *PlanModel) MoveUp() { m.SetCursor(m.cursor - 1) }

// previewOrder shows where the carried stop would land.
func previewOrder(stops []model.Venue, from, to int) []model.Venue {
	if from < 0 || from >= len(stops) || to < 0 || to >= len(stops) || from == to {
		return stops
	}
	out := append([]model.Venue(nil), stops...)
	moved := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out[:to], append([]model.Venue{moved}, out[to:]...)...)
	return out
}

// View renders the plan. While a stop is carried the list shows the
// order it would have after dropping.
func (m *PlanModel) View(width, height int, drag itinerary.Drag) string {
	var sections []string

	if m.guide.Active() {
		m.bar.Width = max(10, min(40, width-8))
		t := m.guide.Template()
		sections = append(sections,
			LabelStyle.Render(t.Name)+"  "+HelpDescStyle.Render(t.Duration),
			m.bar.ViewAs(m.guide.Fraction())+"  "+NormalRowStyle.Render(m.guide.Label()),
		)
		if rest := m.guide.Remaining(); len(rest) > 1 {
			labels := make([]string, 0, len(rest))
			for _, c := range rest {
				labels = append(labels, CategoryStyle(c).Render(c.Label()))
			}
			sections = append(sections, HelpDescStyle.Render("Up next: ")+strings.Join(labels, HelpDescStyle.Render(" → ")))
		}
	}

	if len(m.stops) == 0 {
		empty := "No stops yet.\nPick spots from the Spots tab with  enter  or start from a template with  t ."
		sections = append(sections, EmptyStateStyle.Render(empty))
		return lipgloss.NewStyle().Width(width).Height(height).Render(strings.Join(sections, "\n\n"))
	}

	stops := m.stops
	carried := -1
	cursor := m.cursor
	if drag.Active() {
		stops = previewOrder(m.stops, drag.Source(), drag.Target())
		carried = drag.Target()
		cursor = drag.Target()
	}

	var lines []string
	for i, v := range stops {
		style := NormalRowStyle
		prefix := "  "
		switch {
		case i == carried:
			style = CarriedRowStyle
			prefix = DropTargetStyle.Render("▸ ")
		case i == cursor:
			style = SelectedRowStyle
		}
		title := fmt.Sprintf("%d. %s", i+1, v.Name)
		meta := strings.Join([]string{
			CategoryStyle(v.Category).Render(v.Category.Label()),
			v.Zone,
			util.FormatPrice(v.PriceTier),
			orDash(v.EstimatedTime),
		}, HelpDescStyle.Render(" · "))
		lines = append(lines, prefix+style.Render(util.TruncateString(title, 32))+"  "+meta)

		if i < len(stops)-1 && !drag.Active() && i < len(m.summary.Legs) {
			lines = append(lines, renderLeg(m.summary.Legs[i]))
		}
	}
	sections = append(sections, strings.Join(lines, "\n"))

	divider := lipgloss.NewStyle().
		Foreground(ColorMuted).
		Render(strings.Repeat("─", max(0, width-8)))
	sections = append(sections, divider, m.renderSummary())

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Padding(0, 2).
		Render(strings.Join(sections, "\n\n"))
}

func renderLeg(leg model.Leg) string {
	if leg.Miles >= distance.Sentinel {
		return LegStyle.Render("↓ distance unknown")
	}
	return LegStyle.Render(fmt.Sprintf("↓ %s  ·  walk %s  ·  drive %s",
		util.FormatMiles(leg.Miles, distance.Sentinel),
		util.FormatMinutes(leg.Times.WalkingMinutes),
		util.FormatMinutes(leg.Times.DrivingMinutes),
	))
}

func (m *PlanModel) renderSummary() string {
	stops := "stop"
	if m.summary.Stops != 1 {
		stops = "stops"
	}
	return strings.Join([]string{
		renderField("Stops", fmt.Sprintf("%d %s", m.summary.Stops, stops)),
		renderField("Total time", util.FormatMinutes(m.summary.TotalMinutes)),
		renderField("Travel", fmt.Sprintf("%.1f mi", m.summary.TravelMiles)),
	}, "   ")
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
