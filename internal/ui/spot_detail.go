package ui

import (
	"strings"

	"dateplan/internal/distance"
	"dateplan/internal/model"
	"dateplan/internal/util"

	"github.com/charmbracelet/lipgloss"
)

// SpotDetailModel shows one venue in full.
type SpotDetailModel struct {
	spot   model.Candidate
	inPlan bool
}

// NewSpotDetailModel creates a detail view.
func NewSpotDetailModel(spot model.Candidate, inPlan bool) *SpotDetailModel {
	return &SpotDetailModel{spot: spot, inPlan: inPlan}
}

// View renders the spot detail.
func (m *SpotDetailModel) View(width, height int, referenceZone string) string {
	v := m.spot

	action := "enter add to plan"
	if m.inPlan {
		action = "enter re-center here"
	}
	header := lipgloss.NewStyle().
		Width(width - 4).
		Align(lipgloss.Right).
		Render(HelpDescStyle.Render(action + "  h back"))

	var fields []string
	fields = append(fields, renderField("Name", v.Name))
	fields = append(fields, LabelStyle.Render("Category:")+" "+CategoryStyle(v.Category).Render(v.Category.Label()))
	fields = append(fields, renderField("Zone", v.Zone))
	fields = append(fields, renderField("Address", v.Address))
	fields = append(fields, renderField("Rating", util.FormatRating(v.Rating)+" "+util.FormatRatingStars(v.Rating)))
	fields = append(fields, renderField("Price", util.FormatPrice(v.PriceTier)))
	fields = append(fields, renderField("Time", v.EstimatedTime))
	if referenceZone != "" {
		fields = append(fields, renderField("From "+referenceZone, util.FormatMiles(v.FromReference, distance.Sentinel)))
	}
	if m.inPlan {
		fields = append(fields, InPlanStyle.Render("✓ in your plan"))
	}

	sections := []string{strings.Join(fields, "\n")}
	if v.Description != "" {
		divider := lipgloss.NewStyle().
			Foreground(ColorMuted).
			Render(strings.Repeat("─", max(0, width-8)))
		sections = append(sections, divider, lipgloss.NewStyle().Width(max(20, width-8)).Render(v.Description))
	}
	if v.ImageURL != "" {
		sections = append(sections, HelpDescStyle.Render(v.ImageURL))
	}

	info := PanelStyle.
		Width(width - 4).
		Render(strings.Join(sections, "\n\n"))

	return lipgloss.JoinVertical(lipgloss.Left, header, info)
}
