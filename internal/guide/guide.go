// Package guide derives display state for template-guided planning.
// It never mutates anything; the itinerary session owns the progress.
package guide

import (
	"fmt"

	"dateplan/internal/model"
)

// Guide is a read-only view of a template and how far along it is.
type Guide struct {
	template *model.Template
	progress int
}

// For builds a guide. A nil template yields an inactive guide. Progress is
// clamped to [0, len(categories)].
func For(t *model.Template, progress int) Guide {
	if t == nil {
		return Guide{}
	}
	if progress < 0 {
		progress = 0
	}
	if progress > len(t.Categories) {
		progress = len(t.Categories)
	}
	return Guide{template: t, progress: progress}
}

// Active reports whether a template is guiding selection.
func (g Guide) Active() bool {
	return g.template != nil
}

// Template returns the guiding template, or nil.
func (g Guide) Template() *model.Template {
	return g.template
}

// Progress is the number of completed steps.
func (g Guide) Progress() int {
	return g.progress
}

// Steps is the template length, 0 when inactive.
func (g Guide) Steps() int {
	if g.template == nil {
		return 0
	}
	return len(g.template.Categories)
}

// Required returns the category of the current step.
func (g Guide) Required() (model.Category, bool) {
	if g.template == nil || g.progress >= len(g.template.Categories) {
		return "", false
	}
	return g.template.Categories[g.progress], true
}

// Label describes the current step, e.g. "Step 2 of 3: Activity".
func (g Guide) Label() string {
	if g.template == nil {
		return ""
	}
	required, ok := g.Required()
	if !ok {
		return fmt.Sprintf("%s complete", g.template.Name)
	}
	return fmt.Sprintf("Step %d of %d: %s", g.progress+1, len(g.template.Categories), required.Label())
}

// Fraction is progress / template length, for progress bars.
func (g Guide) Fraction() float64 {
	if g.template == nil || len(g.template.Categories) == 0 {
		return 0
	}
	return float64(g.progress) / float64(len(g.template.Categories))
}

// Remaining lists the categories still to pick, current step first.
func (g Guide) Remaining() []model.Category {
	if g.template == nil {
		return nil
	}
	return append([]model.Category(nil), g.template.Categories[g.progress:]...)
}
