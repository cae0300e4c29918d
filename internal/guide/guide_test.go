package guide

import (
	"testing"

	"dateplan/internal/model"

	"github.com/stretchr/testify/assert"
)

var adventure = &model.Template{
	ID:         "active-adventure",
	Name:       "Active Adventure",
	Categories: []model.Category{model.CategoryActivity, model.CategoryNightlife, model.CategoryDining},
}

func TestGuide_Inactive(t *testing.T) {
	g := For(nil, 3)

	assert.False(t, g.Active())
	_, ok := g.Required()
	assert.False(t, ok)
	assert.Empty(t, g.Label())
	assert.Zero(t, g.Fraction())
	assert.Nil(t, g.Remaining())
}

func TestGuide_Steps(t *testing.T) {
	g := For(adventure, 1)

	required, ok := g.Required()
	assert.True(t, ok)
	assert.Equal(t, model.CategoryNightlife, required)
	assert.Equal(t, "Step 2 of 3: Nightlife", g.Label())
	assert.InDelta(t, 1.0/3.0, g.Fraction(), 1e-9)
	assert.Equal(t, []model.Category{model.CategoryNightlife, model.CategoryDining}, g.Remaining())
}

func TestGuide_ClampsProgress(t *testing.T) {
	assert.Equal(t, 0, For(adventure, -2).Progress())
	assert.Equal(t, 3, For(adventure, 9).Progress())

	done := For(adventure, 3)
	_, ok := done.Required()
	assert.False(t, ok)
	assert.Equal(t, 1.0, done.Fraction())
	assert.Equal(t, "Active Adventure complete", done.Label())
	assert.Empty(t, done.Remaining())
}
