package catalog

import (
	"testing"

	"dateplan/internal/distance"
	"dateplan/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	r1 = model.Venue{ID: "R1", Name: "Garden Bistro", Category: model.CategoryDining, Zone: "Downtown", Rating: 4.8, PriceTier: 3}
	a1 = model.Venue{ID: "A1", Name: "Art Museum", Category: model.CategoryActivity, Zone: "Arts District", Rating: 4.5, PriceTier: 1}
	n1 = model.Venue{ID: "N1", Name: "Velvet Lounge", Category: model.CategoryNightlife, Zone: "Midtown", Rating: 4.6, PriceTier: 3}
	e1 = model.Venue{ID: "E1", Name: "Pier Cinema", Category: model.CategoryEntertainment, Zone: "Far Away", Rating: 4.2, PriceTier: 2}
)

func table() *distance.Table {
	return distance.NewTable([]model.Distance{
		{From: "Downtown", To: "Arts District", Miles: 0.8},
		{From: "Arts District", To: "Downtown", Miles: 0.8},
		{From: "Downtown", To: "Midtown", Miles: 1.2},
		{From: "Midtown", To: "Downtown", Miles: 1.2},
		{From: "Midtown", To: "Arts District", Miles: 1.5},
		{From: "Arts District", To: "Midtown", Miles: 1.5},
		{From: "Downtown", To: "Far Away", Miles: 20},
		{From: "Far Away", To: "Downtown", Miles: 20},
	})
}

func ids(cs []model.Candidate) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.ID
	}
	return out
}

func TestCandidates_RatingDescending(t *testing.T) {
	got := Candidates([]model.Venue{a1, r1}, Query{Category: model.CategoryAll, Sort: model.SortRating}, table(), nil)
	assert.Equal(t, []string{"R1", "A1"}, ids(got))
}

func TestCandidates_CategoryFilter(t *testing.T) {
	venues := []model.Venue{r1, a1, n1, e1}

	got := Candidates(venues, Query{Category: model.CategoryNightlife, Sort: model.SortRating}, table(), nil)
	assert.Equal(t, []string{"N1"}, ids(got))

	got = Candidates(venues, Query{Category: model.Category("Nightlife"), Sort: model.SortRating}, table(), nil)
	assert.Empty(t, got, "category match is case-sensitive")
}

func TestCandidates_PriceSorts(t *testing.T) {
	venues := []model.Venue{r1, a1, n1, e1}

	got := Candidates(venues, Query{Category: model.CategoryAll, Sort: model.SortPriceLow}, table(), nil)
	assert.Equal(t, []string{"A1", "E1", "R1", "N1"}, ids(got), "ties keep catalog order")

	got = Candidates(venues, Query{Category: model.CategoryAll, Sort: model.SortPriceHigh}, table(), nil)
	assert.Equal(t, []string{"R1", "N1", "E1", "A1"}, ids(got))
}

func TestCandidates_ReferenceZoneExclusion(t *testing.T) {
	venues := []model.Venue{r1, a1, n1, e1}
	far := model.Venue{ID: "X1", Category: model.CategoryDining, Zone: "Unmapped", Rating: 5, PriceTier: 1}
	venues = append(venues, far)

	got := Candidates(venues, Query{Category: model.CategoryAll, ReferenceZone: "Downtown", Sort: model.SortRating}, table(), nil)
	// Exactly 20 miles is kept, the unmapped sentinel is not.
	assert.Equal(t, []string{"R1", "N1", "A1", "E1"}, ids(got))

	got = Candidates(venues, Query{Category: model.CategoryAll, ReferenceZone: "Downtown", Sort: model.SortDistance}, table(), nil)
	assert.Equal(t, []string{"R1", "A1", "N1", "E1", "X1"}, ids(got), "distance sort never hides venues")
	assert.Equal(t, distance.Sentinel, got[4].FromReference)
}

func TestCandidates_Annotations(t *testing.T) {
	got := Candidates([]model.Venue{r1, a1}, Query{Category: model.CategoryAll, Sort: model.SortRating}, table(), nil)
	require.Len(t, got, 2)
	assert.Zero(t, got[0].FromReference)
	assert.Zero(t, got[0].FromLast)

	got = Candidates([]model.Venue{r1, a1, n1}, Query{Category: model.CategoryAll, ReferenceZone: "Midtown", Sort: model.SortDistanceFromLast}, table(), []model.Venue{a1})
	require.Len(t, got, 3)
	assert.Equal(t, []string{"A1", "R1", "N1"}, ids(got))
	assert.Equal(t, 0.0, got[0].FromLast)
	assert.Equal(t, 0.8, got[1].FromLast)
	assert.Equal(t, 1.2, got[1].FromReference)
}

func TestCandidates_EmptyResultIsValid(t *testing.T) {
	got := Candidates([]model.Venue{r1}, Query{Category: model.CategoryActivity, Sort: model.SortRating}, table(), nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCandidates_Deterministic(t *testing.T) {
	venues := []model.Venue{r1, a1, n1, e1}
	q := Query{Category: model.CategoryAll, ReferenceZone: "Downtown", Sort: model.SortPriceLow}

	first := Candidates(venues, q, table(), []model.Venue{n1})
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, Candidates(venues, q, table(), []model.Venue{n1}))
	}
}
