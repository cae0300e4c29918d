package itinerary

import (
	"testing"

	"dateplan/internal/distance"
	"dateplan/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	r1 = model.Venue{ID: "R1", Category: model.CategoryDining, Zone: "Hollywood", Rating: 4.8, PriceTier: 3, EstimatedTime: "1.5-2 hours"}
	r2 = model.Venue{ID: "R2", Category: model.CategoryDining, Zone: "Santa Monica", Rating: 4.4, PriceTier: 2}
	a1 = model.Venue{ID: "A1", Category: model.CategoryActivity, Zone: "Venice", Rating: 4.5, PriceTier: 1, EstimatedTime: "1-2 hours"}
	n1 = model.Venue{ID: "N1", Category: model.CategoryNightlife, Zone: "West Hollywood", Rating: 4.6, PriceTier: 3}
)

func ids(vs []model.Venue) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.ID
	}
	return out
}

func TestSelect_AppendsInOrder(t *testing.T) {
	s := New(Options{})

	assert.True(t, s.Select(r1))
	assert.True(t, s.Select(a1))
	assert.Equal(t, []string{"R1", "A1"}, ids(s.Stops()))
	assert.Equal(t, "Venice", s.ReferenceZone())
}

func TestSelect_ReselectionRecentersOnly(t *testing.T) {
	s := New(Options{})
	s.Select(r1)
	s.Select(a1)
	gen := s.ZoneGeneration()

	assert.False(t, s.Select(r1))
	assert.Equal(t, []string{"R1", "A1"}, ids(s.Stops()))
	assert.Equal(t, "Hollywood", s.ReferenceZone())
	assert.Greater(t, s.ZoneGeneration(), gen)
}

func TestSelect_NeverDuplicates(t *testing.T) {
	s := New(Options{})
	for _, v := range []model.Venue{r1, a1, r1, n1, a1, a1, r2, r1} {
		s.Select(v)
	}
	assert.Equal(t, []string{"R1", "A1", "N1", "R2"}, ids(s.Stops()))
}

func TestRemove_RecentersOnNewLastStop(t *testing.T) {
	s := New(Options{})
	s.Select(r1)
	s.Select(a1)
	s.Select(n1)

	assert.True(t, s.Remove("N1"))
	assert.Equal(t, "Venice", s.ReferenceZone())

	assert.True(t, s.Remove("R1"))
	assert.Equal(t, []string{"A1"}, ids(s.Stops()))
	assert.Equal(t, "Venice", s.ReferenceZone())

	assert.False(t, s.Remove("missing"))
}

func TestRemove_EmptyZonePolicy(t *testing.T) {
	keep := New(Options{EmptyZone: KeepZone})
	keep.Select(r1)
	keep.Remove("R1")
	assert.Zero(t, keep.Len())
	assert.Equal(t, "Hollywood", keep.ReferenceZone())

	cleared := New(Options{EmptyZone: ClearZone})
	cleared.Select(r1)
	cleared.Remove("R1")
	assert.Empty(t, cleared.ReferenceZone())
}

func TestParseEmptyZonePolicy(t *testing.T) {
	p, err := ParseEmptyZonePolicy("")
	require.NoError(t, err)
	assert.Equal(t, KeepZone, p)

	p, err = ParseEmptyZonePolicy("clear")
	require.NoError(t, err)
	assert.Equal(t, ClearZone, p)

	_, err = ParseEmptyZonePolicy("forget")
	assert.Error(t, err)
}

func TestReorder(t *testing.T) {
	s := New(Options{})
	s.Select(r1)
	s.Select(a1)

	assert.True(t, s.Reorder([]string{"A1", "R1"}))
	assert.Equal(t, []string{"A1", "R1"}, ids(s.Stops()))

	assert.False(t, s.Reorder([]string{"R1"}))
	assert.False(t, s.Reorder([]string{"R1", "R1"}))
	assert.False(t, s.Reorder([]string{"R1", "N1"}))
	assert.False(t, s.Reorder([]string{"A1", "R1", "N1"}))
	assert.Equal(t, []string{"A1", "R1"}, ids(s.Stops()))
}

func TestReorder_PreservesMembershipForEveryPermutation(t *testing.T) {
	s := New(Options{})
	for _, v := range []model.Venue{r1, a1, n1} {
		s.Select(v)
	}
	perms := [][]string{
		{"R1", "A1", "N1"}, {"R1", "N1", "A1"}, {"A1", "R1", "N1"},
		{"A1", "N1", "R1"}, {"N1", "R1", "A1"}, {"N1", "A1", "R1"},
	}
	for _, p := range perms {
		require.True(t, s.Reorder(p))
		assert.Equal(t, p, ids(s.Stops()))
		assert.ElementsMatch(t, []string{"R1", "A1", "N1"}, ids(s.Stops()))
	}
}

func TestMove(t *testing.T) {
	s := New(Options{})
	for _, v := range []model.Venue{r1, a1, n1} {
		s.Select(v)
	}

	assert.True(t, s.Move(0, 2))
	assert.Equal(t, []string{"A1", "N1", "R1"}, ids(s.Stops()))
	assert.True(t, s.Move(2, 0))
	assert.Equal(t, []string{"R1", "A1", "N1"}, ids(s.Stops()))
	assert.False(t, s.Move(0, 3))
	assert.False(t, s.Move(-1, 0))
}

func TestTemplate_GuidedFlow(t *testing.T) {
	s := New(Options{})
	s.Select(n1)
	tmpl := model.Template{ID: "T", Name: "Dinner then fun", Categories: []model.Category{model.CategoryDining, model.CategoryActivity}}

	require.NoError(t, s.SelectTemplate(tmpl))
	assert.Equal(t, model.CategoryDining, s.Category())
	assert.Zero(t, s.Progress())
	assert.Zero(t, s.Len(), "starting a template discards the itinerary")

	s.Select(r1)
	assert.Equal(t, 1, s.Progress())
	assert.Equal(t, model.CategoryActivity, s.Category())
	require.NotNil(t, s.Template())

	s.Select(a1)
	assert.Nil(t, s.Template())
	assert.Zero(t, s.Progress())
	assert.Equal(t, model.CategoryAll, s.Category())
	assert.Equal(t, []string{"R1", "A1"}, ids(s.Stops()))
}

func TestTemplate_RemoveStepsBack(t *testing.T) {
	s := New(Options{})
	tmpl := model.Template{ID: "T", Name: "Three", Categories: []model.Category{model.CategoryDining, model.CategoryActivity, model.CategoryNightlife}}
	require.NoError(t, s.SelectTemplate(tmpl))

	s.Select(r1)
	s.Select(a1)
	assert.Equal(t, 2, s.Progress())

	s.Remove("A1")
	assert.Equal(t, 0, s.Progress(), "progress becomes max(0, len-1)")
	assert.Equal(t, model.CategoryDining, s.Category())

	s.Remove("R1")
	assert.Equal(t, 0, s.Progress())
	assert.Equal(t, model.CategoryDining, s.Category())
}

func TestTemplate_ProgressStaysInBounds(t *testing.T) {
	tmpl := model.Template{ID: "T", Categories: []model.Category{model.CategoryDining, model.CategoryActivity, model.CategoryNightlife}}
	venues := []model.Venue{r1, a1, n1, r2}

	s := New(Options{})
	require.NoError(t, s.SelectTemplate(tmpl))
	ops := []func(){
		func() { s.Select(venues[0]) },
		func() { s.Remove(venues[0].ID) },
		func() { s.Select(venues[1]) },
		func() { s.Select(venues[1]) },
		func() { s.Select(venues[2]) },
		func() { s.Remove(venues[1].ID) },
		func() { s.Select(venues[3]) },
		func() { s.Select(venues[0]) },
	}
	for _, op := range ops {
		op()
		if s.Template() != nil {
			assert.GreaterOrEqual(t, s.Progress(), 0)
			assert.LessOrEqual(t, s.Progress(), len(s.Template().Categories))
		}
	}
}

func TestTemplate_RejectsEmpty(t *testing.T) {
	s := New(Options{})
	assert.Error(t, s.SelectTemplate(model.Template{ID: "empty"}))
	assert.Nil(t, s.Template())
}

func TestExitTemplate_KeepsStops(t *testing.T) {
	s := New(Options{})
	require.NoError(t, s.SelectTemplate(model.Template{ID: "T", Categories: []model.Category{model.CategoryDining, model.CategoryActivity}}))
	s.Select(r1)

	s.ExitTemplate()
	assert.Nil(t, s.Template())
	assert.Zero(t, s.Progress())
	assert.Equal(t, model.CategoryAll, s.Category())
	assert.Equal(t, []string{"R1"}, ids(s.Stops()))
}

func TestSetCategory_LockedDuringTemplate(t *testing.T) {
	s := New(Options{})
	assert.True(t, s.SetCategory(model.CategoryNightlife))
	assert.False(t, s.SetCategory(model.Category("bogus")))

	require.NoError(t, s.SelectTemplate(model.Template{ID: "T", Categories: []model.Category{model.CategoryDining}}))
	assert.False(t, s.SetCategory(model.CategoryActivity))
	assert.Equal(t, model.CategoryDining, s.Category())
}

func TestSetSort(t *testing.T) {
	s := New(Options{})
	assert.Equal(t, model.SortRating, s.Sort())
	assert.True(t, s.SetSort(model.SortPriceHigh))
	assert.False(t, s.SetSort(model.SortMode("alphabetical")))
	assert.Equal(t, model.SortPriceHigh, s.Sort())
}

func TestSnapshotRestore(t *testing.T) {
	s := New(Options{})
	s.Select(r1)
	before := s.Snapshot()

	s.Select(a1)
	s.SetSort(model.SortPriceLow)
	s.Restore(before)

	assert.Equal(t, []string{"R1"}, ids(s.Stops()))
	assert.Equal(t, model.SortRating, s.Sort())
	assert.Equal(t, "Hollywood", s.ReferenceZone())
	assert.Equal(t, 1, before.Len())
	assert.True(t, before.Equal(s.Snapshot()))
}

func TestSnapshotEqual(t *testing.T) {
	s := New(Options{})
	s.Select(r1)
	before := s.Snapshot()

	s.Select(r1)
	assert.True(t, before.Equal(s.Snapshot()), "re-selecting the last stop changes nothing")

	s.Select(a1)
	assert.False(t, before.Equal(s.Snapshot()))
}

func TestCandidatesAndSummary(t *testing.T) {
	table := distance.NewTable([]model.Distance{
		{From: "Hollywood", To: "Venice", Miles: 13.5},
		{From: "Venice", To: "Hollywood", Miles: 13.5},
	})
	s := New(Options{})
	s.Select(r1)
	s.Select(a1)

	summary := s.Summary(table)
	assert.Equal(t, 13.5, summary.TravelMiles)
	assert.Equal(t, 270, summary.Legs[0].Times.WalkingMinutes)
	assert.Equal(t, 32, summary.Legs[0].Times.DrivingMinutes)

	// Reference zone is Venice; Hollywood is 13.5 away and West Hollywood is unmapped.
	got := s.Candidates([]model.Venue{r1, a1, n1}, table)
	require.Len(t, got, 2)
	assert.Equal(t, "R1", got[0].ID)
	assert.Equal(t, 13.5, got[0].FromReference)
	assert.Equal(t, "A1", got[1].ID)
}
