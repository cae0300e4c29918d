package travel

import (
	"testing"

	"dateplan/internal/distance"
	"dateplan/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func laTable() *distance.Table {
	return distance.NewTable([]model.Distance{
		{From: "Hollywood", To: "Venice", Miles: 13.5},
		{From: "Venice", To: "Hollywood", Miles: 13.5},
	})
}

func TestTravelTime(t *testing.T) {
	tests := []struct {
		miles   float64
		walking int
		driving int
	}{
		{0, 0, 0},
		{13.5, 270, 32},
		{1.2, 24, 3},
		{0.8, 16, 2},
		{-4, 0, 0},
	}
	for _, tt := range tests {
		got := TravelTime(tt.miles)
		assert.Equal(t, tt.walking, got.WalkingMinutes, "walking for %v miles", tt.miles)
		assert.Equal(t, tt.driving, got.DrivingMinutes, "driving for %v miles", tt.miles)
	}
}

func TestParseDurationRange(t *testing.T) {
	tests := []struct {
		in       string
		min, max float64
		ok       bool
	}{
		{"1.5-2 hours", 1.5, 2, true},
		{"2-3 hours", 2, 3, true},
		{"1.5–2", 1.5, 2, true},
		{"3 hours", 3, 3, true},
		{"about an hour", 0, 0, false},
		{"", 0, 0, false},
	}
	for _, tt := range tests {
		min, max, ok := ParseDurationRange(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.min, min, tt.in)
		assert.Equal(t, tt.max, max, tt.in)
	}
}

func TestTotalDuration(t *testing.T) {
	itinerary := []model.Venue{
		{ID: "1", EstimatedTime: "1.5-2 hours"}, // 105
		{ID: "2", EstimatedTime: "2-3 hours"},   // 150
		{ID: "3", EstimatedTime: "whenever"},    // 120
	}
	assert.Equal(t, 375, TotalDuration(itinerary))
	assert.Zero(t, TotalDuration(nil))
}

func TestTotalTravelDistance(t *testing.T) {
	r1 := model.Venue{ID: "R1", Zone: "Hollywood"}
	a1 := model.Venue{ID: "A1", Zone: "Venice"}

	assert.Equal(t, 13.5, TotalTravelDistance([]model.Venue{r1, a1}, laTable()))
	assert.Zero(t, TotalTravelDistance([]model.Venue{r1}, laTable()))
	assert.Zero(t, TotalTravelDistance(nil, laTable()))
	assert.Equal(t, 27.0, TotalTravelDistance([]model.Venue{r1, a1, r1}, laTable()))
}

func TestSummarize(t *testing.T) {
	r1 := model.Venue{ID: "R1", Zone: "Hollywood", EstimatedTime: "1.5-2 hours"}
	a1 := model.Venue{ID: "A1", Zone: "Venice", EstimatedTime: "1-2 hours"}

	s := Summarize([]model.Venue{r1, a1}, laTable())
	assert.Equal(t, 2, s.Stops)
	assert.Equal(t, 195, s.TotalMinutes)
	assert.Equal(t, 13.5, s.TravelMiles)
	require.Len(t, s.Legs, 1)
	assert.Equal(t, "R1", s.Legs[0].From.ID)
	assert.Equal(t, "A1", s.Legs[0].To.ID)
	assert.Equal(t, model.TravelTimes{WalkingMinutes: 270, DrivingMinutes: 32}, s.Legs[0].Times)
}
