package distance

import (
	"testing"

	"dateplan/internal/model"

	"github.com/stretchr/testify/assert"
)

func sampleTable() *Table {
	return NewTable([]model.Distance{
		{From: "Hollywood", To: "Venice", Miles: 13.5},
		{From: "Venice", To: "Hollywood", Miles: 13.5},
		{From: "Downtown", To: "Midtown", Miles: 1.2},
		{From: "Midtown", To: "Downtown", Miles: 1.2},
	})
}

func TestDistance_DefinedPairs(t *testing.T) {
	table := sampleTable()

	assert.Equal(t, 13.5, table.Distance("Hollywood", "Venice"))
	assert.Equal(t, table.Distance("Hollywood", "Venice"), table.Distance("Venice", "Hollywood"))
	assert.Equal(t, 1.2, table.Distance("Midtown", "Downtown"))
}

func TestDistance_SameZoneIsZero(t *testing.T) {
	table := sampleTable()

	assert.Zero(t, table.Distance("Venice", "Venice"))
	// Reflexive lookups hold even for zones the table never mentions.
	assert.Zero(t, table.Distance("Nowhere", "Nowhere"))
}

func TestDistance_UnknownPairReturnsSentinel(t *testing.T) {
	table := sampleTable()

	assert.Equal(t, Sentinel, table.Distance("Hollywood", "Downtown"))
	assert.Equal(t, Sentinel, table.Distance("", "Venice"))

	var empty *Table
	assert.Equal(t, Sentinel, empty.Distance("a", "b"))
}

func TestDistance_ZonesSorted(t *testing.T) {
	assert.Equal(t, []string{"Downtown", "Hollywood", "Midtown", "Venice"}, sampleTable().Zones())
}

func TestAsymmetric(t *testing.T) {
	assert.Empty(t, sampleTable().Asymmetric())

	table := NewTable([]model.Distance{
		{From: "A", To: "B", Miles: 1},
		{From: "B", To: "A", Miles: 2},
		{From: "A", To: "C", Miles: 3},
	})
	assert.Equal(t, []model.Distance{
		{From: "A", To: "B", Miles: 1},
		{From: "A", To: "C", Miles: 3},
		{From: "B", To: "A", Miles: 2},
	}, table.Asymmetric())
}
