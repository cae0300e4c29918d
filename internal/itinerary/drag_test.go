package itinerary

import (
	"testing"

	"dateplan/internal/model"

	"github.com/stretchr/testify/assert"
)

func threeStops() *Session {
	s := New(Options{})
	for _, v := range []model.Venue{r1, a1, n1} {
		s.Select(v)
	}
	return s
}

func TestDrag_OnlyDropMutates(t *testing.T) {
	s := threeStops()
	var d Drag

	d.Start(0)
	assert.Equal(t, DragDragging, d.State())
	d.Over(1)
	d.Over(2)
	assert.Equal(t, DragHovering, d.State())
	assert.Equal(t, []string{"R1", "A1", "N1"}, ids(s.Stops()))

	assert.True(t, d.Drop(s))
	assert.Equal(t, DragDropped, d.State())
	assert.Equal(t, []string{"A1", "N1", "R1"}, ids(s.Stops()))
}

func TestDrag_DropWithoutHoverIsNoop(t *testing.T) {
	s := threeStops()
	var d Drag

	d.Start(1)
	assert.False(t, d.Drop(s))
	assert.Equal(t, []string{"R1", "A1", "N1"}, ids(s.Stops()))
}

func TestDrag_CancelAndIdle(t *testing.T) {
	s := threeStops()
	var d Drag

	d.Over(2)
	assert.Equal(t, DragIdle, d.State(), "hover before start is ignored")
	assert.False(t, d.Drop(s))

	d.Start(2)
	d.Over(0)
	d.Cancel()
	assert.Equal(t, DragIdle, d.State())
	assert.False(t, d.Drop(s))
	assert.Equal(t, []string{"R1", "A1", "N1"}, ids(s.Stops()))
}

func TestDrag_OutOfRangeTarget(t *testing.T) {
	s := threeStops()
	var d Drag

	d.Start(0)
	d.Over(7)
	assert.False(t, d.Drop(s))
	assert.Equal(t, []string{"R1", "A1", "N1"}, ids(s.Stops()))
}
