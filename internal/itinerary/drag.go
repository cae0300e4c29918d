package itinerary

// DragState is the phase of a reorder gesture.
type DragState int

const (
	DragIdle DragState = iota
	DragDragging
	DragHovering
	DragDropped
)

// Drag models a drag-and-drop reorder as discrete events. Only Drop
// touches the session.
type Drag struct {
	state  DragState
	source int
	target int
}

// State returns the current phase.
func (d *Drag) State() DragState { return d.state }

// Active reports whether a stop is being carried.
func (d *Drag) Active() bool {
	return d.state == DragDragging || d.state == DragHovering
}

// Source is the index of the carried stop.
func (d *Drag) Source() int { return d.source }

// Target is the index the stop would land on.
func (d *Drag) Target() int { return d.target }

// Start picks up the stop at index i.
func (d *Drag) Start(i int) {
	d.state = DragDragging
	d.source = i
	d.target = i
}

// Over moves the hover position to index j.
func (d *Drag) Over(j int) {
	if !d.Active() {
		return
	}
	d.state = DragHovering
	d.target = j
}

// Cancel abandons the gesture without changes.
func (d *Drag) Cancel() {
	*d = Drag{}
}

// Drop commits the gesture. Returns true when the session was reordered.
func (d *Drag) Drop(s *Session) bool {
	if !d.Active() {
		return false
	}
	hovered := d.state == DragHovering
	d.state = DragDropped
	if !hovered || d.source == d.target {
		return false
	}
	return s.Move(d.source, d.target)
}
