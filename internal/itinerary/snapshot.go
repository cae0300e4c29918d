package itinerary

import "dateplan/internal/model"

// Snapshot is a value copy of a session's state, used for undo/redo.
type Snapshot struct {
	stops         []model.Venue
	category      model.Category
	sort          model.SortMode
	referenceZone string
	template      *model.Template
	progress      int
}

// Snapshot captures the current state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		stops:         s.Stops(),
		category:      s.category,
		sort:          s.sort,
		referenceZone: s.referenceZone,
		template:      s.template,
		progress:      s.progress,
	}
}

// Restore puts the session back to a captured state. Templates are never
// mutated in place, so sharing the pointer is fine.
func (s *Session) Restore(snap Snapshot) {
	s.stops = append([]model.Venue(nil), snap.stops...)
	s.category = snap.category
	s.sort = snap.sort
	s.template = snap.template
	s.progress = snap.progress
	s.setZone(snap.referenceZone)
}

// Len is the captured itinerary length.
func (snap Snapshot) Len() int {
	return len(snap.stops)
}

// Equal reports whether two snapshots describe the same state.
func (snap Snapshot) Equal(other Snapshot) bool {
	if len(snap.stops) != len(other.stops) {
		return false
	}
	for i := range snap.stops {
		if snap.stops[i].ID != other.stops[i].ID {
			return false
		}
	}
	return snap.category == other.category &&
		snap.sort == other.sort &&
		snap.referenceZone == other.referenceZone &&
		snap.template == other.template &&
		snap.progress == other.progress
}
