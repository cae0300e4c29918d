// Package itinerary holds the planning session: the ordered stops, the
// filter/sort state and the template-guided selection rules.
package itinerary

import (
	"fmt"

	"dateplan/internal/catalog"
	"dateplan/internal/guide"
	"dateplan/internal/model"
	"dateplan/internal/travel"
)

// EmptyZonePolicy decides what removing the last stop does to the
// reference zone.
type EmptyZonePolicy string

const (
	// KeepZone leaves the reference zone where it was.
	KeepZone EmptyZonePolicy = "keep"
	// ClearZone drops the reference zone since no stop is left to derive it from.
	ClearZone EmptyZonePolicy = "clear"
)

// ParseEmptyZonePolicy maps a config value to a policy.
func ParseEmptyZonePolicy(s string) (EmptyZonePolicy, error) {
	switch EmptyZonePolicy(s) {
	case "", KeepZone:
		return KeepZone, nil
	case ClearZone:
		return ClearZone, nil
	default:
		return "", fmt.Errorf("invalid empty-zone policy %q (want keep or clear)", s)
	}
}

// Options configures a new session.
type Options struct {
	EmptyZone EmptyZonePolicy
	Sort      model.SortMode
}

// Session is one user's planning state. It is not safe for concurrent use;
// the caller serializes operations.
type Session struct {
	stops         []model.Venue
	category      model.Category
	sort          model.SortMode
	referenceZone string
	zoneGen       uint64

	template *model.Template
	progress int

	emptyZone EmptyZonePolicy
}

// New creates an empty session.
func New(opts Options) *Session {
	if opts.EmptyZone == "" {
		opts.EmptyZone = KeepZone
	}
	if !opts.Sort.Valid() {
		opts.Sort = model.SortRating
	}
	return &Session{
		category:  model.CategoryAll,
		sort:      opts.Sort,
		emptyZone: opts.EmptyZone,
	}
}

// Stops returns a copy of the itinerary in visit order.
func (s *Session) Stops() []model.Venue {
	return append([]model.Venue(nil), s.stops...)
}

// Len is the number of stops.
func (s *Session) Len() int {
	return len(s.stops)
}

// Contains reports whether a venue id is already a stop.
func (s *Session) Contains(id string) bool {
	return s.indexOf(id) >= 0
}

func (s *Session) indexOf(id string) int {
	for i, v := range s.stops {
		if v.ID == id {
			return i
		}
	}
	return -1
}

// Category is the active category filter.
func (s *Session) Category() model.Category { return s.category }

// Sort is the active sort mode.
func (s *Session) Sort() model.SortMode { return s.sort }

// ReferenceZone is the zone candidates are measured from, "" when unset.
func (s *Session) ReferenceZone() string { return s.referenceZone }

// ZoneGeneration changes every time the reference zone is written.
func (s *Session) ZoneGeneration() uint64 { return s.zoneGen }

// Template returns the active template, or nil.
func (s *Session) Template() *model.Template { return s.template }

// Progress is the template step cursor; 0 without a template.
func (s *Session) Progress() int { return s.progress }

// Guide exposes template progress for display.
func (s *Session) Guide() guide.Guide {
	return guide.For(s.template, s.progress)
}

func (s *Session) setZone(zone string) {
	s.referenceZone = zone
	s.zoneGen++
}

// Select adds a venue as the next stop. Selecting a venue that is already
// a stop leaves the itinerary alone and re-centers the reference zone on
// it. Returns true when a stop was appended.
func (s *Session) Select(v model.Venue) bool {
	if s.Contains(v.ID) {
		s.setZone(v.Zone)
		return false
	}

	s.stops = append(s.stops, v)
	s.setZone(v.Zone)

	if s.template != nil {
		s.progress++
		if s.progress >= len(s.template.Categories) {
			s.template = nil
			s.progress = 0
			s.category = model.CategoryAll
		} else {
			s.category = s.template.Categories[s.progress]
		}
	}
	return true
}

// Remove deletes a stop by venue id. Returns false when no stop matched.
func (s *Session) Remove(id string) bool {
	idx := s.indexOf(id)
	if idx < 0 {
		return false
	}
	s.stops = append(s.stops[:idx:idx], s.stops[idx+1:]...)

	if len(s.stops) > 0 {
		s.setZone(s.stops[len(s.stops)-1].Zone)
	} else if s.emptyZone == ClearZone {
		s.setZone("")
	}

	if s.template != nil {
		// Steps back to the slot before the new end, not simply one step.
		s.progress = max(0, len(s.stops)-1)
		if s.progress < len(s.template.Categories) {
			s.category = s.template.Categories[s.progress]
		}
	}
	return true
}

// Reorder replaces the itinerary with a permutation of its current ids.
// Anything that would add, drop or duplicate a stop is ignored.
func (s *Session) Reorder(ids []string) bool {
	if len(ids) != len(s.stops) {
		return false
	}
	byID := make(map[string]model.Venue, len(s.stops))
	for _, v := range s.stops {
		byID[v.ID] = v
	}
	reordered := make([]model.Venue, 0, len(ids))
	for _, id := range ids {
		v, ok := byID[id]
		if !ok {
			return false
		}
		delete(byID, id)
		reordered = append(reordered, v)
	}
	s.stops = reordered
	return true
}

// Move relocates the stop at index from to index to.
func (s *Session) Move(from, to int) bool {
	if from < 0 || from >= len(s.stops) || to < 0 || to >= len(s.stops) {
		return false
	}
	if from == to {
		return true
	}
	ids := make([]string, 0, len(s.stops))
	for _, v := range s.stops {
		ids = append(ids, v.ID)
	}
	moved := ids[from]
	ids = append(ids[:from], ids[from+1:]...)
	ids = append(ids[:to], append([]string{moved}, ids[to:]...)...)
	return s.Reorder(ids)
}

// SelectTemplate starts a guided flow. Any itinerary in progress is discarded.
func (s *Session) SelectTemplate(t model.Template) error {
	if len(t.Categories) == 0 {
		return fmt.Errorf("template %q has no steps", t.ID)
	}
	t.Categories = append([]model.Category(nil), t.Categories...)
	s.template = &t
	s.progress = 0
	s.category = t.Categories[0]
	s.stops = nil
	return nil
}

// ExitTemplate leaves guided mode and keeps the stops chosen so far.
func (s *Session) ExitTemplate() {
	s.template = nil
	s.progress = 0
	s.category = model.CategoryAll
}

// SetCategory changes the category filter. Refused while a template is
// active since the template drives the category.
func (s *Session) SetCategory(c model.Category) bool {
	if s.template != nil || !c.Valid() {
		return false
	}
	s.category = c
	return true
}

// SetSort changes the sort mode.
func (s *Session) SetSort(mode model.SortMode) bool {
	if !mode.Valid() {
		return false
	}
	s.sort = mode
	return true
}

// SetReferenceZone applies a manually entered or looked-up zone.
func (s *Session) SetReferenceZone(zone string) {
	s.setZone(zone)
}

// ClearReferenceZone removes the location filter.
func (s *Session) ClearReferenceZone() {
	s.setZone("")
}

// Query returns the filter/sort state for the catalog pipeline.
func (s *Session) Query() catalog.Query {
	return catalog.Query{
		Category:      s.category,
		ReferenceZone: s.referenceZone,
		Sort:          s.sort,
	}
}

// Candidates recomputes the visible venue list from the current state.
func (s *Session) Candidates(venues []model.Venue, dist catalog.Distances) []model.Candidate {
	return catalog.Candidates(venues, s.Query(), dist, s.stops)
}

// Summary recomputes the itinerary metrics.
func (s *Session) Summary(dist travel.Distances) model.Summary {
	return travel.Summarize(s.stops, dist)
}
