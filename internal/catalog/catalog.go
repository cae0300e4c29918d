// Package catalog turns the venue catalog into the filtered, sorted and
// distance-annotated candidate list shown to the user.
package catalog

import (
	"sort"

	"dateplan/internal/model"
)

// MaxReferenceMiles is the radius around the reference zone outside of
// which venues are hidden, unless the list is sorted by that distance.
const MaxReferenceMiles = 20.0

// Distances looks up miles between two zones.
type Distances interface {
	Distance(from, to string) float64
}

// Query is the filter/sort state applied to the catalog.
type Query struct {
	Category      model.Category
	ReferenceZone string // empty when no location is set
	Sort          model.SortMode
}

// Candidates filters, annotates and sorts venues. The itinerary is only
// read for its last stop. An empty result means nothing matched.
func Candidates(venues []model.Venue, q Query, dist Distances, itinerary []model.Venue) []model.Candidate {
	lastZone := ""
	if len(itinerary) > 0 {
		lastZone = itinerary[len(itinerary)-1].Zone
	}

	out := make([]model.Candidate, 0, len(venues))
	for _, v := range venues {
		if q.Category != "" && q.Category != model.CategoryAll && v.Category != q.Category {
			continue
		}

		c := model.Candidate{Venue: v}
		if q.ReferenceZone != "" {
			c.FromReference = dist.Distance(q.ReferenceZone, v.Zone)
		}
		if lastZone != "" {
			c.FromLast = dist.Distance(lastZone, v.Zone)
		}

		if q.ReferenceZone != "" && q.Sort != model.SortDistance && c.FromReference > MaxReferenceMiles {
			continue
		}
		out = append(out, c)
	}

	sort.SliceStable(out, less(out, q.Sort))
	return out
}

func less(c []model.Candidate, mode model.SortMode) func(i, j int) bool {
	switch mode {
	case model.SortPriceLow:
		return func(i, j int) bool { return c[i].PriceTier < c[j].PriceTier }
	case model.SortPriceHigh:
		return func(i, j int) bool { return c[i].PriceTier > c[j].PriceTier }
	case model.SortDistance:
		return func(i, j int) bool { return c[i].FromReference < c[j].FromReference }
	case model.SortDistanceFromLast:
		return func(i, j int) bool { return c[i].FromLast < c[j].FromLast }
	case model.SortRating:
		return func(i, j int) bool { return c[i].Rating > c[j].Rating }
	default:
		// Unknown modes keep catalog order.
		return func(i, j int) bool { return false }
	}
}
