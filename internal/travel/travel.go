// Package travel estimates travel times and summarizes itineraries.
package travel

import (
	"math"
	"regexp"
	"strconv"

	"dateplan/internal/model"
)

const (
	walkingMPH = 3.0
	// City driving average, traffic and parking included.
	drivingMPH = 25.0

	// DefaultVisitMinutes is used when a venue's estimated time can't be parsed.
	DefaultVisitMinutes = 120
)

var durationRange = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:[-–]\s*(\d+(?:\.\d+)?))?`)

// Distances looks up miles between two zones.
type Distances interface {
	Distance(from, to string) float64
}

// TravelTime converts a distance into whole-minute walking and driving estimates.
func TravelTime(miles float64) model.TravelTimes {
	return model.TravelTimes{
		WalkingMinutes: minutes(miles, walkingMPH),
		DrivingMinutes: minutes(miles, drivingMPH),
	}
}

func minutes(miles, mph float64) int {
	m := int(math.Round(miles / mph * 60))
	if m < 0 {
		return 0
	}
	return m
}

// ParseDurationRange extracts the hour range from text like "1.5-2 hours".
// A single number yields min == max.
func ParseDurationRange(text string) (min, max float64, ok bool) {
	match := durationRange.FindStringSubmatch(text)
	if match == nil {
		return 0, 0, false
	}
	min, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0, 0, false
	}
	max = min
	if match[2] != "" {
		if max, err = strconv.ParseFloat(match[2], 64); err != nil {
			return 0, 0, false
		}
	}
	return min, max, true
}

// VisitMinutes is the midpoint of a venue's estimated time in minutes.
func VisitMinutes(v model.Venue) float64 {
	min, max, ok := ParseDurationRange(v.EstimatedTime)
	if !ok {
		return DefaultVisitMinutes
	}
	return (min + max) / 2 * 60
}

// TotalDuration sums the visit midpoints of every stop, in whole minutes.
func TotalDuration(itinerary []model.Venue) int {
	total := 0.0
	for _, v := range itinerary {
		total += VisitMinutes(v)
	}
	return int(math.Round(total))
}

// Legs returns the hops between consecutive stops.
func Legs(itinerary []model.Venue, dist Distances) []model.Leg {
	if len(itinerary) < 2 {
		return nil
	}
	legs := make([]model.Leg, 0, len(itinerary)-1)
	for i := 1; i < len(itinerary); i++ {
		miles := dist.Distance(itinerary[i-1].Zone, itinerary[i].Zone)
		legs = append(legs, model.Leg{
			From:  itinerary[i-1],
			To:    itinerary[i],
			Miles: miles,
			Times: TravelTime(miles),
		})
	}
	return legs
}

// TotalTravelDistance sums the leg distances; 0 for fewer than two stops.
func TotalTravelDistance(itinerary []model.Venue, dist Distances) float64 {
	total := 0.0
	for i := 1; i < len(itinerary); i++ {
		total += dist.Distance(itinerary[i-1].Zone, itinerary[i].Zone)
	}
	return total
}

// Summarize computes every metric shown under the plan.
func Summarize(itinerary []model.Venue, dist Distances) model.Summary {
	return model.Summary{
		Stops:        len(itinerary),
		TotalMinutes: TotalDuration(itinerary),
		TravelMiles:  TotalTravelDistance(itinerary, dist),
		Legs:         Legs(itinerary, dist),
	}
}
