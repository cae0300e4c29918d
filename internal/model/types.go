package model

// Category is one of the fixed venue categories.
type Category string

const (
	CategoryAll           Category = "all"
	CategoryDining        Category = "dining"
	CategoryActivity      Category = "activity"
	CategoryNightlife     Category = "nightlife"
	CategoryEntertainment Category = "entertainment"
)

// Categories lists the filterable categories in display order, "all" first.
var Categories = []Category{
	CategoryAll,
	CategoryDining,
	CategoryActivity,
	CategoryNightlife,
	CategoryEntertainment,
}

// Label returns the display label for a category.
func (c Category) Label() string {
	switch c {
	case CategoryAll:
		return "All Spots"
	case CategoryDining:
		return "Dining"
	case CategoryActivity:
		return "Activity"
	case CategoryNightlife:
		return "Nightlife"
	case CategoryEntertainment:
		return "Entertainment"
	default:
		return string(c)
	}
}

// Valid reports whether c is "all" or one of the venue categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// SortMode selects the ordering of catalog candidates.
type SortMode string

const (
	SortRating           SortMode = "rating"
	SortPriceLow         SortMode = "price-low"
	SortPriceHigh        SortMode = "price-high"
	SortDistance         SortMode = "distance"
	SortDistanceFromLast SortMode = "distance-from-last"
)

// SortModes lists the sort modes in the order the UI cycles through them.
var SortModes = []SortMode{
	SortRating,
	SortPriceLow,
	SortPriceHigh,
	SortDistance,
	SortDistanceFromLast,
}

// Label returns the display label for a sort mode.
func (s SortMode) Label() string {
	switch s {
	case SortRating:
		return "Rating"
	case SortPriceLow:
		return "Price: Low to High"
	case SortPriceHigh:
		return "Price: High to Low"
	case SortDistance:
		return "Distance"
	case SortDistanceFromLast:
		return "Distance from last stop"
	default:
		return string(s)
	}
}

// Valid reports whether s is a known sort mode.
func (s SortMode) Valid() bool {
	for _, known := range SortModes {
		if s == known {
			return true
		}
	}
	return false
}

// Venue represents a date spot in the catalog. Venues never change once loaded.
type Venue struct {
	ID            string   `validate:"required"`
	Name          string   `validate:"required"`
	Category      Category `validate:"required,oneof=dining activity nightlife entertainment"`
	Description   string
	Address       string
	Zone          string  `validate:"required"`
	Rating        float64 `validate:"gte=0,lte=5"`
	PriceTier     int     `validate:"gte=1,lte=4"`
	EstimatedTime string
	ImageURL      string `validate:"omitempty,url"`
}

// Distance is one directed entry of the zone distance table.
type Distance struct {
	From  string
	To    string
	Miles float64
}

// Template is a named sequence of category constraints for guided planning.
type Template struct {
	ID          string     `validate:"required"`
	Name        string     `validate:"required"`
	Description string
	Duration    string
	Categories  []Category `validate:"min=1,dive,oneof=dining activity nightlife entertainment"`
}

// Candidate is a venue annotated with distances for list display.
type Candidate struct {
	Venue
	FromReference float64
	FromLast      float64
}

// TravelTimes holds whole-minute travel estimates for a distance.
type TravelTimes struct {
	WalkingMinutes int
	DrivingMinutes int
}

// Leg is the hop between two consecutive stops of an itinerary.
type Leg struct {
	From  Venue
	To    Venue
	Miles float64
	Times TravelTimes
}

// Summary aggregates the metrics shown under an itinerary.
type Summary struct {
	Stops        int
	TotalMinutes int
	TravelMiles  float64
	Legs         []Leg
}
