package util

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatMinutes formats a duration as "45m", "2h" or "4h 30m".
func FormatMinutes(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	hours := minutes / 60
	mins := minutes % 60
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}

// FormatMiles formats a distance as "1.2 mi". Distances at or beyond
// unknown are shown as "—".
func FormatMiles(miles, unknown float64) string {
	if miles >= unknown {
		return "—"
	}
	return fmt.Sprintf("%.1f mi", miles)
}

// FormatPrice renders a price tier as dollar signs.
func FormatPrice(tier int) string {
	if tier < 1 {
		return "—"
	}
	return strings.Repeat("$", tier)
}

// FormatRating formats a rating as "4.8".
func FormatRating(rating float64) string {
	return formatRatingNumber(rating)
}

// FormatRatingWithStar formats a rating as "4.8 ★" for display.
func FormatRatingWithStar(rating float64) string {
	return formatRatingNumber(rating) + " ★"
}

// FormatRatingStars formats a 0-5 rating as stars (e.g., "★★★★☆").
func FormatRatingStars(rating float64) string {
	stars := int(math.Round(rating))
	if stars < 0 {
		stars = 0
	}
	if stars > 5 {
		stars = 5
	}
	return strings.Repeat("★", stars) + strings.Repeat("☆", 5-stars)
}

func formatRatingNumber(v float64) string {
	// Keep one decimal at most, but avoid trailing .0 for whole values.
	s := strconv.FormatFloat(v, 'f', 1, 64)
	s = strings.TrimSuffix(s, ".0")
	return s
}

// TruncateString truncates a string to maxLen and adds "..." if needed.
func TruncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen < 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
