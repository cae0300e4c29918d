package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "0m"},
		{45, "45m"},
		{60, "1h"},
		{270, "4h 30m"},
		{-5, "0m"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatMinutes(tt.minutes), "minutes=%d", tt.minutes)
	}
}

func TestFormatMiles(t *testing.T) {
	assert.Equal(t, "0.0 mi", FormatMiles(0, 999))
	assert.Equal(t, "1.2 mi", FormatMiles(1.2, 999))
	assert.Equal(t, "—", FormatMiles(999, 999))
}

func TestFormatPriceAndRating(t *testing.T) {
	assert.Equal(t, "$$$", FormatPrice(3))
	assert.Equal(t, "—", FormatPrice(0))
	assert.Equal(t, "4.8 ★", FormatRatingWithStar(4.8))
	assert.Equal(t, "4", FormatRating(4.0))
	assert.Equal(t, "★★★★☆", FormatRatingStars(4.2))
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "short", TruncateString("short", 10))
	assert.Equal(t, "The Ga...", TruncateString("The Garden Bistro", 9))
	assert.Equal(t, "Ca", TruncateString("Café", 2))
}
