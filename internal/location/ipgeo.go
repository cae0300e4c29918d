package location

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// DefaultGeoURL is an IP geolocation endpoint answering with JSON.
const DefaultGeoURL = "https://ipapi.co/json/"

// HTTPProvider looks up the current zone from an IP geolocation service.
type HTTPProvider struct {
	url        string
	zones      []string
	httpClient *http.Client
}

// NewHTTPProvider creates a provider for the given endpoint. zones are the
// known zone names results are snapped onto.
func NewHTTPProvider(url string, zones []string) *HTTPProvider {
	if url == "" {
		url = DefaultGeoURL
	}
	return &HTTPProvider{
		url:        url,
		zones:      append([]string(nil), zones...),
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

// CurrentZone fetches the caller's approximate place and maps it to a zone.
// The most specific field present wins: district, then city, then region.
func (p *HTTPProvider) CurrentZone(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", p.url, nil)
	if err != nil {
		return "", fmt.Errorf("request creation failed: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("network error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("API error: status %d", resp.StatusCode)
	}

	var result geoResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("JSON decode error: %w", err)
	}
	if result.Error {
		return "", fmt.Errorf("API error: %s", result.Reason)
	}

	for _, candidate := range []string{result.District, result.City, result.Region} {
		if candidate == "" {
			continue
		}
		return Snap(candidate, p.zones), nil
	}
	return "", ErrUnavailable
}

type geoResponse struct {
	District string `json:"district"`
	City     string `json:"city"`
	Region   string `json:"region"`
	Error    bool   `json:"error"`
	Reason   string `json:"reason"`
}
