package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// RegionSuffix is appended to every free-text query so ambiguous place names
// resolve inside the citation dataset's region.
const RegionSuffix = ", Los Angeles, CA"

const defaultBaseURL = "https://nominatim.openstreetmap.org"

// Client is a forward-geocoding client for the Nominatim search API.
type Client struct {
	baseURL   string
	userAgent string
	http      *http.Client
}

// searchResult is the subset of the Nominatim response this client reads.
type searchResult []struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// NewClient builds a client. The userAgent identifier is required by the
// Nominatim usage policy and must be provided explicitly; there is no
// environment fallback here.
func NewClient(baseURL, userAgent string) (*Client, error) {
	if userAgent == "" {
		return nil, fmt.Errorf("geocoder user agent is not configured")
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL:   baseURL,
		userAgent: userAgent,
		http:      http.DefaultClient,
	}, nil
}

// Locate resolves a free-text place description (with the region suffix
// appended) to a single (lon, lat) pair. It fails when the service returns
// no match.
func (c *Client) Locate(ctx context.Context, place string) (lon, lat float64, err error) {
	params := url.Values{}
	params.Set("q", place+RegionSuffix)
	params.Set("format", "json")
	params.Set("limit", "1")

	reqURL := fmt.Sprintf("%s/search?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return 0, 0, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, 0, fmt.Errorf("geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, 0, fmt.Errorf("geocode request failed: unexpected status %s", resp.Status)
	}

	var results searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return 0, 0, fmt.Errorf("failed to decode geocode response: %w", err)
	}
	if len(results) == 0 {
		return 0, 0, fmt.Errorf("no geocoding results for %q", place)
	}

	lat, err = strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad latitude in geocode response: %w", err)
	}
	lon, err = strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad longitude in geocode response: %w", err)
	}
	return lon, lat, nil
}
