// Package geocode provides a reverse-geocoding client backed by the
// OpenStreetMap Nominatim service.
package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const (
	DefaultEndpoint = "https://nominatim.openstreetmap.org/reverse"
	DefaultTimeout  = 5 * time.Second

	defaultUserAgent = "GeoFrame/1.0 (github.com/electronjoe/GeoFrame)"
)

// ErrNoResult indicates the service resolved no address for the coordinate.
var ErrNoResult = errors.New("geocode: no result")

// Address is the subset of a reverse-geocoding result the slideshow cares
// about. Every field is optional.
type Address struct {
	City    string `json:"city"`
	Town    string `json:"town"`
	Village string `json:"village"`
	Country string `json:"country"`
}

// Locality returns the most specific populated-place name available,
// preferring city over town over village. Empty when none is present.
func (a Address) Locality() string {
	switch {
	case a.City != "":
		return a.City
	case a.Town != "":
		return a.Town
	case a.Village != "":
		return a.Village
	}
	return ""
}

// Client performs reverse lookups against a Nominatim-compatible endpoint.
// One request per call, no retries; transient failures are the caller's
// "no result".
type Client struct {
	endpoint  string
	userAgent string
	http      *http.Client
}

// New builds a Client. Empty endpoint or userAgent select the defaults;
// timeout <= 0 selects DefaultTimeout. The timeout bounds the whole request
// so a stalled lookup cannot outlive a display interval.
func New(endpoint, userAgent string, timeout time.Duration) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		endpoint:  endpoint,
		userAgent: userAgent,
		http:      &http.Client{Timeout: timeout},
	}
}

// ReverseGeocode resolves a coordinate to an Address.
func (c *Client) ReverseGeocode(ctx context.Context, lat, lon float64) (Address, error) {
	q := url.Values{}
	q.Set("format", "json")
	q.Set("lat", fmt.Sprintf("%f", lat))
	q.Set("lon", fmt.Sprintf("%f", lon))
	q.Set("zoom", "10")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return Address{}, fmt.Errorf("geocode: build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return Address{}, fmt.Errorf("geocode: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Address{}, fmt.Errorf("geocode: unexpected status %d", resp.StatusCode)
	}

	var body struct {
		Error   string   `json:"error"`
		Address *Address `json:"address"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Address{}, fmt.Errorf("geocode: decode response: %w", err)
	}
	if body.Error != "" || body.Address == nil {
		return Address{}, ErrNoResult
	}
	return *body.Address, nil
}
