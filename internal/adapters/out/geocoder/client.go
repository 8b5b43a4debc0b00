// Package geocoder resolves delivery addresses through a Nominatim-compatible
// search endpoint.
package geocoder

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/ports"
)

var _ ports.Geocoder = (*Client)(nil)

type result struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Client calls GET {baseURL}/search?q=...&format=json&limit=1. Deadlines come
// from the caller's context and the http.Client.
type Client struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

func NewClient(baseURL, userAgent string, client *http.Client) *Client {
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		client:    client,
	}
}

func (c *Client) Geocode(ctx context.Context, address string) (kernel.Location, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return kernel.Location{}, ports.ErrAddressNotResolved
	}

	q := url.Values{}
	q.Set("q", address)
	q.Set("format", "json")
	q.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+q.Encode(), nil)
	if err != nil {
		return kernel.Location{}, err
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return kernel.Location{}, fmt.Errorf("geocoder request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return kernel.Location{}, fmt.Errorf("geocoder returned status %d", resp.StatusCode)
	}

	var results []result
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return kernel.Location{}, fmt.Errorf("decode geocoder response: %w", err)
	}
	if len(results) == 0 {
		return kernel.Location{}, ports.ErrAddressNotResolved
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return kernel.Location{}, fmt.Errorf("geocoder latitude: %w", err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return kernel.Location{}, fmt.Errorf("geocoder longitude: %w", err)
	}
	return kernel.NewLocation(lat, lon)
}
