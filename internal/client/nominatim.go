package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"location-agent/internal/models"
)

// NominatimClient forward-geocodes free text with an OpenStreetMap Nominatim instance.
type NominatimClient struct {
	client    *http.Client
	baseURL   string
	userAgent string
}

// nominatimResponse keeps only the fields we read from /search.
type nominatimResponse []struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// NewNominatimClient creates a client for baseURL.
// Nominatim's usage policy requires an identifying User-Agent on every request.
func NewNominatimClient(client *http.Client, baseURL, userAgent string) *NominatimClient {
	return &NominatimClient{
		client:    client,
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
	}
}

// Search returns the best match for query.
// Zero results yield a *models.NotFoundError naming the query.
func (c *NominatimClient) Search(ctx context.Context, query string) (*models.ResolvedLocation, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "1")

	req, err := newRequest(ctx, c.baseURL+"/search?"+params.Encode(), c.userAgent)
	if err != nil {
		return nil, fmt.Errorf("client: geocode %q: %w", query, err)
	}

	body, err := get(c.client, req)
	if err != nil {
		return nil, fmt.Errorf("client: geocode %q: %w", query, err)
	}

	var results nominatimResponse
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, fmt.Errorf("client: geocode %q: decode response: %w", query, err)
	}

	if len(results) == 0 {
		return nil, &models.NotFoundError{Query: query}
	}

	first := results[0]
	lat, err := strconv.ParseFloat(first.Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("client: geocode %q: invalid latitude %q: %w", query, first.Lat, err)
	}
	lon, err := strconv.ParseFloat(first.Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("client: geocode %q: invalid longitude %q: %w", query, first.Lon, err)
	}

	return &models.ResolvedLocation{
		Latitude:  lat,
		Longitude: lon,
		Address:   first.DisplayName,
	}, nil
}
