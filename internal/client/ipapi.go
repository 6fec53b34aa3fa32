package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"location-agent/internal/models"

	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
)

// IPAPIClient geolocates public IP addresses with ip-api.com.
type IPAPIClient struct {
	client   *http.Client
	baseURL  string
	fallback models.AutoLocation
}

// NewIPAPIClient creates a client for baseURL. fallback is returned whenever a lookup fails.
func NewIPAPIClient(client *http.Client, baseURL string, fallback models.AutoLocation) *IPAPIClient {
	return &IPAPIClient{
		client:   client,
		baseURL:  strings.TrimRight(baseURL, "/"),
		fallback: fallback,
	}
}

// Locate returns the approximate location of ip, or of the caller's public address when ip is empty.
// It never fails: any upstream problem yields the configured fallback location.
func (c *IPAPIClient) Locate(ctx context.Context, ip string) models.AutoLocation {
	loc, err := c.lookup(ctx, ip)
	if err != nil {
		log.Warn().Err(err).Str("ip", ip).Str("fallback", c.fallback.Address).Msg("ip geolocation failed, using default location")
		return c.fallback
	}
	return loc
}

func (c *IPAPIClient) lookup(ctx context.Context, ip string) (models.AutoLocation, error) {
	endpoint := c.baseURL + "/json/"
	if ip != "" {
		endpoint += url.PathEscape(ip)
	}

	req, err := newRequest(ctx, endpoint, "")
	if err != nil {
		return models.AutoLocation{}, fmt.Errorf("client: ip lookup: %w", err)
	}

	body, err := get(c.client, req)
	if err != nil {
		return models.AutoLocation{}, fmt.Errorf("client: ip lookup: %w", err)
	}

	js := string(body)
	if !gjson.Valid(js) {
		return models.AutoLocation{}, errors.New("client: ip lookup: invalid JSON")
	}

	res := gjson.GetMany(js, "status", "message", "lat", "lon", "city", "regionName", "country")
	if res[0].String() == "fail" {
		return models.AutoLocation{}, fmt.Errorf("client: ip lookup: upstream reported failure: %s", res[1].String())
	}
	if !res[2].Exists() || !res[3].Exists() {
		return models.AutoLocation{}, errors.New("client: ip lookup: response has no coordinates")
	}

	city := res[4].String()
	region := res[5].String()
	country := res[6].String()

	return models.AutoLocation{
		Latitude:  res[2].Float(),
		Longitude: res[3].Float(),
		City:      city,
		Country:   country,
		Address:   fmt.Sprintf("%s, %s, %s", city, region, country),
	}, nil
}
