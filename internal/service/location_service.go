package service

import (
	"context"
	"fmt"
	"strings"

	"location-agent/internal/models"

	"github.com/rs/zerolog/log"
)

// LocationService contains the business logic for the "where am I" and "where is X" capabilities
type LocationService struct {
	ipLocator    IPLocator
	geocoder     Geocoder
	cache        LocationCache
	gazetteer    Gazetteer
	defaultQuery string
}

// IPLocator resolves a public IP address. Implementations never fail; they fall back to a default location.
type IPLocator interface {
	Locate(ctx context.Context, ip string) models.AutoLocation
}

// Geocoder resolves free text to coordinates
type Geocoder interface {
	Search(ctx context.Context, query string) (*models.ResolvedLocation, error)
}

// LocationCache remembers previous geocoding results. Get returns nil on a miss.
type LocationCache interface {
	Get(ctx context.Context, query string) (*models.ResolvedLocation, error)
	Set(ctx context.Context, query string, loc models.ResolvedLocation) error
}

// Gazetteer is the local table of named places
type Gazetteer interface {
	SearchPlaces(ctx context.Context, query string) ([]models.Place, error)
	FindNearestPlace(ctx context.Context, lat, lon float64) (*models.Place, error)
}

// LocationOption configures optional collaborators of a LocationService
type LocationOption func(*LocationService)

// WithCache puts a cache in front of the geocoder
func WithCache(c LocationCache) LocationOption {
	return func(s *LocationService) { s.cache = c }
}

// WithGazetteer consults local places before the geocoder and names the nearest one for auto-located callers
func WithGazetteer(g Gazetteer) LocationOption {
	return func(s *LocationService) { s.gazetteer = g }
}

// NewLocationService creates a new location service. defaultQuery is geocoded when the caller gives no address.
func NewLocationService(ipLocator IPLocator, geocoder Geocoder, defaultQuery string, opts ...LocationOption) *LocationService {
	s := &LocationService{
		ipLocator:    ipLocator,
		geocoder:     geocoder,
		defaultQuery: defaultQuery,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AutoLocate returns the caller's approximate location. It never fails.
func (s *LocationService) AutoLocate(ctx context.Context, ip string) models.AutoLocation {
	loc := s.ipLocator.Locate(ctx, ip)

	if s.gazetteer != nil {
		place, err := s.gazetteer.FindNearestPlace(ctx, loc.Latitude, loc.Longitude)
		if err != nil {
			log.Warn().Err(err).Msg("service: nearest place lookup failed")
		} else {
			loc.NearestPlace = place
		}
	}

	return loc
}

// Locate resolves an address to coordinates. Unknown addresses yield an error matching models.ErrLocationNotFound.
func (s *LocationService) Locate(ctx context.Context, query string) (*models.ResolvedLocation, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		query = s.defaultQuery
	}

	if s.cache != nil {
		loc, err := s.cache.Get(ctx, query)
		if err != nil {
			log.Warn().Err(err).Str("query", query).Msg("service: cache read failed")
		} else if loc != nil {
			return loc, nil
		}
	}

	if loc := s.lookupGazetteer(ctx, query); loc != nil {
		return loc, nil
	}

	loc, err := s.geocoder.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("service: failed to geocode: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, query, *loc); err != nil {
			log.Warn().Err(err).Str("query", query).Msg("service: cache write failed")
		}
	}

	return loc, nil
}

// lookupGazetteer returns a local place whose name is exactly query, ignoring case.
func (s *LocationService) lookupGazetteer(ctx context.Context, query string) *models.ResolvedLocation {
	if s.gazetteer == nil {
		return nil
	}

	places, err := s.gazetteer.SearchPlaces(ctx, query)
	if err != nil {
		log.Warn().Err(err).Str("query", query).Msg("service: gazetteer search failed")
		return nil
	}

	for _, p := range places {
		if strings.EqualFold(p.Name, query) {
			loc := p.Resolved()
			return &loc
		}
	}
	return nil
}
