package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"location-agent/internal/models"

	"golang.org/x/sync/errgroup"
)

// ErrMissingEndpoint is returned when a directions request lacks an origin or destination
var ErrMissingEndpoint = errors.New("origin and destination are required")

// DirectionsService combines two address lookups with the journey estimator
type DirectionsService struct {
	resolver  Resolver
	estimator JourneyEstimator
}

// Resolver turns an address into coordinates
type Resolver interface {
	Locate(ctx context.Context, query string) (*models.ResolvedLocation, error)
}

// JourneyEstimator computes distance, times, link and tips between two resolved points
type JourneyEstimator interface {
	Estimate(origin, destination models.ResolvedLocation, originLabel, destinationLabel string) (*models.JourneyEstimate, error)
}

// NewDirectionsService creates a new directions service
func NewDirectionsService(resolver Resolver, estimator JourneyEstimator) *DirectionsService {
	return &DirectionsService{resolver: resolver, estimator: estimator}
}

// Directions resolves origin and destination concurrently and estimates the journey between them
func (s *DirectionsService) Directions(ctx context.Context, origin, destination string) (*models.JourneyEstimate, error) {
	origin = strings.TrimSpace(origin)
	destination = strings.TrimSpace(destination)
	if origin == "" || destination == "" {
		return nil, fmt.Errorf("service: %w", ErrMissingEndpoint)
	}

	var from, to *models.ResolvedLocation
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		loc, err := s.resolver.Locate(gctx, origin)
		from = loc
		return err
	})
	g.Go(func() error {
		loc, err := s.resolver.Locate(gctx, destination)
		to = loc
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	estimate, err := s.estimator.Estimate(*from, *to, origin, destination)
	if err != nil {
		return nil, fmt.Errorf("service: failed to estimate journey: %w", err)
	}

	return estimate, nil
}
