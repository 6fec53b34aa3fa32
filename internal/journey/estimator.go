package journey

import (
	"fmt"
	"time"

	"location-agent/internal/models"
)

// Estimator builds JourneyEstimates. The zero value is not usable; call NewEstimator.
type Estimator struct {
	now func() time.Time
}

// Option configures an Estimator.
type Option func(*Estimator)

// WithClock replaces time.Now as the source of the night travel hour.
func WithClock(now func() time.Time) Option {
	return func(e *Estimator) {
		e.now = now
	}
}

// NewEstimator creates an estimator reading the process-local wall clock.
func NewEstimator(opts ...Option) *Estimator {
	e := &Estimator{now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Estimate computes the straight-line journey between two resolved locations.
// The labels are the addresses the caller asked for and end up in the navigation link.
// Times and tips use the unrounded distance; only DistanceKm is rounded to 2 decimals.
func (e *Estimator) Estimate(origin, destination models.ResolvedLocation, originLabel, destinationLabel string) (*models.JourneyEstimate, error) {
	from := Coordinate{Latitude: origin.Latitude, Longitude: origin.Longitude}
	if err := from.Validate(); err != nil {
		return nil, fmt.Errorf("journey: origin: %w", err)
	}
	to := Coordinate{Latitude: destination.Latitude, Longitude: destination.Longitude}
	if err := to.Validate(); err != nil {
		return nil, fmt.Errorf("journey: destination: %w", err)
	}

	distance := Distance(from, to)
	drivingMinutes := TravelMinutes(distance, DrivingSpeedKmh)
	walkingMinutes := TravelMinutes(distance, WalkingSpeedKmh)

	return &models.JourneyEstimate{
		Origin:         origin,
		Destination:    destination,
		DistanceKm:     roundKm(distance),
		DrivingTime:    FormatTime(drivingMinutes),
		WalkingTime:    FormatTime(walkingMinutes),
		NavigationLink: NavigationLink(originLabel, destinationLabel),
		SafetyTips:     SafetyTips(distance, drivingMinutes, e.now().Local().Hour()),
	}, nil
}
