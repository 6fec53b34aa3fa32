// Package journey turns two resolved points into a straight-line journey estimate:
// Haversine distance, naive driving and walking times, a map link and safety tips.
package journey

import (
	"errors"
	"fmt"
	"math"
)

const earthRadiusKm = 6371.0

// Average speeds used for the travel time estimate. No routing is involved.
const (
	DrivingSpeedKmh = 50.0
	WalkingSpeedKmh = 5.0
)

// ErrInvalidCoordinate is returned when a latitude or longitude is outside the WGS84 range.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

// Coordinate is a WGS84 position in decimal degrees.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// Validate checks latitude is in [-90, 90] and longitude in [-180, 180].
func (c Coordinate) Validate() error {
	if math.IsNaN(c.Latitude) || c.Latitude < -90 || c.Latitude > 90 {
		return fmt.Errorf("%w: latitude %f", ErrInvalidCoordinate, c.Latitude)
	}
	if math.IsNaN(c.Longitude) || c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("%w: longitude %f", ErrInvalidCoordinate, c.Longitude)
	}
	return nil
}

// Distance returns the great-circle distance between a and b in kilometres, unrounded.
func Distance(a, b Coordinate) float64 {
	lat1 := toRadians(a.Latitude)
	lat2 := toRadians(b.Latitude)
	dLat := toRadians(b.Latitude - a.Latitude)
	dLon := toRadians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	// Rounding can push h just outside [0, 1] for antipodal points.
	h = math.Min(1, math.Max(0, h))

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusKm * c
}

// TravelMinutes estimates minutes needed to cover distanceKm at a constant speed.
func TravelMinutes(distanceKm, speedKmh float64) int {
	return int(math.Round(distanceKm / speedKmh * 60))
}

func roundKm(km float64) float64 {
	return math.Round(km*100) / 100
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
