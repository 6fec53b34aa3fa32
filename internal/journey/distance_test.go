package journey

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	lagos  = Coordinate{Latitude: 6.5244, Longitude: 3.3792}
	lekki  = Coordinate{Latitude: 6.4550, Longitude: 3.4246}
	ibadan = Coordinate{Latitude: 7.3775, Longitude: 3.9470}
	abuja  = Coordinate{Latitude: 9.0765, Longitude: 7.3986}
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Coordinate
		expected float64
	}{
		{name: "lagos to lekki", a: lagos, b: lekki, expected: 9.20},
		{name: "lagos to ibadan", a: lagos, b: ibadan, expected: 113.69},
		{name: "lagos to abuja", a: lagos, b: abuja, expected: 525.90},
		{name: "same point", a: lagos, b: lagos, expected: 0},
		{name: "quarter meridian", a: Coordinate{0, 0}, b: Coordinate{90, 0}, expected: 10007.54},
		{name: "antipodal", a: Coordinate{1.5, 10}, b: Coordinate{-1.5, -170}, expected: 20015.09},
		{name: "pole to pole", a: Coordinate{90, 0}, b: Coordinate{-90, 0}, expected: 20015.09},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Distance(tt.a, tt.b), 0.01)
		})
	}
}

func TestDistance_Symmetric(t *testing.T) {
	points := []Coordinate{lagos, lekki, ibadan, abuja, {-33.8688, 151.2093}, {51.5074, -0.1278}}

	for _, a := range points {
		for _, b := range points {
			assert.Equal(t, Distance(a, b), Distance(b, a), "distance %v -> %v", a, b)
		}
	}
}

func TestDistance_Identity(t *testing.T) {
	for _, p := range []Coordinate{lagos, abuja, {90, 180}, {-90, -180}} {
		assert.Zero(t, Distance(p, p))
	}
}

func TestDistance_AntipodalIsFinite(t *testing.T) {
	pairs := [][2]Coordinate{
		{{1.5, 10}, {-1.5, -170}},
		{{6.5244, 3.3792}, {-6.5244, -176.6208}},
		{{0, 0}, {0, 180}},
		{{45, -90}, {-45, 90}},
	}

	for _, p := range pairs {
		d := Distance(p[0], p[1])
		assert.False(t, math.IsNaN(d), "distance %v -> %v", p[0], p[1])
		assert.InDelta(t, math.Pi*earthRadiusKm, d, 0.01, "distance %v -> %v", p[0], p[1])
	}
}

func TestTravelMinutes(t *testing.T) {
	assert.Equal(t, 11, TravelMinutes(9.20381662409513, DrivingSpeedKmh))
	assert.Equal(t, 110, TravelMinutes(9.20381662409513, WalkingSpeedKmh))
	assert.Equal(t, 136, TravelMinutes(113.69367453293063, DrivingSpeedKmh))
	assert.Equal(t, 0, TravelMinutes(0, DrivingSpeedKmh))
}

func TestCoordinate_Validate(t *testing.T) {
	tests := []struct {
		name    string
		c       Coordinate
		wantErr bool
	}{
		{name: "lagos", c: lagos},
		{name: "corners", c: Coordinate{-90, 180}},
		{name: "latitude too high", c: Coordinate{90.01, 0}, wantErr: true},
		{name: "latitude too low", c: Coordinate{-91, 0}, wantErr: true},
		{name: "longitude too high", c: Coordinate{0, 180.5}, wantErr: true},
		{name: "longitude too low", c: Coordinate{0, -200}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.c.Validate()
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidCoordinate))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
