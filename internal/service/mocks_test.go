package service

import (
	"context"

	"location-agent/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockIPLocator is a mock implementation of the IPLocator interface
type MockIPLocator struct {
	mock.Mock
}

func (m *MockIPLocator) Locate(ctx context.Context, ip string) models.AutoLocation {
	args := m.Called(ctx, ip)
	return args.Get(0).(models.AutoLocation)
}

// MockGeocoder is a mock implementation of the Geocoder interface
type MockGeocoder struct {
	mock.Mock
}

func (m *MockGeocoder) Search(ctx context.Context, query string) (*models.ResolvedLocation, error) {
	args := m.Called(ctx, query)
	loc, _ := args.Get(0).(*models.ResolvedLocation)
	return loc, args.Error(1)
}

// MockLocationCache is a mock implementation of the LocationCache interface
type MockLocationCache struct {
	mock.Mock
}

func (m *MockLocationCache) Get(ctx context.Context, query string) (*models.ResolvedLocation, error) {
	args := m.Called(ctx, query)
	loc, _ := args.Get(0).(*models.ResolvedLocation)
	return loc, args.Error(1)
}

func (m *MockLocationCache) Set(ctx context.Context, query string, loc models.ResolvedLocation) error {
	args := m.Called(ctx, query, loc)
	return args.Error(0)
}

// MockGazetteer is a mock implementation of the Gazetteer interface
type MockGazetteer struct {
	mock.Mock
}

func (m *MockGazetteer) SearchPlaces(ctx context.Context, query string) ([]models.Place, error) {
	args := m.Called(ctx, query)
	places, _ := args.Get(0).([]models.Place)
	return places, args.Error(1)
}

func (m *MockGazetteer) FindNearestPlace(ctx context.Context, lat, lon float64) (*models.Place, error) {
	args := m.Called(ctx, lat, lon)
	place, _ := args.Get(0).(*models.Place)
	return place, args.Error(1)
}

// MockResolver is a mock implementation of the Resolver interface
type MockResolver struct {
	mock.Mock
}

func (m *MockResolver) Locate(ctx context.Context, query string) (*models.ResolvedLocation, error) {
	args := m.Called(ctx, query)
	loc, _ := args.Get(0).(*models.ResolvedLocation)
	return loc, args.Error(1)
}
