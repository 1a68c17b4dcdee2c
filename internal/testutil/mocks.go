package testutil

import (
	"context"

	"weatherbot/internal/domain"
	"weatherbot/internal/weather"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, userID int64, phone string) (*domain.User, error) {
	args := m.Called(ctx, userID, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetUser(ctx context.Context, userID int64) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockPlaceRepository is a mock for PlaceRepository
type MockPlaceRepository struct {
	mock.Mock
}

func (m *MockPlaceRepository) CreatePlace(ctx context.Context, name string, lat, lon float64, userID int64) (*domain.Place, error) {
	args := m.Called(ctx, name, lat, lon, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Place), args.Error(1)
}

func (m *MockPlaceRepository) GetPlace(ctx context.Context, placeID, userID int64) (*domain.Place, error) {
	args := m.Called(ctx, placeID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Place), args.Error(1)
}

func (m *MockPlaceRepository) GetPlaceByCoordinates(ctx context.Context, userID int64, lat, lon float64) (*domain.Place, error) {
	args := m.Called(ctx, userID, lat, lon)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Place), args.Error(1)
}

func (m *MockPlaceRepository) GetPlaceByName(ctx context.Context, name string, userID int64) (*domain.Place, error) {
	args := m.Called(ctx, name, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Place), args.Error(1)
}

func (m *MockPlaceRepository) GetUserPlaces(ctx context.Context, userID int64) ([]domain.Place, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Place), args.Error(1)
}

func (m *MockPlaceRepository) UpdatePlaceName(ctx context.Context, placeID, userID int64, name string) (*domain.Place, error) {
	args := m.Called(ctx, placeID, userID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Place), args.Error(1)
}

func (m *MockPlaceRepository) DeletePlace(ctx context.Context, placeID, userID int64) error {
	args := m.Called(ctx, placeID, userID)
	return args.Error(0)
}

// MockWeather is a mock for the weather lookup
type MockWeather struct {
	mock.Mock
}

func (m *MockWeather) ByCoordinates(ctx context.Context, lat, lon float64) weather.Result {
	args := m.Called(ctx, lat, lon)
	return args.Get(0).(weather.Result)
}
