package repository

import (
	"context"

	"weatherbot/internal/domain"
)

// UserRepository defines user data operations
type UserRepository interface {
	CreateUser(ctx context.Context, userID int64, phone string) (*domain.User, error)
	GetUser(ctx context.Context, userID int64) (*domain.User, error)
	DeleteUser(ctx context.Context, userID int64) error
}

// PlaceRepository defines favorite place data operations.
// Every lookup is scoped by the owning user.
type PlaceRepository interface {
	CreatePlace(ctx context.Context, name string, lat, lon float64, userID int64) (*domain.Place, error)
	GetPlace(ctx context.Context, placeID, userID int64) (*domain.Place, error)
	GetPlaceByCoordinates(ctx context.Context, userID int64, lat, lon float64) (*domain.Place, error)
	GetPlaceByName(ctx context.Context, name string, userID int64) (*domain.Place, error)
	GetUserPlaces(ctx context.Context, userID int64) ([]domain.Place, error)
	UpdatePlaceName(ctx context.Context, placeID, userID int64, name string) (*domain.Place, error)
	DeletePlace(ctx context.Context, placeID, userID int64) error
}
