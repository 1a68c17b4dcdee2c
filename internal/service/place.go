package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"weatherbot/internal/domain"
	"weatherbot/internal/repository"
)

// MaxPlaceNameLength limits place names, counted in runes
const MaxPlaceNameLength = 64

var (
	ErrPlaceNameEmpty   = errors.New("place name cannot be empty")
	ErrPlaceNameTooLong = fmt.Errorf("place name cannot be longer than %d characters", MaxPlaceNameLength)
)

// PlaceService handles favorite place business rules
type PlaceService struct {
	placeRepo repository.PlaceRepository
}

// NewPlaceService creates a new place service
func NewPlaceService(placeRepo repository.PlaceRepository) *PlaceService {
	return &PlaceService{placeRepo: placeRepo}
}

// NormalizeName trims the name and checks its length
func NormalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrPlaceNameEmpty
	}
	if utf8.RuneCountInString(name) > MaxPlaceNameLength {
		return "", ErrPlaceNameTooLong
	}
	return name, nil
}

// Create saves a new favorite place for the user
func (s *PlaceService) Create(ctx context.Context, userID int64, name string, lat, lon float64) (*domain.Place, error) {
	name, err := NormalizeName(name)
	if err != nil {
		return nil, err
	}
	return s.placeRepo.CreatePlace(ctx, name, lat, lon, userID)
}

// Get returns the user's place by id or nil
func (s *PlaceService) Get(ctx context.Context, userID, placeID int64) (*domain.Place, error) {
	return s.placeRepo.GetPlace(ctx, placeID, userID)
}

// FindByName returns the user's place with this name or nil
func (s *PlaceService) FindByName(ctx context.Context, userID int64, name string) (*domain.Place, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}
	return s.placeRepo.GetPlaceByName(ctx, name, userID)
}

// FindByCoordinates returns the user's place at these exact coordinates or nil
func (s *PlaceService) FindByCoordinates(ctx context.Context, userID int64, lat, lon float64) (*domain.Place, error) {
	return s.placeRepo.GetPlaceByCoordinates(ctx, userID, lat, lon)
}

// List returns all places of the user ordered by name
func (s *PlaceService) List(ctx context.Context, userID int64) ([]domain.Place, error) {
	return s.placeRepo.GetUserPlaces(ctx, userID)
}

// Rename changes the name of the user's place
func (s *PlaceService) Rename(ctx context.Context, userID, placeID int64, name string) (*domain.Place, error) {
	name, err := NormalizeName(name)
	if err != nil {
		return nil, err
	}
	return s.placeRepo.UpdatePlaceName(ctx, placeID, userID, name)
}

// Delete removes the user's place
func (s *PlaceService) Delete(ctx context.Context, userID, placeID int64) error {
	return s.placeRepo.DeletePlace(ctx, placeID, userID)
}
