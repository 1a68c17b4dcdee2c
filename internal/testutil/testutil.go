package testutil

import (
	"time"

	"weatherbot/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestUser creates a test user
func NewTestUser(userID int64, phone string) *domain.User {
	now := time.Now()
	return &domain.User{
		ID:        userID,
		Phone:     phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewTestPlace creates a test place
func NewTestPlace(id int64, userID int64, name string, lat, lon float64) *domain.Place {
	now := time.Now()
	return &domain.Place{
		ID:        id,
		Name:      name,
		Lat:       lat,
		Lon:       lon,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
