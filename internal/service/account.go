package service

import (
	"context"
	"errors"
	"strings"

	"weatherbot/internal/domain"
	"weatherbot/internal/repository"
)

// ErrPhoneRequired is returned when a contact carries no phone number
var ErrPhoneRequired = errors.New("phone number is required")

// AccountService handles registration and account removal
type AccountService struct {
	userRepo repository.UserRepository
}

// NewAccountService creates a new account service
func NewAccountService(userRepo repository.UserRepository) *AccountService {
	return &AccountService{userRepo: userRepo}
}

// GetUser returns the registered user or nil
func (s *AccountService) GetUser(ctx context.Context, userID int64) (*domain.User, error) {
	return s.userRepo.GetUser(ctx, userID)
}

// Register creates the user with the shared phone number
func (s *AccountService) Register(ctx context.Context, userID int64, phone string) (*domain.User, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, ErrPhoneRequired
	}
	return s.userRepo.CreateUser(ctx, userID, phone)
}

// DeleteAccount removes the user together with all saved places
func (s *AccountService) DeleteAccount(ctx context.Context, userID int64) error {
	return s.userRepo.DeleteUser(ctx, userID)
}
