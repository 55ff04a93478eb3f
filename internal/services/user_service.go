package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/campusinova/innovation-platform/internal/constants"
	"github.com/campusinova/innovation-platform/internal/models"
	"github.com/campusinova/innovation-platform/internal/repository"
)

// UserService handles user listing and lookups.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Leaderboard returns the top users ranked by points.
func (s *UserService) Leaderboard() ([]models.User, error) {
	return s.userRepo.ListByPoints(constants.LeaderboardLimit)
}

// List returns users, newest first.
func (s *UserService) List() ([]models.User, error) {
	return s.userRepo.ListRecent(constants.PublicListLimit)
}

// ListAll returns users for admins.
func (s *UserService) ListAll() ([]models.User, error) {
	return s.userRepo.ListRecent(constants.AdminListLimit)
}

// Get retrieves a user by ID.
func (s *UserService) Get(id string) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}
