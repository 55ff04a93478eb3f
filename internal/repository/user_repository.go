package repository

import (
	"gorm.io/gorm"

	"github.com/campusinova/innovation-platform/internal/models"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(id string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail finds a user by email
func (r *GormUserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindWithExpectations returns all users whose expectations field is set
func (r *GormUserRepository) FindWithExpectations() ([]models.User, error) {
	var users []models.User
	if err := r.db.Where("expectations IS NOT NULL").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// ListByPoints returns users ordered by points descending
func (r *GormUserRepository) ListByPoints(limit int) ([]models.User, error) {
	var users []models.User
	if err := r.db.Order("points DESC").Limit(limit).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// ListRecent returns users ordered by creation time descending
func (r *GormUserRepository) ListRecent(limit int) ([]models.User, error) {
	var users []models.User
	if err := r.db.Order("created_at DESC").Limit(limit).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Count counts all users
func (r *GormUserRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Count(&count).Error
	return count, err
}

// CountByType counts users of the given account type
func (r *GormUserRepository) CountByType(userType models.UserType) (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("type = ?", userType).Count(&count).Error
	return count, err
}

// CountWithExpectations counts users that shared an expectations text
func (r *GormUserRepository) CountWithExpectations() (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("expectations IS NOT NULL").Count(&count).Error
	return count, err
}
