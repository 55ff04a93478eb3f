package repository

import (
	"gorm.io/gorm"

	"github.com/campusinova/innovation-platform/internal/models"
)

// GormChallengeRepository is a GORM implementation of ChallengeRepository
type GormChallengeRepository struct {
	db *gorm.DB
}

// NewChallengeRepository creates a new ChallengeRepository
func NewChallengeRepository(db *gorm.DB) ChallengeRepository {
	return &GormChallengeRepository{db: db}
}

// Create creates a new challenge
func (r *GormChallengeRepository) Create(challenge *models.Challenge) error {
	return r.db.Create(challenge).Error
}

// FindByID finds a challenge by ID
func (r *GormChallengeRepository) FindByID(id string) (*models.Challenge, error) {
	var challenge models.Challenge
	if err := r.db.Where("id = ?", id).First(&challenge).Error; err != nil {
		return nil, err
	}
	return &challenge, nil
}

// ListActive returns active challenges, newest first
func (r *GormChallengeRepository) ListActive(limit int) ([]models.Challenge, error) {
	var challenges []models.Challenge
	err := r.db.Where("active = ?", true).Order("created_at DESC").Limit(limit).Find(&challenges).Error
	if err != nil {
		return nil, err
	}
	return challenges, nil
}

// ListAll returns every challenge including inactive ones, newest first
func (r *GormChallengeRepository) ListAll(limit int) ([]models.Challenge, error) {
	var challenges []models.Challenge
	err := r.db.Order("created_at DESC").Limit(limit).Find(&challenges).Error
	if err != nil {
		return nil, err
	}
	return challenges, nil
}

// CountActive counts challenges with the given active flag
func (r *GormChallengeRepository) CountActive(active bool) (int64, error) {
	var count int64
	err := r.db.Model(&models.Challenge{}).Where("active = ?", active).Count(&count).Error
	return count, err
}
