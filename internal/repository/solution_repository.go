package repository

import (
	"gorm.io/gorm"

	"github.com/campusinova/innovation-platform/internal/models"
)

// GormSolutionRepository is a GORM implementation of SolutionRepository
type GormSolutionRepository struct {
	db *gorm.DB
}

// NewSolutionRepository creates a new SolutionRepository
func NewSolutionRepository(db *gorm.DB) SolutionRepository {
	return &GormSolutionRepository{db: db}
}

// Create creates a new solution
func (r *GormSolutionRepository) Create(solution *models.Solution) error {
	return r.db.Create(solution).Error
}

// FindByID finds a solution by ID
func (r *GormSolutionRepository) FindByID(id string) (*models.Solution, error) {
	var solution models.Solution
	if err := r.db.Where("id = ?", id).First(&solution).Error; err != nil {
		return nil, err
	}
	return &solution, nil
}

// FindByChallengeAndAuthor finds the author's solution for a challenge
func (r *GormSolutionRepository) FindByChallengeAndAuthor(challengeID, authorID string) (*models.Solution, error) {
	var solution models.Solution
	err := r.db.Where("challenge_id = ? AND author_id = ?", challengeID, authorID).First(&solution).Error
	if err != nil {
		return nil, err
	}
	return &solution, nil
}

// ListByChallenge returns a challenge's solutions, most voted first
func (r *GormSolutionRepository) ListByChallenge(challengeID string, limit int) ([]models.Solution, error) {
	var solutions []models.Solution
	err := r.db.Where("challenge_id = ?", challengeID).Order("votes DESC").Limit(limit).Find(&solutions).Error
	if err != nil {
		return nil, err
	}
	return solutions, nil
}

// ListAll returns all solutions, most voted first
func (r *GormSolutionRepository) ListAll(limit int) ([]models.Solution, error) {
	var solutions []models.Solution
	err := r.db.Order("votes DESC").Limit(limit).Find(&solutions).Error
	if err != nil {
		return nil, err
	}
	return solutions, nil
}

// Count counts all solutions
func (r *GormSolutionRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Solution{}).Count(&count).Error
	return count, err
}
