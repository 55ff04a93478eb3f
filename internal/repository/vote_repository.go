package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/campusinova/innovation-platform/internal/models"
)

var (
	// ErrCreateVote is returned when inserting the vote row fails inside the voting transaction.
	ErrCreateVote = errors.New("vote repository: create vote failed")
	// ErrUpdateSolutionVotes is returned when bumping the solution counter fails inside the voting transaction.
	ErrUpdateSolutionVotes = errors.New("vote repository: update solution votes failed")
	// ErrAwardPoints is returned when crediting the author fails inside the voting transaction.
	ErrAwardPoints = errors.New("vote repository: award points failed")
)

// GormVoteRepository is a GORM implementation of VoteRepository
type GormVoteRepository struct {
	db *gorm.DB
}

// NewVoteRepository creates a new VoteRepository
func NewVoteRepository(db *gorm.DB) VoteRepository {
	return &GormVoteRepository{db: db}
}

// Find finds a user's vote on a solution
func (r *GormVoteRepository) Find(userID, solutionID string) (*models.Vote, error) {
	var vote models.Vote
	err := r.db.Where("user_id = ? AND solution_id = ?", userID, solutionID).First(&vote).Error
	if err != nil {
		return nil, err
	}
	return &vote, nil
}

// Cast records the vote, increments the solution's vote counter, and awards
// points to the solution author atomically.
func (r *GormVoteRepository) Cast(vote *models.Vote, authorID string, authorPoints int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(vote).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateVote, err)
		}

		err := tx.Model(&models.Solution{}).
			Where("id = ?", vote.SolutionID).
			UpdateColumn("votes", gorm.Expr("votes + ?", 1)).Error
		if err != nil {
			return fmt.Errorf("%w: %v", ErrUpdateSolutionVotes, err)
		}

		err = tx.Model(&models.User{}).
			Where("id = ?", authorID).
			UpdateColumn("points", gorm.Expr("points + ?", authorPoints)).Error
		if err != nil {
			return fmt.Errorf("%w: %v", ErrAwardPoints, err)
		}

		return nil
	})
}

// ListBySolution returns all votes for a solution
func (r *GormVoteRepository) ListBySolution(solutionID string, limit int) ([]models.Vote, error) {
	var votes []models.Vote
	err := r.db.Where("solution_id = ?", solutionID).Limit(limit).Find(&votes).Error
	if err != nil {
		return nil, err
	}
	return votes, nil
}

// Count counts all votes
func (r *GormVoteRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Vote{}).Count(&count).Error
	return count, err
}
