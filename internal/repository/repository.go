package repository

import (
	"github.com/campusinova/innovation-platform/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id string) (*models.User, error)

	// FindByEmail finds a user by (lowercased) email
	FindByEmail(email string) (*models.User, error)

	// FindWithExpectations returns all users that shared an expectations text
	FindWithExpectations() ([]models.User, error)

	// ListByPoints returns users ordered by points descending
	ListByPoints(limit int) ([]models.User, error)

	// ListRecent returns users ordered by creation time descending
	ListRecent(limit int) ([]models.User, error)

	// Count counts all users
	Count() (int64, error)

	// CountByType counts users of a given account type
	CountByType(userType models.UserType) (int64, error)

	// CountWithExpectations counts users that shared an expectations text
	CountWithExpectations() (int64, error)
}

// ChallengeRepository defines the interface for challenge data access
type ChallengeRepository interface {
	// Create creates a new challenge
	Create(challenge *models.Challenge) error

	// FindByID finds a challenge by ID
	FindByID(id string) (*models.Challenge, error)

	// ListActive returns active challenges, newest first
	ListActive(limit int) ([]models.Challenge, error)

	// ListAll returns every challenge including inactive ones, newest first
	ListAll(limit int) ([]models.Challenge, error)

	// CountActive counts challenges with the given active flag
	CountActive(active bool) (int64, error)
}

// SolutionRepository defines the interface for solution data access
type SolutionRepository interface {
	// Create creates a new solution
	Create(solution *models.Solution) error

	// FindByID finds a solution by ID
	FindByID(id string) (*models.Solution, error)

	// FindByChallengeAndAuthor finds the author's solution for a challenge
	FindByChallengeAndAuthor(challengeID, authorID string) (*models.Solution, error)

	// ListByChallenge returns a challenge's solutions, most voted first
	ListByChallenge(challengeID string, limit int) ([]models.Solution, error)

	// ListAll returns all solutions, most voted first
	ListAll(limit int) ([]models.Solution, error)

	// Count counts all solutions
	Count() (int64, error)
}

// VoteRepository defines the interface for vote data access
type VoteRepository interface {
	// Find finds a user's vote on a solution
	Find(userID, solutionID string) (*models.Vote, error)

	// Cast records a vote, bumps the solution's counter, and awards points
	// to the solution author within a single transaction
	Cast(vote *models.Vote, authorID string, authorPoints int) error

	// ListBySolution returns all votes for a solution
	ListBySolution(solutionID string, limit int) ([]models.Vote, error)

	// Count counts all votes
	Count() (int64, error)
}
