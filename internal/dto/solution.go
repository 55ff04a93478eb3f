package dto

import (
	"time"

	"github.com/jinzhu/copier"

	"github.com/campusinova/innovation-platform/internal/models"
)

// CreateSolutionRequest is the payload for submitting a solution.
type CreateSolutionRequest struct {
	ChallengeID string `json:"challenge_id" binding:"required"`
	Description string `json:"description" binding:"required,min=10,max=2000"`
}

// SolutionDTO represents a solution in API responses
type SolutionDTO struct {
	ID             string    `json:"id"`
	ChallengeID    string    `json:"challenge_id"`
	AuthorID       string    `json:"author_id"`
	AuthorName     string    `json:"author_name"`
	Description    string    `json:"description"`
	Votes          int       `json:"votes"`
	SubmissionDate time.Time `json:"submission_date"`
}

// VoteDTO represents a single vote in API responses
type VoteDTO struct {
	UserID     string    `json:"user_id"`
	SolutionID string    `json:"solution_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// SolutionVotesDTO is the vote detail payload for one solution.
type SolutionVotesDTO struct {
	SolutionID string    `json:"solution_id"`
	TotalVotes int       `json:"total_votes"`
	Votes      []VoteDTO `json:"votes"`
}

// ToSolutionDTO converts a Solution model to SolutionDTO
func ToSolutionDTO(solution models.Solution) SolutionDTO {
	var dto SolutionDTO
	copier.Copy(&dto, &solution)
	return dto
}

// ToSolutionDTOs converts a slice of Solution models to DTOs
func ToSolutionDTOs(solutions []models.Solution) []SolutionDTO {
	dtos := make([]SolutionDTO, 0, len(solutions))
	copier.Copy(&dtos, &solutions)
	return dtos
}

// ToVoteDTOs converts a slice of Vote models to DTOs
func ToVoteDTOs(votes []models.Vote) []VoteDTO {
	dtos := make([]VoteDTO, 0, len(votes))
	copier.Copy(&dtos, &votes)
	return dtos
}
