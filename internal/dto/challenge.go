package dto

import (
	"time"

	"github.com/jinzhu/copier"

	"github.com/campusinova/innovation-platform/internal/models"
)

// CreateChallengeRequest is the payload for publishing a challenge. Summary
// is optional and derived from the description when absent.
type CreateChallengeRequest struct {
	Title       string  `json:"title" binding:"required,min=5,max=200"`
	Description string  `json:"description" binding:"required,min=10,max=2000"`
	Summary     *string `json:"summary" binding:"omitempty,max=300"`
	Deadline    *string `json:"deadline"`
	Reward      *string `json:"reward" binding:"omitempty,max=200"`
}

// ChallengeDTO represents a challenge in API responses
type ChallengeDTO struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Summary     string    `json:"summary"`
	CreatorID   string    `json:"creator_id"`
	CreatorName string    `json:"creator_name"`
	Deadline    *string   `json:"deadline"`
	Reward      *string   `json:"reward"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToChallengeDTO converts a Challenge model to ChallengeDTO
func ToChallengeDTO(challenge models.Challenge) ChallengeDTO {
	var dto ChallengeDTO
	copier.Copy(&dto, &challenge)
	return dto
}

// ToChallengeDTOs converts a slice of Challenge models to DTOs
func ToChallengeDTOs(challenges []models.Challenge) []ChallengeDTO {
	dtos := make([]ChallengeDTO, 0, len(challenges))
	copier.Copy(&dtos, &challenges)
	return dtos
}
