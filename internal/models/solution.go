package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Solution is a user's submission to a challenge. A user may submit at most
// one solution per challenge.
type Solution struct {
	ID             string    `gorm:"type:varchar(36);primarykey" json:"id"`
	ChallengeID    string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_solutions_challenge_author" json:"challenge_id"`
	AuthorID       string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_solutions_challenge_author" json:"author_id"`
	AuthorName     string    `gorm:"type:varchar(100);not null" json:"author_name"`
	Description    string    `gorm:"type:text;not null" json:"description"`
	Votes          int       `gorm:"not null;default:0" json:"votes"`
	SubmissionDate time.Time `gorm:"autoCreateTime" json:"submission_date"`

	// Relations
	Challenge Challenge `gorm:"foreignKey:ChallengeID" json:"-"`
	Author    User      `gorm:"foreignKey:AuthorID" json:"-"`
}

func (s *Solution) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
