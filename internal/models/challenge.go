package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Challenge struct {
	ID          string    `gorm:"type:varchar(36);primarykey" json:"id"`
	Title       string    `gorm:"type:varchar(200);not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Summary     string    `gorm:"type:varchar(300)" json:"summary"`
	CreatorID   string    `gorm:"type:varchar(36);not null;index" json:"creator_id"`
	CreatorName string    `gorm:"type:varchar(100);not null" json:"creator_name"`
	Deadline    *string   `gorm:"type:varchar(20)" json:"deadline"`
	Reward      *string   `gorm:"type:varchar(200)" json:"reward"`
	Active      bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt   time.Time `json:"created_at"`

	// Relations
	Creator   User       `gorm:"foreignKey:CreatorID" json:"-"`
	Solutions []Solution `gorm:"foreignKey:ChallengeID" json:"-"`
}

func (c *Challenge) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
