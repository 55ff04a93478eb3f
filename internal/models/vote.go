package models

import "time"

// Vote records a single user voting on a single solution.
type Vote struct {
	UserID     string    `gorm:"type:varchar(36);primarykey" json:"user_id"`
	SolutionID string    `gorm:"type:varchar(36);primarykey" json:"solution_id"`
	CreatedAt  time.Time `json:"created_at"`

	// Relations
	User     User     `gorm:"foreignKey:UserID" json:"-"`
	Solution Solution `gorm:"foreignKey:SolutionID" json:"-"`
}
