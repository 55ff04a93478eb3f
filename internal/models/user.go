package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserType string

const (
	UserTypeStudent   UserType = "aluno"
	UserTypeProfessor UserType = "professor"
	UserTypeCompany   UserType = "empresa"
	UserTypeAdmin     UserType = "admin"
)

// ValidUserType reports whether t is one of the accepted account types.
func ValidUserType(t UserType) bool {
	switch t {
	case UserTypeStudent, UserTypeProfessor, UserTypeCompany, UserTypeAdmin:
		return true
	}
	return false
}

type User struct {
	ID           string    `gorm:"type:varchar(36);primarykey" json:"id"`
	Name         string    `gorm:"type:varchar(100);not null" json:"name"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	Type         UserType  `gorm:"type:varchar(20);not null" json:"type"`
	Points       int       `gorm:"not null;default:0" json:"points"`
	Expectations *string   `gorm:"type:text" json:"expectations"`
	CreatedAt    time.Time `json:"created_at"`

	// Relations
	Challenges []Challenge `gorm:"foreignKey:CreatorID" json:"-"`
	Solutions  []Solution  `gorm:"foreignKey:AuthorID" json:"-"`
	Votes      []Vote      `gorm:"foreignKey:UserID" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
