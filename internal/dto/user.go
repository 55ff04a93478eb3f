package dto

import (
	"github.com/jinzhu/copier"

	"github.com/campusinova/innovation-platform/internal/models"
)

// RegisterRequest is the payload for account creation. Expectations are only
// persisted when the user explicitly opts to share them.
type RegisterRequest struct {
	Name              string          `json:"name" binding:"required,min=2,max=100"`
	Email             string          `json:"email" binding:"required,email"`
	Password          string          `json:"password" binding:"required,min=6,max=100"`
	Type              models.UserType `json:"type" binding:"required"`
	ShareExpectations bool            `json:"shareExpectations"`
	Expectations      *string         `json:"expectations" binding:"omitempty,max=1000"`
}

// LoginRequest is the payload for authentication.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserDTO represents a user in API responses
type UserDTO struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Type         models.UserType `json:"type"`
	Points       int             `json:"points"`
	Expectations *string         `json:"expectations"`
}

// LoginResponse carries the bearer token alongside the authenticated user.
type LoginResponse struct {
	Token   string  `json:"token"`
	User    UserDTO `json:"user"`
	Message string  `json:"message"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		Type:         user.Type,
		Points:       user.Points,
		Expectations: user.Expectations,
	}
}

// ToUserDTOs converts a slice of User models to DTOs
func ToUserDTOs(users []models.User) []UserDTO {
	dtos := make([]UserDTO, 0, len(users))
	copier.Copy(&dtos, &users)
	return dtos
}
