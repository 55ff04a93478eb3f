package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusinova/innovation-platform/internal/dto"
	"github.com/campusinova/innovation-platform/internal/services"
)

// UserHandler coordinates public user endpoints.
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Leaderboard returns the top users ranked by points.
func (h *UserHandler) Leaderboard(c *gin.Context) {
	users, err := h.userService.Leaderboard()
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTOs(users))
}

// List returns users, newest first.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.List()
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTOs(users))
}

// Get returns one user by ID.
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.userService.Get(c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}
