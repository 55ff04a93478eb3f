package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusinova/innovation-platform/internal/dto"
	apierrors "github.com/campusinova/innovation-platform/internal/errors"
	"github.com/campusinova/innovation-platform/internal/middleware"
	"github.com/campusinova/innovation-platform/internal/services"
)

// SolutionHandler coordinates solution and voting endpoints.
type SolutionHandler struct {
	solutionService *services.SolutionService
}

// NewSolutionHandler creates a new SolutionHandler.
func NewSolutionHandler(solutionService *services.SolutionService) *SolutionHandler {
	return &SolutionHandler{solutionService: solutionService}
}

// Submit records the authenticated user's solution to a challenge.
func (h *SolutionHandler) Submit(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	var req dto.CreateSolutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	solution, err := h.solutionService.Submit(user, req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSolutionDTO(*solution))
}

// ListByChallenge returns a challenge's solutions ordered by votes.
func (h *SolutionHandler) ListByChallenge(c *gin.Context) {
	solutions, err := h.solutionService.ListByChallenge(c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSolutionDTOs(solutions))
}

// List returns all solutions ordered by votes.
func (h *SolutionHandler) List(c *gin.Context) {
	solutions, err := h.solutionService.List()
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSolutionDTOs(solutions))
}

// Vote casts the authenticated user's vote on a solution.
func (h *SolutionHandler) Vote(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	if err := h.solutionService.Vote(user, c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Vote successfully registered. Author awarded 10 points!",
	})
}

// Votes returns the vote detail for one solution.
func (h *SolutionHandler) Votes(c *gin.Context) {
	votes, err := h.solutionService.Votes(c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, votes)
}
