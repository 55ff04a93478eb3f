package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusinova/innovation-platform/internal/dto"
	"github.com/campusinova/innovation-platform/internal/services"
)

// AdminHandler coordinates admin-only listing and analytics endpoints. All
// routes are behind the admin role gate.
type AdminHandler struct {
	userService      *services.UserService
	challengeService *services.ChallengeService
	solutionService  *services.SolutionService
	statsService     *services.StatsService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(
	userService *services.UserService,
	challengeService *services.ChallengeService,
	solutionService *services.SolutionService,
	statsService *services.StatsService,
) *AdminHandler {
	return &AdminHandler{
		userService:      userService,
		challengeService: challengeService,
		solutionService:  solutionService,
		statsService:     statsService,
	}
}

// Users returns all users including their expectations.
func (h *AdminHandler) Users(c *gin.Context) {
	users, err := h.userService.ListAll()
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTOs(users))
}

// Challenges returns all challenges including inactive ones.
func (h *AdminHandler) Challenges(c *gin.Context) {
	challenges, err := h.challengeService.ListAll()
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.ToChallengeDTOs(challenges))
}

// Solutions returns all solutions ordered by votes.
func (h *AdminHandler) Solutions(c *gin.Context) {
	solutions, err := h.solutionService.ListAll()
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSolutionDTOs(solutions))
}

// DetailedStats returns the admin analytics payload.
func (h *AdminHandler) DetailedStats(c *gin.Context) {
	stats, err := h.statsService.Detailed(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
