package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusinova/innovation-platform/internal/dto"
	apierrors "github.com/campusinova/innovation-platform/internal/errors"
	"github.com/campusinova/innovation-platform/internal/middleware"
	"github.com/campusinova/innovation-platform/internal/services"
)

// ChallengeHandler coordinates challenge endpoints.
type ChallengeHandler struct {
	challengeService *services.ChallengeService
}

// NewChallengeHandler creates a new ChallengeHandler.
func NewChallengeHandler(challengeService *services.ChallengeService) *ChallengeHandler {
	return &ChallengeHandler{challengeService: challengeService}
}

// Create publishes a new challenge. Restricted to professors, companies and
// admins by the role gate on the route.
func (h *ChallengeHandler) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	var req dto.CreateChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	challenge, err := h.challengeService.Create(user, req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.ToChallengeDTO(*challenge))
}

// List returns all active challenges.
func (h *ChallengeHandler) List(c *gin.Context) {
	challenges, err := h.challengeService.ListActive()
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.ToChallengeDTOs(challenges))
}

// Get returns one challenge by ID.
func (h *ChallengeHandler) Get(c *gin.Context) {
	challenge, err := h.challengeService.Get(c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.ToChallengeDTO(*challenge))
}
