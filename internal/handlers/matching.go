package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusinova/innovation-platform/internal/services"
)

// MatchingHandler exposes the expectation matching analysis.
type MatchingHandler struct {
	matchingService *services.MatchingService
}

// NewMatchingHandler creates a new MatchingHandler.
func NewMatchingHandler(matchingService *services.MatchingService) *MatchingHandler {
	return &MatchingHandler{matchingService: matchingService}
}

// Analysis returns the company/student matching analysis. The service
// degrades to an empty result on failure, so this always responds 200.
func (h *MatchingHandler) Analysis(c *gin.Context) {
	c.JSON(http.StatusOK, h.matchingService.Analysis(c.Request.Context()))
}
