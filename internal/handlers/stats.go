package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/campusinova/innovation-platform/internal/services"
)

// StatsHandler coordinates the public counters and health endpoints.
type StatsHandler struct {
	statsService *services.StatsService
	db           *gorm.DB
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(statsService *services.StatsService, db *gorm.DB) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
		db:           db,
	}
}

// Stats returns the public platform counters.
func (h *StatsHandler) Stats(c *gin.Context) {
	stats, err := h.statsService.Overview(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// Health pings the database and reports service health.
func (h *StatsHandler) Health(c *gin.Context) {
	timestamp := time.Now().UTC().Format(time.RFC3339)

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		c.JSON(http.StatusOK, gin.H{
			"status":    "unhealthy",
			"error":     err.Error(),
			"timestamp": timestamp,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"database":  "connected",
		"timestamp": timestamp,
	})
}
