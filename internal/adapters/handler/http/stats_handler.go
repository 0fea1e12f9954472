package http

import (
	"net/http"

	"github.com/comitanigiacomo/streak-radar/internal/core/domain"
	"github.com/comitanigiacomo/streak-radar/internal/core/services"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type StatsHandler struct {
	stats        *services.StatsService
	achievements *services.AchievementService
	log          zerolog.Logger
}

func NewStatsHandler(stats *services.StatsService, achievements *services.AchievementService, log zerolog.Logger) *StatsHandler {
	return &StatsHandler{stats: stats, achievements: achievements, log: log}
}

func (h *StatsHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/stats", h.Summary)
	r.GET("/stats/radar", h.Radar)
	r.GET("/stats/overview", h.Overview)
	r.GET("/achievements", h.Achievements)
}

// Summary godoc
// @Summary  Aggregate habit statistics for today
// @Tags     stats
// @Produce  json
// @Success  200 {object} domain.HabitStats
// @Router   /stats [get]
func (h *StatsHandler) Summary(c *gin.Context) {
	stats, err := h.stats.Summary(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Radar godoc
// @Summary  Per category completion for the radar chart
// @Tags     stats
// @Produce  json
// @Success  200 {array} domain.RadarPoint
// @Router   /stats/radar [get]
func (h *StatsHandler) Radar(c *gin.Context) {
	points, err := h.stats.Radar(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, points)
}

// Overview godoc
// @Summary  Stats, radar and achievements in one payload
// @Tags     stats
// @Produce  json
// @Success  200 {object} services.Overview
// @Router   /stats/overview [get]
func (h *StatsHandler) Overview(c *gin.Context) {
	overview, err := h.stats.Overview(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}

// Achievements godoc
// @Summary  Achievement catalog with unlock state
// @Tags     achievements
// @Produce  json
// @Success  200 {array} domain.Achievement
// @Router   /achievements [get]
func (h *StatsHandler) Achievements(c *gin.Context) {
	list, err := h.achievements.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	if list == nil {
		list = []domain.Achievement{}
	}
	c.JSON(http.StatusOK, list)
}
