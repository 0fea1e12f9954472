package http

import (
	"net/http"

	"github.com/comitanigiacomo/streak-radar/internal/core/domain"
	"github.com/comitanigiacomo/streak-radar/internal/core/services"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type StateHandler struct {
	state    *services.StateService
	settings *services.SettingsService
	log      zerolog.Logger
}

func NewStateHandler(state *services.StateService, settings *services.SettingsService, log zerolog.Logger) *StateHandler {
	return &StateHandler{state: state, settings: settings, log: log}
}

func (h *StateHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/state", h.Snapshot)
	r.GET("/settings", h.GetSettings)
	r.PATCH("/settings", h.UpdateSettings)
}

// Snapshot godoc
// @Summary  Full persisted state for the UI shell
// @Tags     state
// @Produce  json
// @Success  200 {object} domain.AppState
// @Router   /state [get]
func (h *StateHandler) Snapshot(c *gin.Context) {
	state, err := h.state.Snapshot(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// GetSettings godoc
// @Summary  Current user settings
// @Tags     settings
// @Produce  json
// @Success  200 {object} domain.Settings
// @Router   /settings [get]
func (h *StateHandler) GetSettings(c *gin.Context) {
	settings, err := h.settings.Get(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateSettings godoc
// @Summary  Merge a partial settings update
// @Tags     settings
// @Accept   json
// @Produce  json
// @Param    settings body domain.SettingsPatch true "Fields to change"
// @Success  200 {object} domain.Settings
// @Failure  400 {object} map[string]string
// @Router   /settings [patch]
func (h *StateHandler) UpdateSettings(c *gin.Context) {
	var patch domain.SettingsPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings, err := h.settings.Update(c.Request.Context(), patch)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}
