package http

import (
	"net/http"

	"github.com/comitanigiacomo/streak-radar/internal/core/services"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type HabitHandler struct {
	svc *services.HabitService
	log zerolog.Logger
}

func NewHabitHandler(svc *services.HabitService, log zerolog.Logger) *HabitHandler {
	return &HabitHandler{
		svc: svc,
		log: log,
	}
}

type createHabitRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category" binding:"required"`
	Target   int    `json:"target"`
	Unit     string `json:"unit"`
}

func (h *HabitHandler) RegisterRoutes(router *gin.RouterGroup) {
	habits := router.Group("/habits")
	{
		habits.POST("", h.Create)
		habits.GET("", h.List)
		habits.GET("/:id", h.Get)
		habits.DELETE("/:id", h.Delete)
		habits.POST("/:id/toggle", h.Toggle)
		habits.GET("/:id/calendar", h.Calendar)
	}
}

// Create godoc
// @Summary  Create a habit
// @Tags     habits
// @Accept   json
// @Produce  json
// @Param    habit body createHabitRequest true "Habit"
// @Success  201 {object} services.HabitChange
// @Failure  400 {object} map[string]string
// @Router   /habits [post]
func (h *HabitHandler) Create(c *gin.Context) {
	var req createHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	change, err := h.svc.Create(c.Request.Context(), services.CreateHabitInput{
		Name:     req.Name,
		Category: req.Category,
		Target:   req.Target,
		Unit:     req.Unit,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, change)
}

// List godoc
// @Summary  List habits in creation order
// @Tags     habits
// @Produce  json
// @Success  200 {array} domain.Habit
// @Router   /habits [get]
func (h *HabitHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// Get godoc
// @Summary  Habit with today's status and longest run
// @Tags     habits
// @Produce  json
// @Param    id path string true "Habit ID"
// @Success  200 {object} services.HabitDetail
// @Failure  404 {object} map[string]string
// @Router   /habits/{id} [get]
func (h *HabitHandler) Get(c *gin.Context) {
	detail, err := h.svc.Detail(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// Delete godoc
// @Summary  Delete a habit
// @Tags     habits
// @Param    id path string true "Habit ID"
// @Success  204
// @Failure  404 {object} map[string]string
// @Router   /habits/{id} [delete]
func (h *HabitHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Toggle godoc
// @Summary  Mark or unmark today's completion
// @Tags     habits
// @Produce  json
// @Param    id path string true "Habit ID"
// @Success  200 {object} services.HabitChange
// @Failure  404 {object} map[string]string
// @Router   /habits/{id}/toggle [post]
func (h *HabitHandler) Toggle(c *gin.Context) {
	change, err := h.svc.Toggle(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, change)
}

// Calendar godoc
// @Summary  Monthly completion grid
// @Tags     habits
// @Produce  json
// @Param    id    path  string true  "Habit ID"
// @Param    month query string false "Month as YYYY-MM, defaults to the current month"
// @Success  200 {array} domain.DayCompletion
// @Router   /habits/{id}/calendar [get]
func (h *HabitHandler) Calendar(c *gin.Context) {
	month, err := h.svc.ResolveMonth(c.Query("month"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	days, err := h.svc.Calendar(c.Request.Context(), c.Param("id"), month)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, days)
}
