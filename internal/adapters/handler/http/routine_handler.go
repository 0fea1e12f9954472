package http

import (
	"net/http"

	"github.com/comitanigiacomo/streak-radar/internal/core/domain"
	"github.com/comitanigiacomo/streak-radar/internal/core/services"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type RoutineHandler struct {
	svc *services.RoutineService
	log zerolog.Logger
}

func NewRoutineHandler(svc *services.RoutineService, log zerolog.Logger) *RoutineHandler {
	return &RoutineHandler{svc: svc, log: log}
}

type createRoutineRequest struct {
	Name        string `json:"name" binding:"required"`
	StartTime   string `json:"startTime" binding:"required"`
	Duration    int    `json:"duration" binding:"required"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Recurrence  string `json:"recurrence"`
	Priority    string `json:"priority"`
}

func (h *RoutineHandler) RegisterRoutes(router *gin.RouterGroup) {
	routines := router.Group("/routines")
	{
		routines.POST("", h.Add)
		routines.GET("", h.List)
		routines.POST("/:id/toggle", h.Toggle)
		routines.DELETE("/:id", h.Remove)
	}
}

// Add godoc
// @Summary  Add a routine task
// @Tags     routines
// @Accept   json
// @Produce  json
// @Param    task body createRoutineRequest true "Routine task"
// @Success  201 {object} services.RoutineChange
// @Failure  400 {object} map[string]string
// @Router   /routines [post]
func (h *RoutineHandler) Add(c *gin.Context) {
	var req createRoutineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	change, err := h.svc.Add(c.Request.Context(), domain.RoutineTaskInput{
		Name:        req.Name,
		StartTime:   req.StartTime,
		Duration:    req.Duration,
		Category:    domain.TaskCategory(req.Category),
		Description: req.Description,
		Recurrence:  domain.Recurrence(req.Recurrence),
		Priority:    domain.Priority(req.Priority),
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, change)
}

// List godoc
// @Summary  List routine tasks ordered by start time
// @Tags     routines
// @Produce  json
// @Success  200 {array} domain.RoutineTask
// @Router   /routines [get]
func (h *RoutineHandler) List(c *gin.Context) {
	tasks, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// Toggle godoc
// @Summary  Flip a routine task's completed flag
// @Tags     routines
// @Produce  json
// @Param    id path string true "Task ID"
// @Success  200 {object} domain.RoutineTask
// @Failure  404 {object} map[string]string
// @Router   /routines/{id}/toggle [post]
func (h *RoutineHandler) Toggle(c *gin.Context) {
	task, err := h.svc.Toggle(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// Remove godoc
// @Summary  Remove a routine task and cancel its reminder
// @Tags     routines
// @Param    id path string true "Task ID"
// @Success  204
// @Failure  404 {object} map[string]string
// @Router   /routines/{id} [delete]
func (h *RoutineHandler) Remove(c *gin.Context) {
	if err := h.svc.Remove(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.Status(http.StatusNoContent)
}
