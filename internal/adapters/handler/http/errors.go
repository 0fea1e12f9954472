package http

import (
	"errors"
	"net/http"

	"github.com/comitanigiacomo/streak-radar/internal/core/domain"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

var validationErrors = []error{
	domain.ErrHabitNameEmpty,
	domain.ErrHabitNameTooLong,
	domain.ErrInvalidCategory,
	domain.ErrInvalidMonth,
	domain.ErrTaskNameEmpty,
	domain.ErrTaskNameTooLong,
	domain.ErrInvalidStartTime,
	domain.ErrInvalidDuration,
	domain.ErrInvalidTaskCategory,
	domain.ErrInvalidRecurrence,
	domain.ErrInvalidPriority,
	domain.ErrInvalidTheme,
}

var notFoundErrors = []error{
	domain.ErrHabitNotFound,
	domain.ErrRoutineTaskNotFound,
}

func isAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// respondError maps domain errors to status codes. Anything unknown is a
// 500 with a generic message; the cause only goes to the log.
func respondError(c *gin.Context, log zerolog.Logger, err error) {
	switch {
	case isAny(err, validationErrors):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case isAny(err, notFoundErrors):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
