package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"coachdesk/coach-organizer/internal/storage"
	"coachdesk/coach-organizer/internal/store"
)

// CORSMiddleware lets the locally-served UI talk to the API from any
// origin. Single user, local deployment; nothing here is secret.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// RequestLogger logs each request with method, path, status and duration.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.WithFields(log.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start),
		}).Debug("request handled")
	}
}

func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// respondStoreError maps store-layer errors onto HTTP. Validation failures
// keep the {success:false, error} shape the UI displays verbatim.
func respondStoreError(c *gin.Context, err error) {
	var ve *store.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": ve.Message})
		return
	}

	var pe *storage.PersistenceError
	if errors.As(err, &pe) {
		log.WithError(err).Error("persistence failure")
		abortWithError(c, http.StatusInternalServerError, "Failed to persist changes")
		return
	}

	switch {
	case errors.Is(err, store.ErrClientNotFound),
		errors.Is(err, store.ErrWorkoutNotFound),
		errors.Is(err, store.ErrTemplateNotFound),
		errors.Is(err, store.ErrScheduleNotFound),
		errors.Is(err, store.ErrExerciseNotFound),
		errors.Is(err, store.ErrHistoryNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	default:
		log.WithError(err).Error("unexpected store error")
		abortWithError(c, http.StatusInternalServerError, err.Error())
	}
}

// parseDate accepts a plain calendar date or a full RFC 3339 timestamp.
// Calendar lookups only ever compare the date part anyway.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}
