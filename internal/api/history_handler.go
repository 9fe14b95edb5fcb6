package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"coachdesk/coach-organizer/internal/domain"
	"coachdesk/coach-organizer/internal/store"
)

// HistoryHandler binds the workout-history log and its analytics to HTTP.
type HistoryHandler struct {
	history *store.HistoryStore
}

func NewHistoryHandler(history *store.HistoryStore) *HistoryHandler {
	return &HistoryHandler{history: history}
}

// ListClientHistory returns a client's entries, most recent first.
func (h *HistoryHandler) ListClientHistory(c *gin.Context) {
	entries := h.history.ByClient(c.Param("id"))
	if entries == nil {
		entries = []domain.WorkoutHistory{}
	}
	c.JSON(http.StatusOK, entries)
}

// CreateHistory appends a performed-session record.
func (h *HistoryHandler) CreateHistory(c *gin.Context) {
	var entry domain.WorkoutHistory
	if err := c.ShouldBindJSON(&entry); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	created, err := h.history.Add(c.Request.Context(), entry)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateHistory merges a partial update into an entry.
func (h *HistoryHandler) UpdateHistory(c *gin.Context) {
	var upd store.HistoryUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	if err := h.history.Update(c.Request.Context(), c.Param("id"), upd); err != nil {
		respondStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteHistory removes an entry by id.
func (h *HistoryHandler) DeleteHistory(c *gin.Context) {
	if err := h.history.Remove(c.Request.Context(), c.Param("id")); err != nil {
		respondStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetExerciseProgress returns the date-aligned max-weight series for
// ?exercise= across the client's completed sessions.
func (h *HistoryHandler) GetExerciseProgress(c *gin.Context) {
	name := c.Query("exercise")
	if name == "" {
		abortWithError(c, http.StatusBadRequest, "Missing exercise name")
		return
	}
	c.JSON(http.StatusOK, h.history.ExerciseProgress(c.Param("id"), name))
}

// GetCompletionRate returns the percentage of completed entries.
func (h *HistoryHandler) GetCompletionRate(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"completionRate": h.history.CompletionRate(c.Param("id"))})
}

// GetMostCommonExercises returns the exercise frequency ranking, truncated
// to ?limit= (default 5).
func (h *HistoryHandler) GetMostCommonExercises(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	ranking := h.history.MostCommonExercises(c.Param("id"), limit)
	if ranking == nil {
		ranking = []domain.ExerciseCount{}
	}
	c.JSON(http.StatusOK, ranking)
}

// SeedSampleData fills the client's history with demo sessions.
func (h *HistoryHandler) SeedSampleData(c *gin.Context) {
	if err := h.history.SeedSampleData(c.Request.Context(), c.Param("id")); err != nil {
		respondStoreError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}
