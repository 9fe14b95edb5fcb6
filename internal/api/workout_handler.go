package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"coachdesk/coach-organizer/internal/domain"
	"coachdesk/coach-organizer/internal/store"
)

// WorkoutHandler binds the workout store to HTTP.
type WorkoutHandler struct {
	workouts *store.WorkoutStore
}

func NewWorkoutHandler(workouts *store.WorkoutStore) *WorkoutHandler {
	return &WorkoutHandler{workouts: workouts}
}

// ListWorkouts returns all workouts; ?client= narrows to one client and
// ?day= additionally filters by weekday tag.
func (h *WorkoutHandler) ListWorkouts(c *gin.Context) {
	clientID := c.Query("client")
	if clientID == "" {
		c.JSON(http.StatusOK, h.workouts.All())
		return
	}

	if day := domain.DayOfWeek(c.Query("day")); day != "" {
		if !day.Valid() {
			abortWithError(c, http.StatusBadRequest, "Unknown day of week")
			return
		}
		workouts := h.workouts.ByClientAndDay(clientID, day)
		if workouts == nil {
			workouts = []domain.Workout{}
		}
		c.JSON(http.StatusOK, workouts)
		return
	}

	workouts := h.workouts.ByClient(clientID)
	if workouts == nil {
		workouts = []domain.Workout{}
	}
	c.JSON(http.StatusOK, workouts)
}

// GetWorkout returns one workout by id.
func (h *WorkoutHandler) GetWorkout(c *gin.Context) {
	workout, ok := h.workouts.ByID(c.Param("id"))
	if !ok {
		abortWithError(c, http.StatusNotFound, store.ErrWorkoutNotFound.Error())
		return
	}
	c.JSON(http.StatusOK, workout)
}

// CreateWorkout stores a workout, assigning id and timestamps when absent.
func (h *WorkoutHandler) CreateWorkout(c *gin.Context) {
	var workout domain.Workout
	if err := c.ShouldBindJSON(&workout); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	created, err := h.workouts.Add(c.Request.Context(), workout)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateWorkout merges a partial update and refreshes updatedAt.
func (h *WorkoutHandler) UpdateWorkout(c *gin.Context) {
	var upd store.WorkoutUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	if err := h.workouts.Update(c.Request.Context(), c.Param("id"), upd); err != nil {
		respondStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteWorkout removes a workout by id.
func (h *WorkoutHandler) DeleteWorkout(c *gin.Context) {
	if err := h.workouts.Remove(c.Request.Context(), c.Param("id")); err != nil {
		respondStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ContinueWorkout clones a past workout into a fresh session with the
// recorded weight/reps cleared.
func (h *WorkoutHandler) ContinueWorkout(c *gin.Context) {
	workout, err := h.workouts.Continue(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, workout)
}

// CompleteWorkout marks the workout done; idempotent.
func (h *WorkoutHandler) CompleteWorkout(c *gin.Context) {
	if err := h.workouts.Complete(c.Request.Context(), c.Param("id")); err != nil {
		respondStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetWorkoutStats summarizes a client's workouts.
func (h *WorkoutHandler) GetWorkoutStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.workouts.Stats(c.Param("id")))
}
