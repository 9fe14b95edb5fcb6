package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"coachdesk/coach-organizer/internal/domain"
	"coachdesk/coach-organizer/internal/store"
)

// CalendarHandler binds recurring schedules and materialized workouts to
// HTTP.
type CalendarHandler struct {
	calendar *store.CalendarStore
}

func NewCalendarHandler(calendar *store.CalendarStore) *CalendarHandler {
	return &CalendarHandler{calendar: calendar}
}

// ListSchedules returns all schedule rules; ?client= narrows to one client.
func (h *CalendarHandler) ListSchedules(c *gin.Context) {
	if clientID := c.Query("client"); clientID != "" {
		schedules := h.calendar.SchedulesByClient(clientID)
		if schedules == nil {
			schedules = []domain.RecurringSchedule{}
		}
		c.JSON(http.StatusOK, schedules)
		return
	}
	c.JSON(http.StatusOK, h.calendar.Schedules())
}

// CreateSchedule stores a new recurring schedule rule.
func (h *CalendarHandler) CreateSchedule(c *gin.Context) {
	var in store.ScheduleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	sched, err := h.calendar.AddRecurringSchedule(c.Request.Context(), in)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sched)
}

// UpdateSchedule merges a partial update into a schedule rule.
func (h *CalendarHandler) UpdateSchedule(c *gin.Context) {
	var upd store.ScheduleUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	if err := h.calendar.UpdateRecurringSchedule(c.Request.Context(), c.Param("id"), upd); err != nil {
		respondStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteSchedule removes the rule and every workout materialized from it.
func (h *CalendarHandler) DeleteSchedule(c *gin.Context) {
	if err := h.calendar.DeleteRecurringSchedule(c.Request.Context(), c.Param("id")); err != nil {
		respondStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetScheduledWorkout returns the materialized instance for
// (schedule, ?date=), matching the calendar day only.
func (h *CalendarHandler) GetScheduledWorkout(c *gin.Context) {
	date, err := parseDate(c.Query("date"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid or missing date")
		return
	}

	workout, ok := h.calendar.ScheduledWorkout(c.Param("id"), date)
	if !ok {
		// Not yet materialized for that day; not an error.
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, workout)
}

// UpsertScheduledWorkout materializes or overwrites the instance for
// (schedule, ?date=).
func (h *CalendarHandler) UpsertScheduledWorkout(c *gin.Context) {
	date, err := parseDate(c.Query("date"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid or missing date")
		return
	}

	var workout domain.Workout
	if err := c.ShouldBindJSON(&workout); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	if err := h.calendar.UpsertScheduledWorkout(c.Request.Context(), c.Param("id"), date, workout); err != nil {
		respondStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteScheduledWorkout removes the instance for (schedule, ?date=);
// absent is a no-op.
func (h *CalendarHandler) DeleteScheduledWorkout(c *gin.Context) {
	date, err := parseDate(c.Query("date"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid or missing date")
		return
	}

	if err := h.calendar.DeleteScheduledWorkout(c.Request.Context(), c.Param("id"), date); err != nil {
		respondStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
