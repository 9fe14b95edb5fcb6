package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"coachdesk/coach-organizer/internal/domain"
	"coachdesk/coach-organizer/internal/store"
)

// ClientHandler binds the client registry to HTTP.
type ClientHandler struct {
	clients *store.ClientStore
}

func NewClientHandler(clients *store.ClientStore) *ClientHandler {
	return &ClientHandler{clients: clients}
}

// ListClients returns every client profile.
func (h *ClientHandler) ListClients(c *gin.Context) {
	c.JSON(http.StatusOK, h.clients.All())
}

// GetClient returns one client by id.
func (h *ClientHandler) GetClient(c *gin.Context) {
	client, ok := h.clients.ByID(c.Param("id"))
	if !ok {
		abortWithError(c, http.StatusNotFound, store.ErrClientNotFound.Error())
		return
	}
	c.JSON(http.StatusOK, client)
}

// CreateClient validates and stores a new client. Validation failures come
// back as {success:false, error} with the rule's message.
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var in store.ClientInput
	if err := c.ShouldBindJSON(&in); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	client, err := h.clients.Add(c.Request.Context(), in)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "client": client})
}

// UpdateClient shallow-merges a partial profile update.
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	var upd store.ClientUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	if err := h.clients.Update(c.Request.Context(), c.Param("id"), upd); err != nil {
		respondStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteClient removes the profile. No cascade to workouts; they dangle by
// design and the UI shows a fallback label.
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	if err := h.clients.Remove(c.Request.Context(), c.Param("id")); err != nil {
		respondStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetClientAnalytics returns the derived analytics view.
func (h *ClientHandler) GetClientAnalytics(c *gin.Context) {
	analytics, err := h.clients.Analytics(c.Param("id"))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, analytics)
}

// RecordProgress merges a progress update; lastUpdated always refreshes.
func (h *ClientHandler) RecordProgress(c *gin.Context) {
	var upd store.ProgressUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	if err := h.clients.RecordProgress(c.Request.Context(), c.Param("id"), upd); err != nil {
		respondStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddAttendance appends an attendance record.
func (h *ClientHandler) AddAttendance(c *gin.Context) {
	var rec domain.AttendanceRecord
	if err := c.ShouldBindJSON(&rec); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	if err := h.clients.AddAttendance(c.Request.Context(), c.Param("id"), rec); err != nil {
		respondStoreError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

// AddNutrition appends a nutrition entry.
func (h *ClientHandler) AddNutrition(c *gin.Context) {
	var entry domain.NutritionEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	if err := h.clients.AddNutrition(c.Request.Context(), c.Param("id"), entry); err != nil {
		respondStoreError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

// AddWorkoutRecord appends to the client-owned workout log.
func (h *ClientHandler) AddWorkoutRecord(c *gin.Context) {
	var rec domain.ClientWorkoutRecord
	if err := c.ShouldBindJSON(&rec); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	if err := h.clients.AddWorkoutToHistory(c.Request.Context(), c.Param("id"), rec); err != nil {
		respondStoreError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}
