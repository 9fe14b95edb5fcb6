package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"coachdesk/coach-organizer/internal/domain"
	"coachdesk/coach-organizer/internal/store"
)

// TemplateHandler binds the template store (and its template-centric
// schedule view) to HTTP.
type TemplateHandler struct {
	templates *store.TemplateStore
}

func NewTemplateHandler(templates *store.TemplateStore) *TemplateHandler {
	return &TemplateHandler{templates: templates}
}

// ListTemplates returns all templates; ?public=true narrows to shareable
// ones and ?day=Monday narrows to a weekday tag.
func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	if c.Query("public") == "true" {
		c.JSON(http.StatusOK, h.templates.Public())
		return
	}
	if day := domain.DayOfWeek(c.Query("day")); day != "" {
		if !day.Valid() {
			abortWithError(c, http.StatusBadRequest, "Unknown day of week")
			return
		}
		c.JSON(http.StatusOK, h.templates.ByDay(day))
		return
	}
	c.JSON(http.StatusOK, h.templates.All())
}

// GetTemplate returns one template by id.
func (h *TemplateHandler) GetTemplate(c *gin.Context) {
	tpl, ok := h.templates.ByID(c.Param("id"))
	if !ok {
		abortWithError(c, http.StatusNotFound, store.ErrTemplateNotFound.Error())
		return
	}
	c.JSON(http.StatusOK, tpl)
}

// CreateTemplate stores a new template.
func (h *TemplateHandler) CreateTemplate(c *gin.Context) {
	var in store.TemplateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	tpl, err := h.templates.Add(c.Request.Context(), in)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tpl)
}

// UpdateTemplate merges a partial update and refreshes updatedAt.
func (h *TemplateHandler) UpdateTemplate(c *gin.Context) {
	var upd store.TemplateUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	if err := h.templates.Update(c.Request.Context(), c.Param("id"), upd); err != nil {
		respondStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteTemplate removes the template and cascades to its recurring
// schedules and their materialized workouts.
func (h *TemplateHandler) DeleteTemplate(c *gin.Context) {
	if err := h.templates.Remove(c.Request.Context(), c.Param("id")); err != nil {
		respondStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListTemplateSchedules returns the schedules referencing a template.
func (h *TemplateHandler) ListTemplateSchedules(c *gin.Context) {
	schedules := h.templates.SchedulesByTemplate(c.Param("id"))
	if schedules == nil {
		schedules = []domain.RecurringSchedule{}
	}
	c.JSON(http.StatusOK, schedules)
}
