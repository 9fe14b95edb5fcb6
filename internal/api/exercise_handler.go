package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"coachdesk/coach-organizer/internal/domain"
	"coachdesk/coach-organizer/internal/store"
)

// ExerciseHandler binds the exercise catalog to HTTP.
type ExerciseHandler struct {
	catalog *store.CatalogStore
}

func NewExerciseHandler(catalog *store.CatalogStore) *ExerciseHandler {
	return &ExerciseHandler{catalog: catalog}
}

// CreateExerciseRequest is the payload for a custom exercise.
type CreateExerciseRequest struct {
	Name        string              `json:"name" binding:"required"`
	Description string              `json:"description"`
	Type        domain.ExerciseType `json:"type" binding:"required,oneof=strength cardio flexibility"`
	CategoryID  string              `json:"categoryId" binding:"required"`
	DefaultReps *domain.DefaultReps `json:"defaultReps"`
}

// ListExercises returns built-ins plus custom exercises, optionally
// filtered by one or more ?category= ids.
func (h *ExerciseHandler) ListExercises(c *gin.Context) {
	categories := c.QueryArray("category")
	c.JSON(http.StatusOK, h.catalog.ByCategory(categories...))
}

// ListCategories returns the static category list.
func (h *ExerciseHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Categories())
}

// CreateExercise stores a custom exercise.
func (h *ExerciseHandler) CreateExercise(c *gin.Context) {
	var req CreateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	exercise, err := h.catalog.AddCustom(c.Request.Context(), domain.Exercise{
		Name:        req.Name,
		Description: req.Description,
		Type:        req.Type,
		CategoryID:  req.CategoryID,
		DefaultReps: req.DefaultReps,
	})
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, exercise)
}

// UpdateExercise merges a partial update into a custom exercise.
func (h *ExerciseHandler) UpdateExercise(c *gin.Context) {
	var upd store.ExerciseUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	if err := h.catalog.UpdateCustom(c.Request.Context(), c.Param("id"), upd); err != nil {
		respondStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteExercise removes a custom exercise.
func (h *ExerciseHandler) DeleteExercise(c *gin.Context) {
	if err := h.catalog.DeleteCustom(c.Request.Context(), c.Param("id")); err != nil {
		respondStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// InstantiateExercise returns a planned-exercise record pre-filled with the
// catalog defaults, ready to drop into a template or workout.
func (h *ExerciseHandler) InstantiateExercise(c *gin.Context) {
	id := c.Param("id")
	for _, ex := range h.catalog.All() {
		if ex.ID == id {
			c.JSON(http.StatusOK, store.Instantiate(ex))
			return
		}
	}
	abortWithError(c, http.StatusNotFound, store.ErrExerciseNotFound.Error())
}
