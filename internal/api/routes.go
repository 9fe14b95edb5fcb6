package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"coachdesk/coach-organizer/internal/store"
)

// Stores bundles the injectable store instances the API binds to.
type Stores struct {
	Catalog   *store.CatalogStore
	Clients   *store.ClientStore
	Templates *store.TemplateStore
	Calendar  *store.CalendarStore
	Workouts  *store.WorkoutStore
	History   *store.HistoryStore
}

// SetupRoutes mounts every handler under /api/v1.
func SetupRoutes(router *gin.Engine, stores Stores) {
	exerciseHandler := NewExerciseHandler(stores.Catalog)
	clientHandler := NewClientHandler(stores.Clients)
	templateHandler := NewTemplateHandler(stores.Templates)
	calendarHandler := NewCalendarHandler(stores.Calendar)
	workoutHandler := NewWorkoutHandler(stores.Workouts)
	historyHandler := NewHistoryHandler(stores.History)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		exercises := apiV1.Group("/exercises")
		{
			exercises.GET("", exerciseHandler.ListExercises)
			exercises.GET("/categories", exerciseHandler.ListCategories)
			exercises.POST("", exerciseHandler.CreateExercise)
			exercises.PUT("/:id", exerciseHandler.UpdateExercise)
			exercises.DELETE("/:id", exerciseHandler.DeleteExercise)
			exercises.GET("/:id/planned", exerciseHandler.InstantiateExercise)
		}

		clients := apiV1.Group("/clients")
		{
			clients.GET("", clientHandler.ListClients)
			clients.POST("", clientHandler.CreateClient)
			clients.GET("/:id", clientHandler.GetClient)
			clients.PUT("/:id", clientHandler.UpdateClient)
			clients.DELETE("/:id", clientHandler.DeleteClient)
			clients.GET("/:id/analytics", clientHandler.GetClientAnalytics)
			clients.PUT("/:id/progress", clientHandler.RecordProgress)
			clients.POST("/:id/attendance", clientHandler.AddAttendance)
			clients.POST("/:id/nutrition", clientHandler.AddNutrition)
			clients.POST("/:id/workout-records", clientHandler.AddWorkoutRecord)
			clients.GET("/:id/workout-stats", workoutHandler.GetWorkoutStats)
			clients.GET("/:id/history", historyHandler.ListClientHistory)
			clients.GET("/:id/history/progress", historyHandler.GetExerciseProgress)
			clients.GET("/:id/history/completion-rate", historyHandler.GetCompletionRate)
			clients.GET("/:id/history/most-common", historyHandler.GetMostCommonExercises)
			clients.POST("/:id/history/seed", historyHandler.SeedSampleData)
		}

		templates := apiV1.Group("/templates")
		{
			templates.GET("", templateHandler.ListTemplates)
			templates.POST("", templateHandler.CreateTemplate)
			templates.GET("/:id", templateHandler.GetTemplate)
			templates.PUT("/:id", templateHandler.UpdateTemplate)
			templates.DELETE("/:id", templateHandler.DeleteTemplate)
			templates.GET("/:id/schedules", templateHandler.ListTemplateSchedules)
		}

		schedules := apiV1.Group("/schedules")
		{
			schedules.GET("", calendarHandler.ListSchedules)
			schedules.POST("", calendarHandler.CreateSchedule)
			schedules.PUT("/:id", calendarHandler.UpdateSchedule)
			schedules.DELETE("/:id", calendarHandler.DeleteSchedule)
			schedules.GET("/:id/workout", calendarHandler.GetScheduledWorkout)
			schedules.PUT("/:id/workout", calendarHandler.UpsertScheduledWorkout)
			schedules.DELETE("/:id/workout", calendarHandler.DeleteScheduledWorkout)
		}

		workouts := apiV1.Group("/workouts")
		{
			workouts.GET("", workoutHandler.ListWorkouts)
			workouts.POST("", workoutHandler.CreateWorkout)
			workouts.GET("/:id", workoutHandler.GetWorkout)
			workouts.PUT("/:id", workoutHandler.UpdateWorkout)
			workouts.DELETE("/:id", workoutHandler.DeleteWorkout)
			workouts.POST("/:id/continue", workoutHandler.ContinueWorkout)
			workouts.POST("/:id/complete", workoutHandler.CompleteWorkout)
		}

		history := apiV1.Group("/history")
		{
			history.POST("", historyHandler.CreateHistory)
			history.PUT("/:id", historyHandler.UpdateHistory)
			history.DELETE("/:id", historyHandler.DeleteHistory)
		}
	}
}
