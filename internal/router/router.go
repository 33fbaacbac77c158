package router

import (
	"github.com/fasthttp/router"

	apiHandler "github.com/taskdesk/backend/api/handler"
)

type Handlers struct {
	Task     *apiHandler.TaskHandler
	Settings *apiHandler.SettingsHandler
	Health   *apiHandler.HealthHandler
}

func New(handlers Handlers) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	// Task listing and mutations
	r.GET("/api/v1/tasks", handlers.Task.List)
	r.POST("/api/v1/tasks", handlers.Task.Create)
	r.POST("/api/v1/tasks/clear-completed", handlers.Task.ClearCompleted)
	r.POST("/api/v1/tasks/toggle-all", handlers.Task.ToggleAll)
	r.POST("/api/v1/tasks/bulk/complete", handlers.Task.BulkComplete)
	r.POST("/api/v1/tasks/bulk/delete", handlers.Task.BulkDelete)
	r.POST("/api/v1/tasks/{id}/toggle", handlers.Task.Toggle)
	r.PUT("/api/v1/tasks/{id}/title", handlers.Task.UpdateTitle)
	r.PUT("/api/v1/tasks/{id}/details", handlers.Task.UpdateDetails)
	r.DELETE("/api/v1/tasks/{id}", handlers.Task.Delete)

	// Settings reference data
	r.GET("/api/v1/settings/units", handlers.Settings.ListUnits)
	r.POST("/api/v1/settings/units", handlers.Settings.SaveUnit)
	r.PUT("/api/v1/settings/units/{id}", handlers.Settings.UpdateUnit)
	r.DELETE("/api/v1/settings/units/{id}", handlers.Settings.DeleteUnit)

	r.GET("/api/v1/settings/categories", handlers.Settings.ListCategories)
	r.POST("/api/v1/settings/categories", handlers.Settings.SaveCategory)
	r.PUT("/api/v1/settings/categories/{id}", handlers.Settings.UpdateCategory)
	r.DELETE("/api/v1/settings/categories/{id}", handlers.Settings.DeleteCategory)

	return r
}
