package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/yukikurage/assignment-api/internal/config"
	"github.com/yukikurage/assignment-api/internal/database"
	"github.com/yukikurage/assignment-api/internal/handlers"
	"github.com/yukikurage/assignment-api/internal/middleware"
	"github.com/yukikurage/assignment-api/internal/services"
	"gorm.io/gorm"

	_ "github.com/yukikurage/assignment-api/docs"
)

// Setup builds the HTTP surface on top of db
func Setup(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())

	pool := database.NewPool(db)

	assignmentHandler := handlers.NewAssignmentHandler(services.NewAssignmentService(pool))
	taskStatusHandler := handlers.NewTaskStatusHandler(services.NewTaskStatusService(pool))
	healthHandler := handlers.NewHealthHandler(pool)

	r.GET("/health", healthHandler.Health)

	if cfg != nil && cfg.SwaggerEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	assignments := r.Group("/assignments")
	{
		assignments.GET("", assignmentHandler.ListAssignments)
		assignments.POST("", assignmentHandler.CreateAssignment)
		assignments.GET("/:user_id/:task_id", assignmentHandler.GetAssignment)
		assignments.PUT("/:user_id/:task_id", assignmentHandler.UpdateAssignment)
		assignments.DELETE("/:user_id/:task_id", assignmentHandler.DeleteAssignment)
	}

	statuses := r.Group("/tasks_statuses")
	{
		statuses.GET("", taskStatusHandler.ListTaskStatuses)
		statuses.POST("", taskStatusHandler.CreateTaskStatus)
		statuses.GET("/:id", taskStatusHandler.GetTaskStatus)
		statuses.PUT("/:id", taskStatusHandler.UpdateTaskStatus)
		statuses.DELETE("/:id", taskStatusHandler.DeleteTaskStatus)
	}

	return r
}
