package services

import (
	"context"

	"github.com/yukikurage/assignment-api/internal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// AssignmentServiceInterface defines the operations behind the /assignments endpoints
type AssignmentServiceInterface interface {
	List(ctx context.Context) ([]models.Assignment, error)
	Get(ctx context.Context, key models.AssignmentKey) (*models.Assignment, error)
	Create(ctx context.Context, input models.NewAssignment) (*models.Assignment, error)
	Update(ctx context.Context, key models.AssignmentKey, input models.NewAssignment) (*models.Assignment, error)
	Delete(ctx context.Context, key models.AssignmentKey) (int64, error)
}

// TaskStatusServiceInterface defines the operations behind the /tasks_statuses endpoints
type TaskStatusServiceInterface interface {
	List(ctx context.Context) ([]models.TaskStatus, error)
	Get(ctx context.Context, id int32) (*models.TaskStatus, error)
	Create(ctx context.Context, input models.NewTaskStatus) (*models.TaskStatus, error)
	Update(ctx context.Context, id int32, input models.NewTaskStatus) (*models.TaskStatus, error)
	Delete(ctx context.Context, id int32) (int64, error)
}
