package repository

import (
	"github.com/yukikurage/assignment-api/internal/models"
)

// Repository is the CRUD capability shared by every entity.
// E is the stored entity, K its primary key and N the payload written on create and update.
// A missing row surfaces as gorm.ErrRecordNotFound from Read and Update.
type Repository[E any, K any, N any] interface {
	// ReadAll returns every row in store order
	ReadAll() ([]E, error)

	// Read finds the row identified by key
	Read(key K) (*E, error)

	// Create inserts a row and returns it with store-assigned fields populated
	Create(payload N) (*E, error)

	// Update overwrites the row identified by key with payload
	Update(key K, payload N) (*E, error)

	// Delete removes the row identified by key and reports how many rows went away
	Delete(key K) (int64, error)
}

// AssignmentRepository defines data access for user_tasks
type AssignmentRepository = Repository[models.Assignment, models.AssignmentKey, models.NewAssignment]

// TaskStatusRepository defines data access for task_statuses
type TaskStatusRepository = Repository[models.TaskStatus, int32, models.NewTaskStatus]
