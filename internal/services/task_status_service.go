package services

import (
	"context"
	"errors"

	"github.com/yukikurage/assignment-api/internal/database"
	"github.com/yukikurage/assignment-api/internal/models"
	"github.com/yukikurage/assignment-api/internal/repository"
)

var ErrTaskStatusNotFound = errors.New("task status not found")

// TaskStatusService handles task status persistence
type TaskStatusService struct {
	pool *database.Pool
}

// NewTaskStatusService creates a new TaskStatusService
func NewTaskStatusService(pool *database.Pool) *TaskStatusService {
	return &TaskStatusService{pool: pool}
}

func (s *TaskStatusService) List(ctx context.Context) ([]models.TaskStatus, error) {
	statuses, err := withRepository(ctx, s.pool, repository.NewTaskStatusRepository,
		func(repo repository.TaskStatusRepository) ([]models.TaskStatus, error) {
			return repo.ReadAll()
		})
	if err != nil {
		return nil, translate(err, ErrTaskStatusNotFound, "list task statuses")
	}
	return statuses, nil
}

func (s *TaskStatusService) Get(ctx context.Context, id int32) (*models.TaskStatus, error) {
	status, err := withRepository(ctx, s.pool, repository.NewTaskStatusRepository,
		func(repo repository.TaskStatusRepository) (*models.TaskStatus, error) {
			return repo.Read(id)
		})
	if err != nil {
		return nil, translate(err, ErrTaskStatusNotFound, "find task status")
	}
	return status, nil
}

// Create stores a new status; the id comes from the store
func (s *TaskStatusService) Create(ctx context.Context, input models.NewTaskStatus) (*models.TaskStatus, error) {
	status, err := withRepository(ctx, s.pool, repository.NewTaskStatusRepository,
		func(repo repository.TaskStatusRepository) (*models.TaskStatus, error) {
			return repo.Create(input)
		})
	if err != nil {
		return nil, translate(err, ErrTaskStatusNotFound, "create task status")
	}
	return status, nil
}

// Update renames the status identified by id
func (s *TaskStatusService) Update(ctx context.Context, id int32, input models.NewTaskStatus) (*models.TaskStatus, error) {
	status, err := withRepository(ctx, s.pool, repository.NewTaskStatusRepository,
		func(repo repository.TaskStatusRepository) (*models.TaskStatus, error) {
			return repo.Update(id, input)
		})
	if err != nil {
		return nil, translate(err, ErrTaskStatusNotFound, "update task status")
	}
	return status, nil
}

func (s *TaskStatusService) Delete(ctx context.Context, id int32) (int64, error) {
	count, err := withRepository(ctx, s.pool, repository.NewTaskStatusRepository,
		func(repo repository.TaskStatusRepository) (int64, error) {
			return repo.Delete(id)
		})
	if err != nil {
		return 0, translate(err, ErrTaskStatusNotFound, "delete task status")
	}
	if count == 0 {
		return 0, ErrTaskStatusNotFound
	}
	return count, nil
}
