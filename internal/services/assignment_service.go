package services

import (
	"context"
	"errors"

	"github.com/yukikurage/assignment-api/internal/database"
	"github.com/yukikurage/assignment-api/internal/models"
	"github.com/yukikurage/assignment-api/internal/repository"
)

var ErrAssignmentNotFound = errors.New("assignment not found")

// AssignmentService runs each assignment operation on its own borrowed connection
type AssignmentService struct {
	pool *database.Pool
}

// NewAssignmentService creates a new AssignmentService
func NewAssignmentService(pool *database.Pool) *AssignmentService {
	return &AssignmentService{pool: pool}
}

// List returns every assignment
func (s *AssignmentService) List(ctx context.Context) ([]models.Assignment, error) {
	assignments, err := withRepository(ctx, s.pool, repository.NewAssignmentRepository,
		func(repo repository.AssignmentRepository) ([]models.Assignment, error) {
			return repo.ReadAll()
		})
	if err != nil {
		return nil, translate(err, ErrAssignmentNotFound, "list assignments")
	}
	return assignments, nil
}

// Get returns the assignment identified by key
func (s *AssignmentService) Get(ctx context.Context, key models.AssignmentKey) (*models.Assignment, error) {
	assignment, err := withRepository(ctx, s.pool, repository.NewAssignmentRepository,
		func(repo repository.AssignmentRepository) (*models.Assignment, error) {
			return repo.Read(key)
		})
	if err != nil {
		return nil, translate(err, ErrAssignmentNotFound, "find assignment")
	}
	return assignment, nil
}

// Create stores a new assignment
func (s *AssignmentService) Create(ctx context.Context, input models.NewAssignment) (*models.Assignment, error) {
	assignment, err := withRepository(ctx, s.pool, repository.NewAssignmentRepository,
		func(repo repository.AssignmentRepository) (*models.Assignment, error) {
			return repo.Create(input)
		})
	if err != nil {
		return nil, translate(err, ErrAssignmentNotFound, "create assignment")
	}
	return assignment, nil
}

// Update overwrites the row at key with all three fields of input, including its key columns
func (s *AssignmentService) Update(ctx context.Context, key models.AssignmentKey, input models.NewAssignment) (*models.Assignment, error) {
	assignment, err := withRepository(ctx, s.pool, repository.NewAssignmentRepository,
		func(repo repository.AssignmentRepository) (*models.Assignment, error) {
			return repo.Update(key, input)
		})
	if err != nil {
		return nil, translate(err, ErrAssignmentNotFound, "update assignment")
	}
	return assignment, nil
}

// Delete removes the assignment at key. Deleting a missing row yields ErrAssignmentNotFound.
func (s *AssignmentService) Delete(ctx context.Context, key models.AssignmentKey) (int64, error) {
	count, err := withRepository(ctx, s.pool, repository.NewAssignmentRepository,
		func(repo repository.AssignmentRepository) (int64, error) {
			return repo.Delete(key)
		})
	if err != nil {
		return 0, translate(err, ErrAssignmentNotFound, "delete assignment")
	}
	if count == 0 {
		return 0, ErrAssignmentNotFound
	}
	return count, nil
}
