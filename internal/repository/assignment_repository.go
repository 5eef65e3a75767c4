package repository

import (
	"github.com/yukikurage/assignment-api/internal/models"
	"gorm.io/gorm"
)

// GormAssignmentRepository is a GORM implementation of AssignmentRepository
type GormAssignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository creates an AssignmentRepository over db, usually a borrowed pool connection
func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &GormAssignmentRepository{db: db}
}

// ReadAll lists every assignment
func (r *GormAssignmentRepository) ReadAll() ([]models.Assignment, error) {
	assignments := []models.Assignment{}
	if err := r.db.Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

// Read finds an assignment by its composite key
func (r *GormAssignmentRepository) Read(key models.AssignmentKey) (*models.Assignment, error) {
	var assignment models.Assignment
	if err := r.db.Where("user_id = ? AND task_id = ?", key.UserID, key.TaskID).
		Take(&assignment).Error; err != nil {
		return nil, err
	}
	return &assignment, nil
}

// Create inserts a new assignment
func (r *GormAssignmentRepository) Create(payload models.NewAssignment) (*models.Assignment, error) {
	assignment := models.Assignment{
		UserID:       payload.UserID,
		TaskID:       payload.TaskID,
		TaskStatusID: payload.TaskStatusID,
	}
	if err := r.db.Create(&assignment).Error; err != nil {
		return nil, err
	}
	return &assignment, nil
}

// Update writes all three columns of payload, key columns included, to the row identified by key
func (r *GormAssignmentRepository) Update(key models.AssignmentKey, payload models.NewAssignment) (*models.Assignment, error) {
	result := r.db.Model(&models.Assignment{}).
		Where("user_id = ? AND task_id = ?", key.UserID, key.TaskID).
		Updates(map[string]interface{}{
			"user_id":        payload.UserID,
			"task_id":        payload.TaskID,
			"task_status_id": payload.TaskStatusID,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	return &models.Assignment{
		UserID:       payload.UserID,
		TaskID:       payload.TaskID,
		TaskStatusID: payload.TaskStatusID,
	}, nil
}

// Delete hard deletes the assignment identified by key
func (r *GormAssignmentRepository) Delete(key models.AssignmentKey) (int64, error) {
	result := r.db.Where("user_id = ? AND task_id = ?", key.UserID, key.TaskID).
		Delete(&models.Assignment{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
