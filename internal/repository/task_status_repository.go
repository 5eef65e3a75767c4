package repository

import (
	"github.com/yukikurage/assignment-api/internal/models"
	"gorm.io/gorm"
)

// GormTaskStatusRepository is a GORM implementation of TaskStatusRepository
type GormTaskStatusRepository struct {
	db *gorm.DB
}

// NewTaskStatusRepository creates a TaskStatusRepository over db
func NewTaskStatusRepository(db *gorm.DB) TaskStatusRepository {
	return &GormTaskStatusRepository{db: db}
}

func (r *GormTaskStatusRepository) ReadAll() ([]models.TaskStatus, error) {
	statuses := []models.TaskStatus{}
	if err := r.db.Find(&statuses).Error; err != nil {
		return nil, err
	}
	return statuses, nil
}

func (r *GormTaskStatusRepository) Read(id int32) (*models.TaskStatus, error) {
	var status models.TaskStatus
	if err := r.db.Where("id = ?", id).Take(&status).Error; err != nil {
		return nil, err
	}
	return &status, nil
}

// Create inserts a status; the store assigns its id
func (r *GormTaskStatusRepository) Create(payload models.NewTaskStatus) (*models.TaskStatus, error) {
	status := models.TaskStatus{StatusName: payload.StatusName}
	if err := r.db.Create(&status).Error; err != nil {
		return nil, err
	}
	return &status, nil
}

// Update renames the status identified by id
func (r *GormTaskStatusRepository) Update(id int32, payload models.NewTaskStatus) (*models.TaskStatus, error) {
	result := r.db.Model(&models.TaskStatus{}).
		Where("id = ?", id).
		Update("status_name", payload.StatusName)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	return &models.TaskStatus{ID: id, StatusName: payload.StatusName}, nil
}

func (r *GormTaskStatusRepository) Delete(id int32) (int64, error) {
	result := r.db.Where("id = ?", id).Delete(&models.TaskStatus{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
