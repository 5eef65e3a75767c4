package dto

import "github.com/yukikurage/assignment-api/internal/models"

// TaskStatusRequest is the body of POST /tasks_statuses and PUT /tasks_statuses/:id
type TaskStatusRequest struct {
	StatusName *string `json:"status_name" binding:"required"`
}

// ToNewTaskStatus converts the request into the payload written to task_statuses
func (r TaskStatusRequest) ToNewTaskStatus() models.NewTaskStatus {
	return models.NewTaskStatus{StatusName: *r.StatusName}
}
