package dto

import "github.com/yukikurage/assignment-api/internal/models"

// AssignmentRequest is the body of POST /assignments and PUT /assignments/:user_id/:task_id.
// All three fields must be present; zero is a valid value.
type AssignmentRequest struct {
	UserID       *int32 `json:"user_id" binding:"required"`
	TaskID       *int32 `json:"task_id" binding:"required"`
	TaskStatusID *int32 `json:"task_status_id" binding:"required"`
}

// ToNewAssignment converts the request into the payload written to user_tasks
func (r AssignmentRequest) ToNewAssignment() models.NewAssignment {
	return models.NewAssignment{
		UserID:       *r.UserID,
		TaskID:       *r.TaskID,
		TaskStatusID: *r.TaskStatusID,
	}
}
