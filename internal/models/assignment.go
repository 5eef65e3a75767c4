package models

// Assignment links a user to a task together with the task's current status for that user.
// The row is keyed by (user_id, task_id).
type Assignment struct {
	UserID       int32 `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	TaskID       int32 `gorm:"primaryKey;autoIncrement:false" json:"task_id"`
	TaskStatusID int32 `gorm:"not null" json:"task_status_id"`
}

func (Assignment) TableName() string {
	return "user_tasks"
}

// Key returns the composite primary key of the assignment
func (a Assignment) Key() AssignmentKey {
	return AssignmentKey{UserID: a.UserID, TaskID: a.TaskID}
}

// AssignmentKey identifies a single assignment row
type AssignmentKey struct {
	UserID int32
	TaskID int32
}

// NewAssignment carries every column written on create and update.
// On update the key columns are written too, so a row can be re-keyed.
type NewAssignment struct {
	UserID       int32
	TaskID       int32
	TaskStatusID int32
}
