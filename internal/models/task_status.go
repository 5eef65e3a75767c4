package models

// TaskStatus is a named state a task can be in
type TaskStatus struct {
	ID         int32  `gorm:"primaryKey;autoIncrement" json:"id"`
	StatusName string `gorm:"type:varchar(255);not null" json:"status_name"`
}

func (TaskStatus) TableName() string {
	return "task_statuses"
}

type NewTaskStatus struct {
	StatusName string
}
