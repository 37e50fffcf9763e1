package models

import (
	"time"

	"gorm.io/gorm"
)

// Task is an item on a user's coaching plan. DoneAt doubles as the done flag.
type Task struct {
	gorm.Model
	UserID  uint       `gorm:"index;not null" json:"user_id"`
	Title   string     `gorm:"not null" json:"title"`
	Notes   *string    `json:"notes"`
	DueDate *time.Time `json:"due_date"`
	DoneAt  *time.Time `json:"done_at"`
}

func (task *Task) IsDone() bool {
	return task.DoneAt != nil
}
