package models

import "time"

type CreateTaskRequestBody struct {
	Title   string     `json:"title"`
	Notes   *string    `json:"notes"`
	DueDate *time.Time `json:"due_date"`
}

type UpdateTaskRequestBody struct {
	Title   *string    `json:"title"`
	Notes   *string    `json:"notes"`
	DueDate *time.Time `json:"due_date"`
}

type SetTaskDoneRequestBody struct {
	Done bool `json:"done"`
}
