package validators

import (
	"strings"

	"coachally/internal/errs"
	"coachally/internal/models"
)

const maxTaskTitleLength = 200

func ValidateCreateTask(task *models.CreateTaskRequestBody) []error {
	var errors []error
	if task == nil {
		errors = append(errors, errs.ErrInvalidRequest)
		return errors
	}
	if !validTaskTitle(task.Title) {
		errors = append(errors, errs.ErrInvalidTaskTitle)
	}
	return errors
}

func ValidateUpdateTask(task *models.UpdateTaskRequestBody) []error {
	var errors []error
	if task == nil {
		errors = append(errors, errs.ErrInvalidRequest)
		return errors
	}
	if task.Title != nil && !validTaskTitle(*task.Title) {
		errors = append(errors, errs.ErrInvalidTaskTitle)
	}
	return errors
}

func validTaskTitle(title string) bool {
	title = strings.TrimSpace(title)
	return title != "" && len(title) <= maxTaskTitleLength
}
