package services

import (
	"time"

	"coachally/internal/errs"
	"coachally/internal/models"
	"coachally/internal/repositories"
	"coachally/internal/validators"
)

type TaskService struct {
	taskRepo *repositories.TaskRepository
}

func NewTaskService(taskRepo *repositories.TaskRepository) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
	}
}

func (ts *TaskService) CreateTask(userID uint, request *models.CreateTaskRequestBody) (*models.Task, []error) {
	if validationErrs := validators.ValidateCreateTask(request); len(validationErrs) > 0 {
		return nil, validationErrs
	}
	task := &models.Task{
		UserID:  userID,
		Title:   request.Title,
		Notes:   request.Notes,
		DueDate: request.DueDate,
	}
	return ts.taskRepo.CreateTask(task)
}

func (ts *TaskService) GetUserTasks(userID uint, page, size int, done *bool) (*models.TaskListResponse, []error) {
	return ts.taskRepo.GetUserTasks(userID, page, size, done)
}

func (ts *TaskService) GetTask(userID, taskID uint) (*models.Task, []error) {
	return ts.getOwnedTask(userID, taskID)
}

func (ts *TaskService) UpdateTask(userID, taskID uint, request *models.UpdateTaskRequestBody) (*models.Task, []error) {
	if validationErrs := validators.ValidateUpdateTask(request); len(validationErrs) > 0 {
		return nil, validationErrs
	}
	task, getErrs := ts.getOwnedTask(userID, taskID)
	if len(getErrs) > 0 {
		return nil, getErrs
	}
	if request.Title != nil {
		task.Title = *request.Title
	}
	if request.Notes != nil {
		task.Notes = request.Notes
	}
	if request.DueDate != nil {
		task.DueDate = request.DueDate
	}
	return ts.taskRepo.UpdateTask(task)
}

// SetTaskDone toggles completion. Marking an already done task done again
// keeps the original completion time.
func (ts *TaskService) SetTaskDone(userID, taskID uint, done bool) (*models.Task, []error) {
	task, getErrs := ts.getOwnedTask(userID, taskID)
	if len(getErrs) > 0 {
		return nil, getErrs
	}
	if done && task.DoneAt == nil {
		now := time.Now()
		task.DoneAt = &now
	} else if !done {
		task.DoneAt = nil
	}
	return ts.taskRepo.UpdateTask(task)
}

func (ts *TaskService) DeleteTask(userID, taskID uint) []error {
	if _, getErrs := ts.getOwnedTask(userID, taskID); len(getErrs) > 0 {
		return getErrs
	}
	return ts.taskRepo.DeleteTask(taskID)
}

func (ts *TaskService) getOwnedTask(userID, taskID uint) (*models.Task, []error) {
	task, getErrs := ts.taskRepo.GetTaskById(taskID)
	if len(getErrs) > 0 {
		return nil, getErrs
	}
	if task.UserID != userID {
		return nil, []error{errs.ErrNotTaskOwner}
	}
	return task, nil
}
