package repositories

import (
	"coachally/internal/errs"
	"coachally/internal/models"
	"coachally/internal/utils"

	"gorm.io/gorm"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{
		db: db,
	}
}

func (tr *TaskRepository) CreateTask(task *models.Task) (*models.Task, []error) {
	var errors []error
	result := tr.db.Create(task)
	if result.Error != nil {
		errors = append(errors, result.Error)
		return nil, errors
	}
	return task, nil
}

// GetUserTasks lists the owner's tasks. done filters on completion when set.
func (tr *TaskRepository) GetUserTasks(userID uint, page, size int, done *bool) (*models.TaskListResponse, []error) {
	var errors []error
	var tasks []models.Task
	var total int64

	query := tr.db.Model(&models.Task{}).Where("user_id = ?", userID)
	if done != nil {
		if *done {
			query = query.Where("done_at IS NOT NULL")
		} else {
			query = query.Where("done_at IS NULL")
		}
	}

	transactionErr := tr.db.Transaction(func(tx *gorm.DB) error {
		if err := query.Session(&gorm.Session{}).
			Scopes(utils.Paginate(page, size)).
			Order("created_at DESC").
			Find(&tasks).Error; err != nil {
			return err
		}
		if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
			return err
		}
		return nil
	})
	if transactionErr != nil {
		errors = append(errors, transactionErr)
		return nil, errors
	}

	return &models.TaskListResponse{
		Tasks: tasks,
		Page:  page,
		Size:  size,
		Total: total,
	}, nil
}

func (tr *TaskRepository) GetTaskById(taskID uint) (*models.Task, []error) {
	var errors []error
	var task models.Task
	result := tr.db.Where("id = ?", taskID).First(&task)
	if result.Error != nil {
		errors = append(errors, errs.ErrTaskNotFound)
		return nil, errors
	}
	return &task, nil
}

func (tr *TaskRepository) UpdateTask(task *models.Task) (*models.Task, []error) {
	var errors []error
	if err := tr.db.Save(task).Error; err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	return task, nil
}

func (tr *TaskRepository) DeleteTask(taskID uint) []error {
	var errors []error
	result := tr.db.Delete(&models.Task{}, taskID)
	if result.Error != nil {
		errors = append(errors, result.Error)
		return errors
	}
	if result.RowsAffected == 0 {
		errors = append(errors, errs.ErrTaskNotFound)
		return errors
	}
	return nil
}
