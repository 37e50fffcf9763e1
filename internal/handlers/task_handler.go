package handlers

import (
	"net/http"
	"strconv"

	"coachally/internal/errs"
	"coachally/internal/models"
	"coachally/internal/msgs"
	"coachally/internal/utils"

	"github.com/gin-gonic/gin"
)

// CreateTask godoc
// @Summary      Create a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Success      200  {object}  models.Response
// @Failure      400  {object}  models.Response
// @Router       /tasks [post]
func (rh *RestHandler) CreateTask(ctx *gin.Context) {
	userID := utils.GetUserIdFromContext(ctx)
	if userID < 1 {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrUnauthorized},
		})
		return
	}

	var createTaskRequest models.CreateTaskRequestBody
	if err := ctx.BindJSON(&createTaskRequest); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrInvalidRequestBody},
		})
		return
	}

	task, createErrs := rh.taskService.CreateTask(userID, &createTaskRequest)
	if len(createErrs) > 0 {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  createErrs,
		})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    task,
	})
}

func (rh *RestHandler) GetTasks(ctx *gin.Context) {
	pageInt, sizeInt := getPagination(ctx)

	userID := utils.GetUserIdFromContext(ctx)
	if userID < 1 {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrUnauthorized},
		})
		return
	}

	var done *bool
	if doneQuery := ctx.Query("done"); doneQuery != "" {
		doneValue, err := strconv.ParseBool(doneQuery)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
				Success: false,
				Message: msgs.MsgOperationFailed,
				Errors:  []error{errs.ErrInvalidParams},
			})
			return
		}
		done = &doneValue
	}

	tasks, getErrs := rh.taskService.GetUserTasks(userID, pageInt, sizeInt, done)
	if len(getErrs) > 0 {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  getErrs,
		})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    tasks,
	})
}

func (rh *RestHandler) GetTask(ctx *gin.Context) {
	userID, taskID, ok := rh.taskRequestIds(ctx)
	if !ok {
		return
	}

	task, getErrs := rh.taskService.GetTask(userID, taskID)
	if len(getErrs) > 0 {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  getErrs,
		})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    task,
	})
}

func (rh *RestHandler) UpdateTask(ctx *gin.Context) {
	userID, taskID, ok := rh.taskRequestIds(ctx)
	if !ok {
		return
	}

	var updateTaskRequest models.UpdateTaskRequestBody
	if err := ctx.BindJSON(&updateTaskRequest); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrInvalidRequestBody},
		})
		return
	}

	task, updateErrs := rh.taskService.UpdateTask(userID, taskID, &updateTaskRequest)
	if len(updateErrs) > 0 {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  updateErrs,
		})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    task,
	})
}

func (rh *RestHandler) SetTaskDone(ctx *gin.Context) {
	userID, taskID, ok := rh.taskRequestIds(ctx)
	if !ok {
		return
	}

	var setDoneRequest models.SetTaskDoneRequestBody
	if err := ctx.BindJSON(&setDoneRequest); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrInvalidRequestBody},
		})
		return
	}

	task, doneErrs := rh.taskService.SetTaskDone(userID, taskID, setDoneRequest.Done)
	if len(doneErrs) > 0 {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  doneErrs,
		})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    task,
	})
}

func (rh *RestHandler) DeleteTask(ctx *gin.Context) {
	userID, taskID, ok := rh.taskRequestIds(ctx)
	if !ok {
		return
	}

	if deleteErrs := rh.taskService.DeleteTask(userID, taskID); len(deleteErrs) > 0 {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  deleteErrs,
		})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgTaskDeleted,
	})
}

func (rh *RestHandler) taskRequestIds(ctx *gin.Context) (uint, uint, bool) {
	userID := utils.GetUserIdFromContext(ctx)
	if userID < 1 {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrUnauthorized},
		})
		return 0, 0, false
	}

	taskID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || taskID < 1 {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrInvalidParams},
		})
		return 0, 0, false
	}

	return userID, uint(taskID), true
}
