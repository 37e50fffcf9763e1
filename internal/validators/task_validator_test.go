package validators

import (
	"strings"
	"testing"

	"coachally/internal/errs"
	"coachally/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestValidateCreateTask(t *testing.T) {
	assert.Empty(t, ValidateCreateTask(&models.CreateTaskRequestBody{Title: "Morning run"}))

	assert.Equal(t,
		[]error{errs.ErrInvalidTaskTitle},
		ValidateCreateTask(&models.CreateTaskRequestBody{Title: "   "}))

	longTitle := strings.Repeat("x", 201)
	assert.Equal(t,
		[]error{errs.ErrInvalidTaskTitle},
		ValidateCreateTask(&models.CreateTaskRequestBody{Title: longTitle}))
}

func TestValidateUpdateTask(t *testing.T) {
	// nil title means "keep the current one"
	assert.Empty(t, ValidateUpdateTask(&models.UpdateTaskRequestBody{}))

	title := "Read a chapter"
	assert.Empty(t, ValidateUpdateTask(&models.UpdateTaskRequestBody{Title: &title}))

	empty := ""
	assert.Equal(t,
		[]error{errs.ErrInvalidTaskTitle},
		ValidateUpdateTask(&models.UpdateTaskRequestBody{Title: &empty}))
}
