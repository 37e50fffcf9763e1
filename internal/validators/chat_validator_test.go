package validators

import (
	"testing"

	"coachally/internal/errs"
	"coachally/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestValidateConversationDirect(t *testing.T) {
	body := &models.CreateConversationRequestBody{
		Type:  "direct",
		Users: []uint{2},
	}
	assert.Empty(t, ValidateConversation(body))

	body.Users = []uint{2, 3}
	assert.NotEmpty(t, ValidateConversation(body))

	body.Users = nil
	assert.NotEmpty(t, ValidateConversation(body))
}

func TestValidateConversationCoach(t *testing.T) {
	body := &models.CreateConversationRequestBody{Type: "coach"}
	assert.Empty(t, ValidateConversation(body))

	// the coach member is implicit, peers are not allowed
	body.Users = []uint{2}
	assert.NotEmpty(t, ValidateConversation(body))
}

func TestValidateConversationGroup(t *testing.T) {
	body := &models.CreateConversationRequestBody{
		Type:  "group",
		Users: []uint{2, 3, 4},
	}
	assert.Empty(t, ValidateConversation(body))

	body.Users = nil
	assert.NotEmpty(t, ValidateConversation(body))
}

func TestValidateConversationUnknownType(t *testing.T) {
	body := &models.CreateConversationRequestBody{Type: "broadcast"}
	assert.Equal(t, []error{errs.ErrInvalidConversation}, ValidateConversation(body))
}

func TestValidateMessageContent(t *testing.T) {
	assert.Empty(t, ValidateMessageContent("hello"))
	assert.Equal(t, []error{errs.ErrEmptyMessageContent}, ValidateMessageContent(""))
}
