package validators

import (
	"coachally/internal/enums"
	"coachally/internal/errs"
	"coachally/internal/models"
)

// ValidateConversation checks a create request before the member rows get
// written. Users holds the peers, the creator is added by the service.
func ValidateConversation(conversation *models.CreateConversationRequestBody) []error {
	var errors []error
	if conversation == nil {
		errors = append(errors, errs.ErrInvalidConversation)
		return errors
	}

	switch conversation.Type {
	case enums.CONVERSATION_TYPE_DIRECT:
		if len(conversation.Users) != 1 {
			errors = append(errors, errs.ErrInvalidConversation)
		}
	case enums.CONVERSATION_TYPE_COACH:
		if len(conversation.Users) != 0 {
			errors = append(errors, errs.ErrInvalidConversation)
		}
	case enums.CONVERSATION_TYPE_GROUP:
		if len(conversation.Users) < 1 {
			errors = append(errors, errs.ErrInvalidConversation)
		}
	default:
		errors = append(errors, errs.ErrInvalidConversation)
	}
	return errors
}

func ValidateMessageContent(content string) []error {
	var errors []error
	if content == "" {
		errors = append(errors, errs.ErrEmptyMessageContent)
	}
	return errors
}
