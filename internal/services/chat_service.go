package services

import (
	"slices"

	"coachally/internal/enums"
	"coachally/internal/errs"
	"coachally/internal/models"
	"coachally/internal/repositories"
	"coachally/internal/validators"
)

type ChatService struct {
	chatRepo     *repositories.ChatRepository
	coachService *CoachService
}

func NewChatService(chatRepo *repositories.ChatRepository, coachService *CoachService) *ChatService {
	return &ChatService{
		chatRepo:     chatRepo,
		coachService: coachService,
	}
}

// CreateConversation resolves the member set before hitting the repository:
// the creator is always a member, coach conversations get the coach user, and
// direct conversations dedupe to an existing one between the same pair.
func (cs *ChatService) CreateConversation(creatorID uint, conversation *models.CreateConversationRequestBody) (*models.ConversationResponse, []error) {
	if validationErrs := validators.ValidateConversation(conversation); len(validationErrs) > 0 {
		return nil, validationErrs
	}

	users := []uint{creatorID}
	for _, userId := range conversation.Users {
		if !slices.Contains(users, userId) {
			users = append(users, userId)
		}
	}

	switch conversation.Type {
	case enums.CONVERSATION_TYPE_DIRECT:
		if len(users) != 2 {
			return nil, []error{errs.ErrInvalidConversation}
		}
		existingID, findErrs := cs.chatRepo.FindConversationBetweenTwoUsers(users[0], users[1])
		if len(findErrs) > 0 {
			return nil, findErrs
		}
		if existingID != 0 {
			return cs.chatRepo.GetConversationById(existingID)
		}
	case enums.CONVERSATION_TYPE_COACH:
		coachID := cs.coachService.CoachID()
		if coachID == 0 {
			return nil, []error{errs.ErrCoachUnavailable}
		}
		users = append(users, coachID)
	}

	return cs.chatRepo.CreateConversation(conversation, users)
}

func (cs *ChatService) GetUserConversations(userID uint, page, size int) (*models.ConversationListResponse, []error) {
	return cs.chatRepo.GetUserConversations(userID, page, size)
}

func (cs *ChatService) GetConversationById(userID, conversationID uint) (*models.ConversationResponse, []error) {
	if !cs.chatRepo.CheckUserInConversation(userID, conversationID) {
		return nil, []error{errs.ErrNotConversationMember}
	}
	return cs.chatRepo.GetConversationById(conversationID)
}

func (cs *ChatService) GetMessagesByConversationId(userID, conversationID uint, page, size int) (*models.MessageListResponse, []error) {
	if !cs.chatRepo.CheckUserInConversation(userID, conversationID) {
		return nil, []error{errs.ErrNotConversationMember}
	}
	return cs.chatRepo.GetMessagesByConversationId(conversationID, page, size)
}

// SaveMessage persists the message and, when the coach is a member of the
// conversation, kicks off a reply in the background.
func (cs *ChatService) SaveMessage(message *models.Message) (*models.Message, []error) {
	if validationErrs := validators.ValidateMessageContent(message.Content); len(validationErrs) > 0 {
		return nil, validationErrs
	}
	if !cs.chatRepo.CheckConversationExists(message.ConversationID) {
		return nil, []error{errs.ErrConversationNotFound}
	}
	if !cs.chatRepo.CheckUserInConversation(message.SenderID, message.ConversationID) {
		return nil, []error{errs.ErrNotConversationMember}
	}

	saved, saveErrs := cs.chatRepo.SaveMessage(message)
	if len(saveErrs) > 0 {
		return nil, saveErrs
	}

	coachID := cs.coachService.CoachID()
	if coachID != 0 && message.SenderID != coachID &&
		cs.chatRepo.CheckUserInConversation(coachID, message.ConversationID) {
		go cs.coachService.Reply(message.ConversationID)
	}

	return saved, nil
}

func (cs *ChatService) SeenMessage(messageIds []uint, seenerId uint) []error {
	return cs.chatRepo.SeenMessage(messageIds, seenerId)
}

func (cs *ChatService) CheckConversationExists(conversationID uint) bool {
	return cs.chatRepo.CheckConversationExists(conversationID)
}

func (cs *ChatService) CheckUserInConversation(userID, conversationID uint) bool {
	return cs.chatRepo.CheckUserInConversation(userID, conversationID)
}
