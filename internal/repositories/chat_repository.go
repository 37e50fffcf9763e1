package repositories

import (
	"time"

	"coachally/internal/errs"
	"coachally/internal/models"
	"coachally/internal/utils"

	"gorm.io/gorm"
)

type ChatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{
		db: db,
	}
}

// CreateConversation writes the conversation and its member rows in one
// transaction. Users must already contain every member, creator included.
func (chr *ChatRepository) CreateConversation(conversationData *models.CreateConversationRequestBody, users []uint) (*models.ConversationResponse, []error) {
	var errors []error

	conversation := models.Conversation{
		Type:  conversationData.Type,
		Title: conversationData.Title,
	}

	err := chr.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&conversation).Error; err != nil {
			return err
		}

		for _, userId := range users {
			err := tx.Create(&models.UserConversation{
				ConversationID: conversation.ID,
				UserID:         userId,
			}).Error
			if err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}

	conversationFromDB, errs := chr.GetConversationById(conversation.ID)
	if len(errs) > 0 {
		return nil, errs
	}

	return conversationFromDB, nil
}

func (chr *ChatRepository) GetUserConversations(userID uint, page, size int) (*models.ConversationListResponse, []error) {
	var errors []error
	var conversations []models.Conversation
	var conversationResponses []models.ConversationResponse
	var total int64

	transactionErr := chr.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Scopes(utils.Paginate(page, size)).
			Preload("Members").
			Where("id IN (SELECT conversation_id FROM user_conversations WHERE user_id = ?)", userID).
			Order("updated_at DESC").
			Find(&conversations).Error; err != nil {
			return err
		}

		if err := tx.
			Model(&models.Conversation{}).
			Where("id IN (SELECT conversation_id FROM user_conversations WHERE user_id = ?)", userID).
			Count(&total).Error; err != nil {
			return err
		}

		return nil
	})
	if transactionErr != nil {
		errors = append(errors, transactionErr)
		return nil, errors
	}

	for _, conversation := range conversations {
		lastMessage, _ := chr.GetConversationLastMessage(conversation.ID)
		unread, err := chr.GetConversationUnreadMessagesForUser(conversation.ID, userID)
		if err != nil {
			errors = append(errors, err)
			return nil, errors
		}
		conversationResponses = append(conversationResponses, conversation.ToConversationResponse(lastMessage, unread))
	}

	return &models.ConversationListResponse{
		Conversations: conversationResponses,
		Page:          page,
		Size:          size,
		Total:         total,
	}, nil
}

func (chr *ChatRepository) SaveMessage(message *models.Message) (*models.Message, []error) {
	var errors []error
	transactionErr := chr.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(message).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Conversation{}).
			Where("id = ?", message.ConversationID).
			Update("updated_at", time.Now()).Error; err != nil {
			return err
		}
		return nil
	})
	if transactionErr != nil {
		errors = append(errors, transactionErr)
		return nil, errors
	}
	return message, nil
}

func (chr *ChatRepository) GetConversationLastMessage(conversationID uint) (*models.Message, error) {
	var message models.Message
	if err := chr.db.
		Where("conversation_id = ?", conversationID).
		Last(&message).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

// GetConversationRecentMessages returns the newest limit messages in
// chronological order, for the coach history window.
func (chr *ChatRepository) GetConversationRecentMessages(conversationID uint, limit int) ([]models.Message, error) {
	var messages []models.Message
	if err := chr.db.
		Where("conversation_id = ?", conversationID).
		Order("created_at DESC").
		Limit(limit).
		Find(&messages).Error; err != nil {
		return nil, err
	}
	// reverse into oldest-first
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

func (chr *ChatRepository) GetMessagesByConversationId(conversationID uint, page, size int) (*models.MessageListResponse, []error) {
	var errors []error
	var messages []models.Message
	var total int64

	transactionErr := chr.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Scopes(utils.Paginate(page, size)).
			Where("conversation_id = ?", conversationID).
			Order("created_at DESC").
			Find(&messages).Error; err != nil {
			return err
		}

		if err := tx.
			Model(&models.Message{}).
			Where("conversation_id = ?", conversationID).
			Count(&total).Error; err != nil {
			return err
		}

		return nil
	})
	if transactionErr != nil {
		errors = append(errors, transactionErr)
		return nil, errors
	}

	return &models.MessageListResponse{
		Messages: messages,
		Page:     page,
		Size:     size,
		Total:    total,
	}, nil
}

func (chr *ChatRepository) CheckConversationExists(conversationID uint) bool {
	var count int64
	chr.db.Model(&models.Conversation{}).Where("id = ?", conversationID).Count(&count)
	return count > 0
}

func (chr *ChatRepository) CheckUserInConversation(userID, conversationID uint) bool {
	var count int64
	chr.db.Model(&models.UserConversation{}).Where("user_id = ? AND conversation_id = ?", userID, conversationID).Count(&count)
	return count > 0
}

func (chr *ChatRepository) SeenMessage(messageIds []uint, seenerId uint) []error {
	var errors []error
	// Sender is excluded so message owners cannot mark their own as seen
	result := chr.db.Model(&models.Message{}).Where("id IN ? AND seen_at IS NULL AND sender_id != ?", messageIds, seenerId).Update("seen_at", time.Now())
	if err := result.Error; err != nil {
		errors = append(errors, err)
		return errors
	}
	if result.RowsAffected == 0 {
		errors = append(errors, errs.ErrNoneOfMessagesSeen)
		return errors
	}
	return nil
}

func (chr *ChatRepository) GetConversationUnreadMessagesForUser(conversationID, userID uint) (int, error) {
	var count int = 0
	result := chr.db.Raw(
		"SELECT COUNT(*) FROM messages WHERE conversation_id = ? AND sender_id <> ? AND seen_at IS NULL",
		conversationID,
		userID,
	).Scan(&count)

	if err := result.Error; err != nil {
		return 0, err
	}

	return count, nil
}

func (chr *ChatRepository) FindConversationBetweenTwoUsers(userID1, userID2 uint) (uint, []error) {
	var errors []error

	rows, err := chr.db.Table("user_conversations AS uc1").
		Select("uc1.conversation_id").
		Joins("INNER JOIN user_conversations AS uc2 ON uc1.conversation_id = uc2.conversation_id").
		Joins("INNER JOIN conversations AS c ON c.id = uc1.conversation_id").
		Where("uc1.user_id = ? AND uc2.user_id = ? AND c.type = ?", userID1, userID2, "direct").
		Rows()

	if err != nil {
		errors = append(errors, err)
		return 0, errors
	}
	defer rows.Close()

	var conversationID uint
	for rows.Next() {
		if err := rows.Scan(&conversationID); err != nil {
			errors = append(errors, err)
			return 0, errors
		}
	}
	if err := rows.Err(); err != nil {
		errors = append(errors, err)
		return 0, errors
	}

	return conversationID, nil
}

func (chr *ChatRepository) GetConversationById(conversationID uint) (*models.ConversationResponse, []error) {
	var errors []error
	var conversation models.Conversation

	result := chr.db.
		Preload("Members").
		Where("id = ?", conversationID).
		First(&conversation)

	if err := result.Error; err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	if result.RowsAffected == 0 {
		errors = append(errors, errs.ErrConversationNotFound)
		return nil, errors
	}
	lastMessage, _ := chr.GetConversationLastMessage(conversation.ID)
	conversationResponse := conversation.ToConversationResponse(lastMessage, 0)

	return &conversationResponse, nil
}
