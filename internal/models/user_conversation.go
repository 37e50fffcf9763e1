package models

import (
	"time"

	"gorm.io/gorm"
)

// UserConversation records a user's membership in a conversation.
type UserConversation struct {
	gorm.Model
	ConversationID uint      `gorm:"index" json:"conversation_id"`
	UserID         uint      `gorm:"index" json:"user_id"`
	JoinedAt       time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"joined_at"`
}
