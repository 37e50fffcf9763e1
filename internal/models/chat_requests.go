package models

type CreateConversationRequestBody struct {
	Type  string  `json:"type"`
	Title *string `json:"title"`
	Users []uint  `json:"users"`
}

type MessageRequest struct {
	ConversationID uint   `json:"conversation_id"`
	Content        string `json:"content"`
}
