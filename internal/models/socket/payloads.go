package models

type IsTypingPayload struct {
	UserId   uint `json:"user_id"`
	IsTyping bool `json:"is_typing"`
}

type SeenMessagePayload struct {
	MessageIds []uint `json:"message_ids"`
	SeenerId   uint   `json:"seener_id"`
}
