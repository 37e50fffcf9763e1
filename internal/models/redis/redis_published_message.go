package models

const (
	REDIS_CHANNEL_CHAT    = "coach_ally_chat"
	REDIS_CHANNEL_OBSERVE = "coach_ally_observe"
)

type RedisPublishedMessage struct {
	Event          string `json:"event"`
	ConversationID uint   `json:"conversation_id"`
	Payload        any    `json:"payload"`
}
