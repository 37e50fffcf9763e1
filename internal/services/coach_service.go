package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"coachally/configs"
	"coachally/internal/enums"
	"coachally/internal/interfaces"
	"coachally/internal/models"
	redisModels "coachally/internal/models/redis"
	"coachally/internal/repositories"

	"github.com/redis/go-redis/v9"
	"github.com/sashabaranov/go-openai"
)

const completionTimeout = 60 * time.Second

// CoachService generates the AI coach's messages. The coach is a regular user
// row; this service speaks for it by forwarding a window of conversation
// history to the chat-completion API and persisting the answer as an ordinary
// message.
type CoachService struct {
	chatRepo      *repositories.ChatRepository
	completer     interfaces.ChatCompleter
	redis         *redis.Client
	ctx           context.Context
	coachID       uint
	model         string
	persona       string
	historyWindow int
}

func NewCoachService(
	chatRepo *repositories.ChatRepository,
	completer interfaces.ChatCompleter,
	redis *redis.Client,
	ctx context.Context,
	config *configs.Config,
	coachID uint,
) *CoachService {
	return &CoachService{
		chatRepo:      chatRepo,
		completer:     completer,
		redis:         redis,
		ctx:           ctx,
		coachID:       coachID,
		model:         config.Viper.GetString("coach.model"),
		persona:       config.Viper.GetString("coach.persona"),
		historyWindow: config.Viper.GetInt("coach.history_window"),
	}
}

func (cos *CoachService) CoachID() uint {
	return cos.coachID
}

// Reply generates and delivers the coach's answer for a conversation. A
// failure is logged and dropped, the conversation stays usable and the client
// can resend.
func (cos *CoachService) Reply(conversationID uint) {
	history, err := cos.chatRepo.GetConversationRecentMessages(conversationID, cos.historyWindow)
	if err != nil {
		log.Printf("coach: failed to load history for conversation %v: %v", conversationID, err)
		return
	}
	if len(history) == 0 || history[len(history)-1].SenderID == cos.coachID {
		// nothing to answer, or the coach already had the last word
		return
	}

	ctx, cancel := context.WithTimeout(cos.ctx, completionTimeout)
	defer cancel()

	resp, err := cos.completer.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    cos.model,
		Messages: BuildCompletionMessages(history, cos.coachID, cos.persona),
	})
	if err != nil {
		log.Printf("coach: completion failed for conversation %v: %v", conversationID, err)
		return
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		log.Printf("coach: completion returned no choices for conversation %v", conversationID)
		return
	}

	message := &models.Message{
		ConversationID: conversationID,
		SenderID:       cos.coachID,
		Content:        resp.Choices[0].Message.Content,
	}
	savedMessage, saveErrs := cos.chatRepo.SaveMessage(message)
	if len(saveErrs) > 0 {
		log.Printf("coach: failed to save reply for conversation %v: %v", conversationID, saveErrs)
		return
	}

	cos.broadcast(conversationID, savedMessage)
}

// BuildCompletionMessages maps a history window onto completion roles: the
// persona prompt first, then coach messages as assistant and everyone else as
// user, oldest first.
func BuildCompletionMessages(history []models.Message, coachID uint, persona string) []openai.ChatCompletionMessage {
	messages := make([]openai.ChatCompletionMessage, 0, len(history)+1)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: persona,
	})
	for _, msg := range history {
		role := openai.ChatMessageRoleUser
		if msg.SenderID == coachID {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    role,
			Content: msg.Content,
		})
	}
	return messages
}

func (cos *CoachService) broadcast(conversationID uint, message *models.Message) {
	redisEvent := redisModels.RedisPublishedMessage{
		Event:          enums.SOCKET_EVENT_SEND_MESSAGE,
		ConversationID: conversationID,
		Payload:        message,
	}
	jsonEvent, err := json.Marshal(redisEvent)
	if err != nil {
		log.Printf("coach: failed to marshal reply event: %v", err)
		return
	}
	if err := cos.redis.Publish(cos.ctx, redisModels.REDIS_CHANNEL_CHAT, jsonEvent).Err(); err != nil {
		log.Printf("coach: failed to publish reply for conversation %v: %v", conversationID, err)
	}
}
