package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"coachally/internal/enums"
	"coachally/internal/errs"
	"coachally/internal/models"
	redisModels "coachally/internal/models/redis"
	socketModels "coachally/internal/models/socket"
	"coachally/internal/msgs"
	"coachally/internal/services"
	"coachally/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
)

type SocketChatHandler struct {
	ctx         context.Context
	upgrader    websocket.Upgrader
	hub         *models.SocketHub
	chatService *services.ChatService
}

func NewSocketChatHandler(redis *redis.Client, ctx context.Context, chatService *services.ChatService) *SocketChatHandler {
	return &SocketChatHandler{
		ctx:         ctx,
		chatService: chatService,
		hub:         models.NewSocketHub(redis),
	}
}

func (sch *SocketChatHandler) HandleSocketChatRoute(ctx *gin.Context) {
	// Authenticate user
	jwtToken := ctx.Request.Header.Get("Authorization")
	if strings.Contains(jwtToken, "Bearer") {
		jwtToken = strings.Replace(jwtToken, "Bearer ", "", 1)
	}
	if jwtToken == "" {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrUnauthorized},
		})
		return
	}

	userInfo, err := utils.VerifyToken(jwtToken, utils.GetJwtKey())
	if err != nil || userInfo.ID == 0 {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrUnauthorized},
		})
		return
	}

	// Get conversation ID and validate if it exists
	conversationId := ctx.Query("conversationId")
	conversationIdInt, err := strconv.Atoi(conversationId)
	if err != nil || conversationIdInt == 0 {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrInvalidConversationId},
		})
		return
	}
	conversationIdUInt := uint(conversationIdInt)
	if !sch.chatService.CheckConversationExists(conversationIdUInt) {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrInvalidConversationId},
		})
		return
	}
	// Check if user is part of the conversation
	if !sch.chatService.CheckUserInConversation(userInfo.ID, conversationIdUInt) {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrNotConversationMember},
		})
		return
	}

	sch.HandleConnections(ctx, userInfo, conversationIdUInt)
}

func (sch *SocketChatHandler) StartSocket() {
	sch.InitializeSocketUpgrader()
	go sch.HandleRedisMessages()
}

func (sch *SocketChatHandler) InitializeSocketUpgrader() {
	sch.upgrader = websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}
}

func (sch *SocketChatHandler) HandleConnections(ctx *gin.Context, userInfo *models.Claims, conversationId uint) {
	ws, err := sch.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade connection: %v", err)
		return
	}
	defer func(ws *websocket.Conn) {
		err := ws.Close()
		if err != nil {
			log.Printf("Error closing connection: %v", err)
		}
	}(ws)

	ws.SetCloseHandler(func(code int, text string) error {
		sch.hub.Leave(conversationId, userInfo.ID)
		return nil
	})

	sch.hub.Join(conversationId, &models.SocketClient{
		Conn:   ws,
		UserId: userInfo.ID,
	})

	sch.handleIncomingMessagesWithEvent(ws, userInfo, conversationId)
}

func (sch *SocketChatHandler) handleIncomingMessagesWithEvent(ws *websocket.Conn, userInfo *models.Claims, conversationId uint) {
	for {
		var event socketModels.SocketEvent
		err := ws.ReadJSON(&event)
		if err != nil {
			log.Printf("Error reading json: %v", err)
			sch.hub.Leave(conversationId, userInfo.ID)
			break
		}

		event.ConversationID = conversationId

		switch event.Event {
		case enums.SOCKET_EVENT_SEND_MESSAGE:
			errs := sch.handleSendMessageEvent(event.Payload, enums.SOCKET_EVENT_SEND_MESSAGE, userInfo, conversationId)
			if len(errs) > 0 {
				log.Printf("handleIncomingMessagesWithEvent - Error while handling send message event: %v", errs)
			}
		case enums.SOCKET_EVENT_SEEN_MESSAGE:
			errs := sch.handleSeenMessageEvent(event.Payload, enums.SOCKET_EVENT_SEEN_MESSAGE, conversationId, userInfo.ID)
			if len(errs) > 0 {
				log.Printf("handleIncomingMessagesWithEvent - Error while handling seen message event: %v", errs)
			}
		case enums.SOCKET_EVENT_IS_TYPING:
			errs := sch.handleIsTypingEvent(event.Payload, enums.SOCKET_EVENT_IS_TYPING, conversationId)
			if len(errs) > 0 {
				log.Printf("handleIncomingMessagesWithEvent - Error while handling is typing event: %v", errs)
			}
		default:
			log.Printf("Unknown event: %v", event)
		}
	}
}

func (sch *SocketChatHandler) handleSendMessageEvent(payload json.RawMessage, event string, userInfo *models.Claims, conversationId uint) []error {
	var errors []error
	var messageRequest models.MessageRequest
	err := json.Unmarshal(payload, &messageRequest)
	if err != nil {
		errors = append(errors, errs.ErrInvalidRequest)
		return errors
	}

	// Save message in DB. The coach reply, when due, is triggered inside the
	// service and arrives on the same Redis channel later.
	message := &models.Message{
		ConversationID: conversationId,
		Content:        messageRequest.Content,
		SenderID:       userInfo.ID,
	}
	savedMessage, saveMsgErrs := sch.chatService.SaveMessage(message)
	if len(saveMsgErrs) > 0 {
		errors = append(errors, saveMsgErrs...)
		return errors
	}

	return sch.publishChatEvent(event, conversationId, savedMessage)
}

func (sch *SocketChatHandler) handleSeenMessageEvent(payload json.RawMessage, event string, conversationId, seenerId uint) []error {
	var errors []error
	var seenData socketModels.SeenMessagePayload
	err := json.Unmarshal(payload, &seenData)
	if err != nil {
		errors = append(errors, err)
		return errors
	}
	seenData.SeenerId = seenerId

	seenErrs := sch.chatService.SeenMessage(seenData.MessageIds, seenerId)
	if len(seenErrs) > 0 {
		errors = append(errors, seenErrs...)
		return errors
	}

	return sch.publishChatEvent(event, conversationId, seenData)
}

func (sch *SocketChatHandler) handleIsTypingEvent(payload json.RawMessage, event string, conversationId uint) []error {
	var errors []error
	var isTypingPayload socketModels.IsTypingPayload
	err := json.Unmarshal(payload, &isTypingPayload)
	if err != nil {
		errors = append(errors, errs.ErrInvalidRequest)
		return errors
	}

	return sch.publishChatEvent(event, conversationId, isTypingPayload)
}

func (sch *SocketChatHandler) publishChatEvent(event string, conversationId uint, payload any) []error {
	var errors []error
	redisEvent := redisModels.RedisPublishedMessage{
		Event:          event,
		ConversationID: conversationId,
		Payload:        payload,
	}
	jsonEvent, err := json.Marshal(redisEvent)
	if err != nil {
		errors = append(errors, err)
		return errors
	}
	if err := sch.PublishMessage(sch.hub.Redis, redisModels.REDIS_CHANNEL_CHAT, jsonEvent); err != nil {
		errors = append(errors, err)
		return errors
	}
	return nil
}

func (sch *SocketChatHandler) HandleRedisMessages() {
	ch := sch.SubscribeToChannel(sch.hub.Redis, redisModels.REDIS_CHANNEL_CHAT)
	for msg := range ch {
		var redisMessage redisModels.RedisPublishedMessage
		if err := json.Unmarshal([]byte(msg.Payload), &redisMessage); err != nil {
			log.Printf("Error unmarshalling message: %v", err)
			continue
		}
		sch.SendMessageToClient(redisMessage)
	}
}

func (sch *SocketChatHandler) SendMessageToClient(redisMessage redisModels.RedisPublishedMessage) {
	for _, client := range sch.hub.Clients(redisMessage.ConversationID) {
		if err := client.Conn.WriteJSON(redisMessage); err != nil {
			log.Printf("Error writing json: %v", err)
			if err := client.Conn.Close(); err != nil {
				log.Printf("Error closing connection: %v", err)
			}
			sch.hub.Leave(redisMessage.ConversationID, client.UserId)
		}
	}
}

func (sch *SocketChatHandler) PublishMessage(redis *redis.Client, channel string, message []byte) error {
	return redis.Publish(sch.ctx, channel, message).Err()
}

func (sch *SocketChatHandler) SubscribeToChannel(redis *redis.Client, channel string) <-chan *redis.Message {
	pubsub := redis.Subscribe(sch.ctx, channel)
	_, err := pubsub.Receive(sch.ctx)
	if err != nil {
		log.Fatalf("Could not subscribe to channel: %v", err)
	}
	return pubsub.Channel()
}

func (sch *SocketChatHandler) WaitForShutdown(httpServer *http.Server) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	if err := httpServer.Shutdown(sch.ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	// Close all WebSocket connections
	sch.hub.Mu.Lock()
	for conversationId, clients := range sch.hub.Conversations {
		for _, client := range clients {
			if err := client.Conn.Close(); err != nil {
				log.Printf("Error closing connection: %v", err)
			}
		}
		delete(sch.hub.Conversations, conversationId)
	}
	sch.hub.Mu.Unlock()

	log.Println("Server exiting")
}
