package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"coachally/internal/enums"
	"coachally/internal/errs"
	"coachally/internal/models"
	redisModels "coachally/internal/models/redis"
	obsSocketModels "coachally/internal/models/socket/observing"
	"coachally/internal/msgs"
	"coachally/internal/services"
	"coachally/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
)

// SocketUserObservingHandler pushes presence transitions to observers. A
// connected socket marks its user online; observers pass the user ids they
// care about in the notifiers query param.
type SocketUserObservingHandler struct {
	ctx         context.Context
	upgrader    websocket.Upgrader
	hub         *obsSocketModels.SocketUserObservingHub
	authService *services.AuthenticationService
}

func NewSocketUserObservingHandler(
	redis *redis.Client,
	ctx context.Context,
	authService *services.AuthenticationService,
) *SocketUserObservingHandler {
	suoh := &SocketUserObservingHandler{
		ctx:         ctx,
		authService: authService,
		hub: &obsSocketModels.SocketUserObservingHub{
			Notifiers: make(map[uint][]*models.SocketClient),
			Redis:     redis,
		},
	}
	go suoh.handleRedisMessages()
	return suoh
}

func (suoh *SocketUserObservingHandler) HandleSocketUserObservingRoute(ctx *gin.Context) {
	userInfo, err := suoh.authorize(ctx)
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{err},
		})
		return
	}

	ws, err := suoh.upgradeHttpToWs(ctx)
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{err},
		})
		return
	}
	defer func(ws *websocket.Conn) {
		err := ws.Close()
		if err != nil {
			log.Printf("Error closing connection: %v", err)
		}
	}(ws)

	suoh.setOnlineStatus(userInfo.ID, true)

	notifiers, err := suoh.retrieveNotifiersFromQuery(ctx)
	if err == nil && len(notifiers) > 0 {
		suoh.handleSubscription(ws, userInfo, notifiers)
	}

	suoh.keepSocketAlive(ws, userInfo.ID)
}

func (suoh *SocketUserObservingHandler) authorize(ctx *gin.Context) (*models.Claims, error) {
	jwtToken := ctx.Request.Header.Get("Authorization")
	if strings.Contains(jwtToken, "Bearer") {
		jwtToken = strings.Replace(jwtToken, "Bearer ", "", 1)
	}
	if jwtToken == "" {
		return nil, errs.ErrUnauthorized
	}
	userInfo, err := utils.VerifyToken(jwtToken, utils.GetJwtKey())
	if err != nil {
		return nil, err
	}
	return userInfo, nil
}

func (suoh *SocketUserObservingHandler) keepSocketAlive(ws *websocket.Conn, userId uint) {
	for {
		var buf bytes.Buffer
		err := ws.ReadJSON(&buf)
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseAbnormalClosure, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				suoh.unsubscribe(userId)
				break
			}
			log.Printf("Error reading json from user %v: %v", userId, err)
			continue
		}
	}
}

func (suoh *SocketUserObservingHandler) setOnlineStatus(userId uint, status bool) {
	isOnline, lastSeen, err := suoh.authService.SetUserOnlineStatus(userId, status)
	if err != nil {
		log.Printf("failed to set user %v online status in db: %v", userId, err)
		return
	}

	if err := suoh.updateUserOnlineStatusInCache(userId, isOnline, *lastSeen); err != nil {
		log.Printf("Error while updating user %v online status on cache: %v", userId, err)
	} else if cached, lseen, err := suoh.fetchUserOnlineStatusFromCache(userId); err == nil {
		log.Printf("User %v online status from cache: %v - %v", userId, cached, lseen)
	}

	redisEvent := obsSocketModels.ObservingSocketEvent{
		Event: enums.SOCKET_EVENT_NOTIFY,
		Payload: obsSocketModels.ObservingSocketPayload{
			UserId:     userId,
			IsOnline:   isOnline,
			LastSeenAt: lastSeen,
		},
	}

	jsonEvent, err := json.Marshal(redisEvent)
	if err != nil {
		log.Println("failed to marshal jsonEvent: ", err)
		return
	}
	if err := suoh.publish(suoh.hub.Redis, redisModels.REDIS_CHANNEL_OBSERVE, jsonEvent); err != nil {
		log.Println("failed to publish message: ", err)
		return
	}
}

func (suoh *SocketUserObservingHandler) updateUserOnlineStatusInCache(userID uint, status bool, lastSeen time.Time) error {
	expirationDuration := time.Hour * 24

	statusKey := fmt.Sprintf("user_online_status_%v", userID)
	statusValue := strconv.FormatBool(status)
	if err := suoh.hub.Redis.Set(suoh.ctx, statusKey, statusValue, expirationDuration).Err(); err != nil {
		return err
	}

	lastSeenKey := fmt.Sprintf("user_last_seen_%v", userID)
	return suoh.hub.Redis.Set(suoh.ctx, lastSeenKey, lastSeen.Format("2006-01-02 15:04:05"), expirationDuration).Err()
}

func (suoh *SocketUserObservingHandler) fetchUserOnlineStatusFromCache(userID uint) (bool, *time.Time, error) {
	statusKey := fmt.Sprintf("user_online_status_%v", userID)
	statusStr, err := suoh.hub.Redis.Get(suoh.ctx, statusKey).Result()
	if err != nil {
		return false, nil, err
	}
	status := statusStr == "true"

	lastSeenKey := fmt.Sprintf("user_last_seen_%v", userID)
	lastSeenStr, err := suoh.hub.Redis.Get(suoh.ctx, lastSeenKey).Result()
	if err != nil {
		return false, nil, err
	}
	lastSeen, err := utils.StrToTime(lastSeenStr)
	if err != nil {
		return false, nil, err
	}

	return status, lastSeen, nil
}

func (suoh *SocketUserObservingHandler) retrieveNotifiersFromQuery(ctx *gin.Context) ([]uint, error) {
	notifiersQuery := ctx.Query("notifiers")
	if notifiersQuery == "" {
		return []uint{}, errs.ErrInvalidRequest
	}
	strNotifiers := strings.Split(notifiersQuery, ",")
	var notifiers []uint
	for _, strNum := range strNotifiers {
		num, err := strconv.Atoi(strNum)
		if err != nil {
			return []uint{}, errs.ErrInvalidRequest
		}
		notifiers = append(notifiers, uint(num))
	}
	return notifiers, nil
}

func (suoh *SocketUserObservingHandler) upgradeHttpToWs(ctx *gin.Context) (*websocket.Conn, error) {
	suoh.upgrader = websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}
	ws, err := suoh.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		return nil, err
	}
	return ws, nil
}

func (suoh *SocketUserObservingHandler) handleSubscription(ws *websocket.Conn, userInfo *models.Claims, notifiers []uint) {
	observer := &models.SocketClient{
		Conn:   ws,
		UserId: userInfo.ID,
	}
	suoh.subscribe(observer, notifiers)
	ws.SetCloseHandler(func(code int, text string) error {
		suoh.unsubscribe(observer.UserId)
		return nil
	})
}

func (suoh *SocketUserObservingHandler) subscribe(observer *models.SocketClient, notifiersToObserve []uint) {
	suoh.hub.Mu.Lock()
	defer suoh.hub.Mu.Unlock()
	for _, notifier := range notifiersToObserve {
		if suoh.observing(notifier, observer.UserId) {
			continue
		}
		if err := suoh.saveObserverNotifiersInCache(observer.UserId, notifier); err != nil {
			log.Printf("Could not add the notifier to observer notifiers in cache: %v", err)
			return
		}
		suoh.hub.Notifiers[notifier] = append(suoh.hub.Notifiers[notifier], observer)
	}
}

func (suoh *SocketUserObservingHandler) observing(notifier, observerId uint) bool {
	for _, client := range suoh.hub.Notifiers[notifier] {
		if client.UserId == observerId {
			return true
		}
	}
	return false
}

func (suoh *SocketUserObservingHandler) unsubscribe(observer uint) {
	suoh.hub.Mu.Lock()
	defer suoh.hub.Mu.Unlock()

	suoh.setOnlineStatus(observer, false)

	notifiers, err := suoh.fetchObserverNotifiersFromCache(observer)
	if err != nil {
		log.Printf("Could not fetch observer notifiers from cache: %v", err)
		return
	}
	if len(notifiers) == 0 {
		return
	}

	if err := suoh.hub.Redis.Del(suoh.ctx, fmt.Sprintf("observer_notifiers_%d", observer)).Err(); err != nil {
		log.Printf("Could not remove observer from redis cache: %v", err)
		return
	}

	for _, notifier := range notifiers {
		for i, client := range suoh.hub.Notifiers[notifier] {
			if client.UserId == observer {
				suoh.hub.Notifiers[notifier] = append(suoh.hub.Notifiers[notifier][:i], suoh.hub.Notifiers[notifier][i+1:]...)
				break
			}
		}
		if len(suoh.hub.Notifiers[notifier]) == 0 {
			delete(suoh.hub.Notifiers, notifier)
		}
	}
}

func (suoh *SocketUserObservingHandler) saveObserverNotifiersInCache(observer uint, notifier uint) error {
	key := fmt.Sprintf("observer_notifiers_%d", observer)
	return suoh.hub.Redis.RPush(suoh.ctx, key, fmt.Sprintf("%d", notifier)).Err()
}

func (suoh *SocketUserObservingHandler) fetchObserverNotifiersFromCache(observer uint) ([]uint, error) {
	key := fmt.Sprintf("observer_notifiers_%d", observer)
	value, err := suoh.hub.Redis.LRange(suoh.ctx, key, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	notifiers := make([]uint, len(value))
	for i, str := range value {
		notifier, err := strconv.ParseUint(str, 10, 32)
		if err != nil {
			return nil, err
		}
		notifiers[i] = uint(notifier)
	}
	return notifiers, nil
}

func (suoh *SocketUserObservingHandler) handleRedisMessages() {
	ch := suoh.subscribeToChannel(suoh.hub.Redis, redisModels.REDIS_CHANNEL_OBSERVE)
	for msg := range ch {
		var redisMessage obsSocketModels.ObservingSocketEvent
		if err := json.Unmarshal([]byte(msg.Payload), &redisMessage); err != nil {
			log.Printf("Error unmarshalling message: %v", err)
			continue
		}
		suoh.send(redisMessage)
	}
}

func (suoh *SocketUserObservingHandler) send(redisMessage obsSocketModels.ObservingSocketEvent) {
	suoh.hub.Mu.Lock()
	defer suoh.hub.Mu.Unlock()
	observers, ok := suoh.hub.Notifiers[redisMessage.Payload.UserId]
	if !ok {
		return
	}
	for _, client := range observers {
		if err := client.Conn.WriteJSON(redisMessage); err != nil {
			log.Printf("Error writing json: %v", err)
			if err := client.Conn.Close(); err != nil {
				log.Printf("Error closing connection: %v", err)
			}
		}
	}
}

func (suoh *SocketUserObservingHandler) publish(redis *redis.Client, channel string, message []byte) error {
	return redis.Publish(suoh.ctx, channel, message).Err()
}

func (suoh *SocketUserObservingHandler) subscribeToChannel(redis *redis.Client, channel string) <-chan *redis.Message {
	pubsub := redis.Subscribe(suoh.ctx, channel)
	_, err := pubsub.Receive(suoh.ctx)
	if err != nil {
		log.Fatalf("Could not subscribe to channel: %v", err)
	}
	return pubsub.Channel()
}
