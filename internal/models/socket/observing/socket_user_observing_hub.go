package observing

import (
	"sync"

	"coachally/internal/models"

	"github.com/redis/go-redis/v9"
)

type SocketUserObservingHub struct {
	// [user_id] => observers subscribed to that user's presence
	Notifiers map[uint][]*models.SocketClient
	Mu        sync.Mutex
	Redis     *redis.Client
}
