package models

import (
	"sync"

	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
)

type SocketClient struct {
	Conn   *websocket.Conn
	UserId uint
}

// SocketHub tracks the live sockets of each conversation on this instance.
// Cross-instance delivery goes through Redis, the hub only handles local
// fan-out.
type SocketHub struct {
	// [conversation_id] => []*SocketClient
	Conversations map[uint][]*SocketClient
	Mu            sync.Mutex
	Redis         *redis.Client
}

func NewSocketHub(redis *redis.Client) *SocketHub {
	return &SocketHub{
		Conversations: make(map[uint][]*SocketClient),
		Redis:         redis,
	}
}

// Join registers a client in a conversation room. A user reconnecting
// replaces their previous socket.
func (hub *SocketHub) Join(conversationId uint, client *SocketClient) {
	hub.Mu.Lock()
	defer hub.Mu.Unlock()
	clients := hub.Conversations[conversationId]
	for i, existing := range clients {
		if existing.UserId == client.UserId {
			clients[i] = client
			return
		}
	}
	hub.Conversations[conversationId] = append(clients, client)
}

// Leave removes a user's client from a conversation room and drops the room
// once it is empty.
func (hub *SocketHub) Leave(conversationId, userId uint) {
	hub.Mu.Lock()
	defer hub.Mu.Unlock()
	clients := hub.Conversations[conversationId]
	for i, client := range clients {
		if client.UserId == userId {
			hub.Conversations[conversationId] = append(clients[:i], clients[i+1:]...)
			break
		}
	}
	if len(hub.Conversations[conversationId]) == 0 {
		delete(hub.Conversations, conversationId)
	}
}

// Clients returns a snapshot of the room members.
func (hub *SocketHub) Clients(conversationId uint) []*SocketClient {
	hub.Mu.Lock()
	defer hub.Mu.Unlock()
	clients := hub.Conversations[conversationId]
	snapshot := make([]*SocketClient, len(clients))
	copy(snapshot, clients)
	return snapshot
}
