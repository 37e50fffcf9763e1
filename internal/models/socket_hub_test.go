package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSocketHubJoinAndClients(t *testing.T) {
	hub := NewSocketHub(nil)

	hub.Join(1, &SocketClient{UserId: 10})
	hub.Join(1, &SocketClient{UserId: 11})
	hub.Join(2, &SocketClient{UserId: 10})

	assert.Len(t, hub.Clients(1), 2)
	assert.Len(t, hub.Clients(2), 1)
	assert.Empty(t, hub.Clients(3))
}

func TestSocketHubRejoinReplacesClient(t *testing.T) {
	hub := NewSocketHub(nil)

	first := &SocketClient{UserId: 10}
	second := &SocketClient{UserId: 10}
	hub.Join(1, first)
	hub.Join(1, second)

	clients := hub.Clients(1)
	assert.Len(t, clients, 1)
	assert.Same(t, second, clients[0])
}

func TestSocketHubLeave(t *testing.T) {
	hub := NewSocketHub(nil)

	hub.Join(1, &SocketClient{UserId: 10})
	hub.Join(1, &SocketClient{UserId: 11})

	hub.Leave(1, 10)
	clients := hub.Clients(1)
	assert.Len(t, clients, 1)
	assert.Equal(t, uint(11), clients[0].UserId)

	// last member leaving drops the room
	hub.Leave(1, 11)
	_, exists := hub.Conversations[1]
	assert.False(t, exists)

	// leaving an unknown room is a no-op
	hub.Leave(42, 10)
}
