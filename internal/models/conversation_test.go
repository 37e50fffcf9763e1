package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestToConversationResponse(t *testing.T) {
	title := "Sprint prep"
	conversation := Conversation{
		Model: gorm.Model{ID: 5},
		Type:  "group",
		Title: &title,
		Members: []User{
			{Model: gorm.Model{ID: 1}, FirstName: "Jane", LastName: "Doe"},
			{Model: gorm.Model{ID: 9}, FirstName: "Coach", LastName: "Ally", IsCoach: true},
		},
	}
	lastMessage := &Message{SenderID: 1, Content: "see you tomorrow"}

	response := conversation.ToConversationResponse(lastMessage, 3)

	assert.Equal(t, uint(5), response.ID)
	assert.Equal(t, "group", response.Type)
	assert.Equal(t, &title, response.Title)
	assert.Len(t, response.Members, 2)
	assert.True(t, response.Members[1].IsCoach)
	assert.Equal(t, lastMessage, response.LastMessage)
	assert.Equal(t, 3, response.Unread)
}

func TestToUserResponseHidesCredentials(t *testing.T) {
	lastSeen := time.Now()
	user := User{
		Model:        gorm.Model{ID: 7},
		FirstName:    "Jane",
		LastName:     "Doe",
		Email:        "jane@example.com",
		PasswordHash: "secret-hash",
		IsOnline:     true,
		LastSeen:     &lastSeen,
	}

	response := user.ToUserResponse()
	assert.Equal(t, uint(7), response.ID)
	assert.True(t, response.IsOnline)
	assert.Equal(t, &lastSeen, response.LastSeen)

	profile := user.ToProfileResponse()
	assert.Equal(t, "jane@example.com", profile.Email)
}

func TestTaskIsDone(t *testing.T) {
	task := Task{Title: "Plan the week"}
	assert.False(t, task.IsDone())

	now := time.Now()
	task.DoneAt = &now
	assert.True(t, task.IsDone())
}
