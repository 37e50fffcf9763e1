package services

import (
	"testing"

	"coachally/internal/models"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCompletionMessages(t *testing.T) {
	const coachID = uint(9)
	history := []models.Message{
		{SenderID: 1, Content: "I keep skipping my morning runs"},
		{SenderID: coachID, Content: "What usually gets in the way?"},
		{SenderID: 1, Content: "I stay up too late"},
	}

	messages := BuildCompletionMessages(history, coachID, "You are Coach Ally.")
	require.Len(t, messages, 4)

	assert.Equal(t, openai.ChatMessageRoleSystem, messages[0].Role)
	assert.Equal(t, "You are Coach Ally.", messages[0].Content)

	assert.Equal(t, openai.ChatMessageRoleUser, messages[1].Role)
	assert.Equal(t, "I keep skipping my morning runs", messages[1].Content)

	assert.Equal(t, openai.ChatMessageRoleAssistant, messages[2].Role)
	assert.Equal(t, "What usually gets in the way?", messages[2].Content)

	assert.Equal(t, openai.ChatMessageRoleUser, messages[3].Role)
	assert.Equal(t, "I stay up too late", messages[3].Content)
}

func TestBuildCompletionMessagesEmptyHistory(t *testing.T) {
	messages := BuildCompletionMessages(nil, 9, "persona")
	require.Len(t, messages, 1)
	assert.Equal(t, openai.ChatMessageRoleSystem, messages[0].Role)
}

func TestBuildCompletionMessagesGroupSenders(t *testing.T) {
	// every non-coach sender collapses to the user role
	history := []models.Message{
		{SenderID: 1, Content: "from one member"},
		{SenderID: 2, Content: "from another member"},
	}
	messages := BuildCompletionMessages(history, 9, "persona")
	require.Len(t, messages, 3)
	assert.Equal(t, openai.ChatMessageRoleUser, messages[1].Role)
	assert.Equal(t, openai.ChatMessageRoleUser, messages[2].Role)
}
