package interfaces

import (
	"context"

	"github.com/sashabaranov/go-openai"
)

// ChatCompleter is the slice of the OpenAI client the coach service needs.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}
