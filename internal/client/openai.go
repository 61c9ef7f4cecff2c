package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

type OpenAIAPI struct {
	client *openai.Client
}

func NewOpenAIAPI(apiKey string) *OpenAIAPI {
	return &OpenAIAPI{client: openai.NewClient(apiKey)}
}

func (o *OpenAIAPI) Complete(ctx context.Context, model, prompt string) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Temperature: 0.3,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices returned", ErrUpstream)
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
