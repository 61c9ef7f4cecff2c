package client

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/l6131a-ai/LLM/internal/models"
)

type MentorpieceAPI struct {
	endpoint string
	apiKey   string
	http     *resty.Client
}

func NewMentorpieceAPI(endpoint, apiKey string, timeout time.Duration) *MentorpieceAPI {
	return &MentorpieceAPI{
		endpoint: endpoint,
		apiKey:   apiKey,
		http:     resty.New().SetTimeout(timeout),
	}
}

func (m *MentorpieceAPI) Complete(ctx context.Context, model, prompt string) (string, error) {
	var result models.MentorpieceResponse

	resp, err := m.http.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+m.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(models.MentorpieceRequest{ModelName: model, Prompt: prompt}).
		SetResult(&result).
		Post(m.endpoint)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("%w: status %s: %s", ErrUpstream, resp.Status(), abbreviate(resp.String(), 200))
	}
	if result.Response == "" {
		return "", fmt.Errorf("%w: response field missing or empty", ErrUpstream)
	}

	return result.Response, nil
}

func abbreviate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
