package client

import (
	"context"
	"errors"
	"time"

	"github.com/l6131a-ai/LLM/internal/config"
)

// Completer is the minimal surface the service needs from an LLM provider.
type Completer interface {
	Complete(ctx context.Context, model, prompt string) (string, error)
}

// ErrUpstream marks any provider-side failure: transport errors, non-2xx
// statuses, malformed payloads, open circuit. The HTTP layer maps it to 502.
var ErrUpstream = errors.New("LLM API unavailable")

func InitClient(cfg config.APIConfig, timeout time.Duration) Completer {
	var c Completer
	switch cfg.Provider {
	case "openai":
		c = NewOpenAIAPI(cfg.Key)
	default:
		c = NewMentorpieceAPI(cfg.Endpoint, cfg.Key, timeout)
	}
	return WithBreaker(c)
}
