package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
)

type BreakerCompleter struct {
	cb   *gobreaker.CircuitBreaker
	next Completer
}

// WithBreaker fails fast once the provider shows three consecutive failures,
// instead of holding every request for the full timeout.
func WithBreaker(next Completer) *BreakerCompleter {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "llm-api",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	})

	return &BreakerCompleter{cb: cb, next: next}
}

func (b *BreakerCompleter) Complete(ctx context.Context, model, prompt string) (string, error) {
	out, err := b.cb.Execute(func() (interface{}, error) {
		return b.next.Complete(ctx, model, prompt)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return "", fmt.Errorf("%w: circuit open", ErrUpstream)
		}
		return "", err
	}

	return out.(string), nil
}
