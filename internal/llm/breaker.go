package llm

import (
	"context"
	"time"

	"github.com/sony/gobreaker"
)

// breakerClient wraps a Client in a circuit breaker. When the model service
// is failing repeatedly, parallel workers get an immediate error instead of
// each burning a full request timeout against a dead endpoint.
type breakerClient struct {
	inner Client
	cb    *gobreaker.CircuitBreaker
}

func newBreaker(name string, inner Client) *breakerClient {
	return &breakerClient{
		inner: inner,
		cb: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        name,
			MaxRequests: 2,
			Interval:    60 * time.Second,
			Timeout:     30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
		}),
	}
}

func (b *breakerClient) Explain(ctx context.Context, word string) (string, error) {
	return b.execute(func() (string, error) { return b.inner.Explain(ctx, word) })
}

func (b *breakerClient) Monologue(ctx context.Context, word string) (string, error) {
	return b.execute(func() (string, error) { return b.inner.Monologue(ctx, word) })
}

func (b *breakerClient) Generate(ctx context.Context, prompt string) (string, error) {
	return b.execute(func() (string, error) { return b.inner.Generate(ctx, prompt) })
}

func (b *breakerClient) execute(fn func() (string, error)) (string, error) {
	result, err := b.cb.Execute(func() (interface{}, error) {
		return fn()
	})
	if err != nil {
		return "", err
	}
	return result.(string), nil
}
