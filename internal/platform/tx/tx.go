package tx

import "context"

// Manager brackets the session-completion write sequence. Slots persist
// independently, so the boundary is where a batch writer would hook in.
type Manager interface {
	Within(ctx context.Context, fn func(context.Context) error) error
}

type NoopManager struct{}

func (NoopManager) Within(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}
