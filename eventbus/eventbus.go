package eventbus

import "context"

// Publisher pushes analytics events onto the bus. Publishing is best-effort:
// callers log a failure and move on, the user-facing action never depends on
// it.
type Publisher interface {
	Publish(ctx context.Context, topic string, key string, payload any) error
	Close()
}

// Nop is the Publisher used when the bus is disabled in config.
type Nop struct{}

func (Nop) Publish(ctx context.Context, topic string, key string, payload any) error { return nil }
func (Nop) Close()                                                                   {}
