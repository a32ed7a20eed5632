package cart

import "context"

// Store persists a cart across page loads for a single client, keyed by the
// opaque cart token the client holds. The pricing logic never touches the
// storage mechanism.
type Store interface {
	Load(ctx context.Context, token string) (*Cart, error)
	Save(ctx context.Context, token string, c *Cart) error
	Clear(ctx context.Context, token string) error
}
