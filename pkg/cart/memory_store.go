package cart

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryStore is an in-process fallback used when Redis is unavailable, and
// in tests. Carts expire after 24 hours.
type MemoryStore struct {
	cache *gocache.Cache
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		cache: gocache.New(24*time.Hour, 10*time.Minute),
	}
}

func (s *MemoryStore) Load(_ context.Context, token string) (*Cart, error) {
	if x, found := s.cache.Get(token); found {
		return x.(*Cart), nil
	}
	return &Cart{}, nil
}

func (s *MemoryStore) Save(_ context.Context, token string, c *Cart) error {
	s.cache.Set(token, c, gocache.DefaultExpiration)
	return nil
}

func (s *MemoryStore) Clear(_ context.Context, token string) error {
	s.cache.Delete(token)
	return nil
}
