package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const cartTTL = 30 * 24 * time.Hour

// RedisStore keeps carts in Redis so they survive server restarts and page
// reloads. Keys expire after a month of inactivity.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) key(token string) string {
	return fmt.Sprintf("cart:%s", token)
}

func (s *RedisStore) Load(ctx context.Context, token string) (*Cart, error) {
	data, err := s.client.Get(ctx, s.key(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return &Cart{}, nil
		}
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	var c Cart
	if err := json.Unmarshal(data, &c); err != nil {
		// A corrupt payload should not lock the customer out of shopping.
		return &Cart{}, nil
	}
	return &c, nil
}

func (s *RedisStore) Save(ctx context.Context, token string, c *Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}
	return s.client.Set(ctx, s.key(token), data, cartTTL).Err()
}

func (s *RedisStore) Clear(ctx context.Context, token string) error {
	return s.client.Del(ctx, s.key(token)).Err()
}
