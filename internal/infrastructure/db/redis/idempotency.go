package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const idempotencyTTL = 24 * time.Hour

// IdempotencyStore maps client-supplied Idempotency-Key values to the
// product id created for them, so replayed create requests return the
// original result without writing again.
// Key format: idem:product:<key>
type IdempotencyStore struct {
	client *redis.Client
}

// NewIdempotencyStore creates an IdempotencyStore wrapping the given Redis client.
func NewIdempotencyStore(client *redis.Client) *IdempotencyStore {
	return &IdempotencyStore{client: client}
}

// Lookup returns the product id recorded for key, or "" when the key is unseen.
func (s *IdempotencyStore) Lookup(ctx context.Context, key string) (string, error) {
	productID, err := s.client.Get(ctx, s.key(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("idempotency lookup: %w", err)
	}
	return productID, nil
}

// Remember records the product id created for key (expires after idempotencyTTL).
func (s *IdempotencyStore) Remember(ctx context.Context, key, productID string) error {
	return s.client.Set(ctx, s.key(key), productID, idempotencyTTL).Err()
}

func (s *IdempotencyStore) key(key string) string {
	return "idem:product:" + key
}
