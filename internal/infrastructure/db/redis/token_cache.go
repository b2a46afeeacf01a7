package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const tokenTTL = time.Hour

// TokenCache is a lookaside index from bearer token to user id, saving the
// identity store a full scan on every authorised request. Entries expire so
// stale mappings age out on their own; the identity store re-verifies the
// token against the user record on every hit.
type TokenCache struct {
	client *redis.Client
}

func NewTokenCache(client *redis.Client) *TokenCache {
	return &TokenCache{client: client}
}

// Get returns the cached user id for token, or "" on a miss.
func (c *TokenCache) Get(ctx context.Context, token string) (string, error) {
	userID, err := c.client.Get(ctx, key(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("token cache get: %w", err)
	}
	return userID, nil
}

// Put records the token → user id mapping (expires after tokenTTL).
func (c *TokenCache) Put(ctx context.Context, token, userID string) error {
	return c.client.Set(ctx, key(token), userID, tokenTTL).Err()
}

func key(token string) string {
	return "token:" + token
}
