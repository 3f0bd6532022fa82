package customdict

import (
	"context"
	"strings"

	"github.com/redis/go-redis/v9"
)

// DefaultKey is the Redis set holding user-added known words.
const DefaultKey = "custom_dict"

// CustomDict stores words that must never be spell-corrected in a Redis set.
type CustomDict struct {
	client redis.Cmdable
	key    string
}

// New creates a CustomDict on the given client. An empty key selects DefaultKey.
func New(client redis.Cmdable, key string) *CustomDict {
	if key == "" {
		key = DefaultKey
	}
	return &CustomDict{client: client, key: key}
}

// Add inserts a word, lowercased.
func (cd *CustomDict) Add(ctx context.Context, word string) error {
	return cd.client.SAdd(ctx, cd.key, strings.ToLower(word)).Err()
}

// Remove deletes a word.
func (cd *CustomDict) Remove(ctx context.Context, word string) error {
	return cd.client.SRem(ctx, cd.key, strings.ToLower(word)).Err()
}

// All returns every stored word in no particular order.
func (cd *CustomDict) All(ctx context.Context) ([]string, error) {
	return cd.client.SMembers(ctx, cd.key).Result()
}
