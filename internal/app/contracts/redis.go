package contracts

import (
	"context"
	"time"
)

type RedisRepository interface {
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	// Get returns an empty string without error on a cache miss.
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}
