package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

// ErrCacheMiss — ключа нет в кеше.
var ErrCacheMiss = errors.New("cache miss")

// RedisCacheRepository - реализация кеша на Redis.
type RedisCacheRepository struct {
	client *redis.Client
}

func NewRedisCacheRepository(client *redis.Client) CacheRepositoryInterface {
	return &RedisCacheRepository{client: client}
}

// Get получает значение из кеша по ключу.
func (r *RedisCacheRepository) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrCacheMiss
	}
	return val, err
}

// Set устанавливает значение в кеш.
func (r *RedisCacheRepository) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return r.client.Set(ctx, key, value, expiration).Err()
}

// Del удаляет ключи из кеша.
func (r *RedisCacheRepository) Del(ctx context.Context, keys ...string) error {
	return r.client.Del(ctx, keys...).Err()
}
