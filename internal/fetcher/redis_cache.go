package fetcher

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

type RedisCache struct {
	client redis.Cmdable
}

func NewRedisCache(client redis.Cmdable) *RedisCache {
	return &RedisCache{client: client}
}

func (rc *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := rc.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, errors.New("redis get error: " + err.Error())
	}
	return value, true, nil
}

func (rc *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	if err := rc.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return errors.New("redis set error: " + err.Error())
	}
	return nil
}

func (rc *RedisCache) Delete(ctx context.Context, key string) error {
	if err := rc.client.Del(ctx, key).Err(); err != nil {
		return errors.New("redis delete error: " + err.Error())
	}
	return nil
}
