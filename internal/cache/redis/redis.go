package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"article-api/internal/domain/dto"
)

const statisticsKey = "article:statistics:%s"

type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(ctx context.Context, addr, password string, db int, ttl time.Duration) (*Cache, error) {
	const op = "cache.redis.New"

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return NewWithClient(client, ttl), nil
}

func NewWithClient(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

func (c *Cache) Close() error {
	return c.client.Close()
}

// Statistics returns the cached statistics for the window ending on day.
// ok is false on a cache miss.
func (c *Cache) Statistics(ctx context.Context, day string) (stats dto.Statistics, ok bool, err error) {
	const op = "cache.redis.Statistics"

	raw, err := c.client.Get(ctx, fmt.Sprintf(statisticsKey, day)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return dto.Statistics{}, false, nil
		}
		return dto.Statistics{}, false, fmt.Errorf("%s: %w", op, err)
	}

	if err := json.Unmarshal(raw, &stats); err != nil {
		return dto.Statistics{}, false, fmt.Errorf("%s: %w", op, err)
	}

	return stats, true, nil
}

func (c *Cache) SetStatistics(ctx context.Context, day string, stats dto.Statistics) error {
	const op = "cache.redis.SetStatistics"

	raw, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := c.client.Set(ctx, fmt.Sprintf(statisticsKey, day), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (c *Cache) InvalidateStatistics(ctx context.Context, day string) error {
	const op = "cache.redis.InvalidateStatistics"

	if err := c.client.Del(ctx, fmt.Sprintf(statisticsKey, day)).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
