package itemcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/guildboard/blackboard/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for cached item metadata
	itemKeyPrefix = "item:"

	// defaultTTL keeps metadata around long enough to ride out API
	// hiccups without serving stale names forever
	defaultTTL = 24 * time.Hour
)

// ErrItemNotCached is returned on a cache miss
var ErrItemNotCached = errors.New("item not cached")

// Config holds configuration for the Redis item cache
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// TTL for cached entries; defaults to 24h
	TTL time.Duration
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis creates a new Redis-backed item cache
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}

	return &redisRepository{
		client: cfg.RedisClient,
		ttl:    ttl,
	}, nil
}

// GetItem retrieves cached metadata for an item id
func (r *redisRepository) GetItem(ctx context.Context, input *GetItemInput) (*models.ItemInfo, error) {
	if input == nil || input.ItemID <= 0 {
		return nil, errors.New("input and item ID cannot be empty")
	}

	key := fmt.Sprintf("%s%d", itemKeyPrefix, input.ItemID)
	raw, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrItemNotCached
		}
		return nil, fmt.Errorf("failed to get cached item: %w", err)
	}

	var info models.ItemInfo
	if err := json.Unmarshal([]byte(raw), &info); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached item: %w", err)
	}

	return &info, nil
}

// SetItem caches metadata for an item id
func (r *redisRepository) SetItem(ctx context.Context, input *SetItemInput) error {
	if input == nil || input.Item == nil || input.Item.ID <= 0 {
		return errors.New("input and item cannot be empty")
	}

	raw, err := json.Marshal(input.Item)
	if err != nil {
		return fmt.Errorf("failed to marshal item: %w", err)
	}

	key := fmt.Sprintf("%s%d", itemKeyPrefix, input.Item.ID)
	if err := r.client.Set(ctx, key, raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache item: %w", err)
	}

	return nil
}
