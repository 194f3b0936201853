package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Elliot-87/YOUTHCENTRE/internal/config"
	"github.com/Elliot-87/YOUTHCENTRE/pkg/models"
)

const homeSectionKey = "youthcentre:home_section"

// RedisClient wraps the Redis client used to cache the home-page vacancy
// section. All methods degrade gracefully: a cache miss or a Redis failure
// never fails the request, the caller just recomputes.
type RedisClient struct {
	client *redis.Client
	config *config.Config
}

// NewRedisClient creates a new Redis client instance
func NewRedisClient(cfg *config.Config) *RedisClient {
	// Parse Redis URL
	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		// Fallback to default configuration
		opts = &redis.Options{
			Addr:     "localhost:6379",
			Password: "",
			DB:       0,
		}
	}

	// Configure timeouts
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opts)

	return &RedisClient{
		client: client,
		config: cfg,
	}
}

// GetHomeSection returns the cached home-page section, or nil on a miss.
func (r *RedisClient) GetHomeSection(ctx context.Context) (*models.HomeResponse, error) {
	data, err := r.client.Get(ctx, homeSectionKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read home section cache: %w", err)
	}

	var section models.HomeResponse
	if err := json.Unmarshal(data, &section); err != nil {
		return nil, fmt.Errorf("failed to decode home section cache: %w", err)
	}
	return &section, nil
}

// SetHomeSection caches the home-page section under the configured TTL.
func (r *RedisClient) SetHomeSection(ctx context.Context, section *models.HomeResponse) error {
	data, err := json.Marshal(section)
	if err != nil {
		return fmt.Errorf("failed to encode home section: %w", err)
	}

	ttl := r.config.Redis.CacheTTL
	if ttl <= 0 {
		ttl = time.Minute
	}
	return r.client.Set(ctx, homeSectionKey, data, ttl).Err()
}

// InvalidateHomeSection drops the cached section after a vacancy mutation.
func (r *RedisClient) InvalidateHomeSection(ctx context.Context) error {
	return r.client.Del(ctx, homeSectionKey).Err()
}

// HealthCheck verifies the Redis connection
func (r *RedisClient) HealthCheck(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (r *RedisClient) Close() error {
	return r.client.Close()
}
