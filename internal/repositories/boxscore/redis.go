package boxscore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/McKeyra/ball-in-the-6-sub004/internal/stats"
	"github.com/redis/go-redis/v9"
)

const (
	boxScorePrefix = "game:%s:boxscore"

	// Cached views expire on their own as a backstop; explicit
	// invalidation on every log mutation is the real mechanism
	boxScoreTTL = 6 * time.Hour
)

// ErrCacheMiss is returned when no box score is cached for the game
var ErrCacheMiss = errors.New("box score not cached")

// Config holds configuration for the Redis box-score cache
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed box-score cache
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func boxScoreKey(gameID string) string {
	return fmt.Sprintf(boxScorePrefix, gameID)
}

// GetBoxScore retrieves the cached box score for a game
func (r *redisRepository) GetBoxScore(ctx context.Context, input *GetBoxScoreInput) (*GetBoxScoreOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	boxJSON, err := r.client.Get(ctx, boxScoreKey(input.GameID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get box score: %w", err)
	}

	var box stats.BoxScore
	if err := json.Unmarshal([]byte(boxJSON), &box); err != nil {
		return nil, fmt.Errorf("failed to unmarshal box score: %w", err)
	}

	return &GetBoxScoreOutput{BoxScore: &box}, nil
}

// SetBoxScore caches the box score for a game
func (r *redisRepository) SetBoxScore(ctx context.Context, input *SetBoxScoreInput) error {
	if input == nil || input.GameID == "" || input.BoxScore == nil {
		return errors.New("input, game ID and box score cannot be empty")
	}

	boxJSON, err := json.Marshal(input.BoxScore)
	if err != nil {
		return fmt.Errorf("failed to marshal box score: %w", err)
	}

	if err := r.client.Set(ctx, boxScoreKey(input.GameID), boxJSON, boxScoreTTL).Err(); err != nil {
		return fmt.Errorf("failed to set box score: %w", err)
	}

	return nil
}

// Invalidate drops the cached box score for a game
func (r *redisRepository) Invalidate(ctx context.Context, input *InvalidateInput) error {
	if input == nil || input.GameID == "" {
		return errors.New("input and game ID cannot be empty")
	}

	if err := r.client.Del(ctx, boxScoreKey(input.GameID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate box score: %w", err)
	}

	return nil
}
