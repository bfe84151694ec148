package game

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/McKeyra/ball-in-the-6-sub004/internal/models"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	gameKeyPrefix = "game:"
	liveGamesKey  = "live_games"
)

// ErrGameNotFound is returned when a game is not found
var ErrGameNotFound = errors.New("game not found")

// Config holds configuration for the Redis game repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed game repository
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

// CreateGame creates a new scheduled game with a generated UUID
func (r *redisRepository) CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.HomeTeamID == "" || input.AwayTeamID == "" {
		return nil, errors.New("home and away team IDs cannot be empty")
	}

	now := time.Now()
	game := &models.Game{
		ID:           uuid.New().String(),
		HomeTeamID:   input.HomeTeamID,
		AwayTeamID:   input.AwayTeamID,
		Status:       models.GameStatusScheduled,
		Quarter:      1,
		GameClock:    input.PeriodSeconds,
		ShotClock:    input.ShotClockSeconds,
		ClockState:   models.ClockStatePreGame,
		HomeTimeouts: input.TimeoutsPerTeam,
		AwayTimeouts: input.TimeoutsPerTeam,
		OnCourtHome:  []string{},
		OnCourtAway:  []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := r.SaveGame(ctx, &SaveGameInput{Game: game}); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	return &CreateGameOutput{Game: game}, nil
}

// SaveGame persists a game to Redis
func (r *redisRepository) SaveGame(ctx context.Context, input *SaveGameInput) error {
	if input == nil || input.Game == nil {
		return errors.New("input and game cannot be nil")
	}

	gameJSON, err := json.Marshal(input.Game)
	if err != nil {
		return fmt.Errorf("failed to marshal game: %w", err)
	}

	// Write the game and maintain the live games set in one transaction
	pipe := r.client.Pipeline()

	gameKey := fmt.Sprintf("%s%s", gameKeyPrefix, input.Game.ID)
	pipe.Set(ctx, gameKey, gameJSON, 0)

	if input.Game.Status == models.GameStatusInProgress {
		pipe.SAdd(ctx, liveGamesKey, input.Game.ID)
	} else {
		pipe.SRem(ctx, liveGamesKey, input.Game.ID)
	}

	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}

	return nil
}

// GetGame retrieves a game by ID from Redis
func (r *redisRepository) GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	gameKey := fmt.Sprintf("%s%s", gameKeyPrefix, input.GameID)
	gameJSON, err := r.client.Get(ctx, gameKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	var game models.Game
	if err := json.Unmarshal([]byte(gameJSON), &game); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &game, nil
}

// DeleteGame removes a game from Redis
func (r *redisRepository) DeleteGame(ctx context.Context, input *DeleteGameInput) error {
	if input == nil || input.GameID == "" {
		return errors.New("input and game ID cannot be empty")
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, fmt.Sprintf("%s%s", gameKeyPrefix, input.GameID))
	pipe.SRem(ctx, liveGamesKey, input.GameID)

	_, err := pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	return nil
}

// GetLiveGames retrieves all games currently in progress
func (r *redisRepository) GetLiveGames(ctx context.Context, input *GetLiveGamesInput) (*GetLiveGamesOutput, error) {
	gameIDs, err := r.client.SMembers(ctx, liveGamesKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get live game IDs: %w", err)
	}

	if len(gameIDs) == 0 {
		return &GetLiveGamesOutput{Games: []*models.Game{}}, nil
	}

	pipe := r.client.Pipeline()
	gameCommands := make(map[string]*redis.StringCmd)

	for _, gameID := range gameIDs {
		gameKey := fmt.Sprintf("%s%s", gameKeyPrefix, gameID)
		gameCommands[gameID] = pipe.Get(ctx, gameKey)
	}

	_, err = pipe.Exec(ctx)
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get live games: %w", err)
	}

	games := make([]*models.Game, 0, len(gameIDs))
	for gameID, cmd := range gameCommands {
		gameJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Game was deleted between reading the set and fetching
				continue
			}
			return nil, fmt.Errorf("failed to get game %s: %w", gameID, err)
		}

		var game models.Game
		if err := json.Unmarshal([]byte(gameJSON), &game); err != nil {
			return nil, fmt.Errorf("failed to unmarshal game %s: %w", gameID, err)
		}

		games = append(games, &game)
	}

	return &GetLiveGamesOutput{Games: games}, nil
}
