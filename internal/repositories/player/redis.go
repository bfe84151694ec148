package player

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/McKeyra/ball-in-the-6-sub004/internal/models"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	playerKeyPrefix     = "player:"
	persistentKeyPrefix = "persistent_player:"
	gamePlayersPrefix   = "game:%s:players"
)

// ErrPlayerNotFound is returned when a player row is not found
var ErrPlayerNotFound = errors.New("player not found")

// ErrPersistentPlayerNotFound is returned when a career record is not found
var ErrPersistentPlayerNotFound = errors.New("persistent player not found")

// Config holds configuration for the Redis player repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed player repository
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

func gamePlayersKey(gameID string) string {
	return fmt.Sprintf(gamePlayersPrefix, gameID)
}

// CreatePlayer creates a per-game player row with a generated UUID
func (r *redisRepository) CreatePlayer(ctx context.Context, input *CreatePlayerInput) (*CreatePlayerOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.GameID == "" {
		return nil, errors.New("game ID cannot be empty")
	}

	if input.Name == "" {
		return nil, errors.New("player name cannot be empty")
	}

	player := &models.Player{
		ID:                 uuid.New().String(),
		GameID:             input.GameID,
		TeamID:             input.TeamID,
		TeamSide:           input.TeamSide,
		Name:               input.Name,
		Number:             input.Number,
		PersistentPlayerID: input.PersistentPlayerID,
	}

	playerJSON, err := json.Marshal(player)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal player: %w", err)
	}

	// Write the row and its game index entry in one transaction
	pipe := r.client.Pipeline()
	pipe.Set(ctx, fmt.Sprintf("%s%s", playerKeyPrefix, player.ID), playerJSON, 0)
	pipe.SAdd(ctx, gamePlayersKey(input.GameID), player.ID)

	_, err = pipe.Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	return &CreatePlayerOutput{Player: player}, nil
}

// GetPlayer retrieves a per-game player row by ID from Redis
func (r *redisRepository) GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	playerJSON, err := r.client.Get(ctx, fmt.Sprintf("%s%s", playerKeyPrefix, input.PlayerID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	var player models.Player
	if err := json.Unmarshal([]byte(playerJSON), &player); err != nil {
		return nil, fmt.Errorf("failed to unmarshal player: %w", err)
	}

	return &player, nil
}

// ListPlayersForGame retrieves all player rows for a game
func (r *redisRepository) ListPlayersForGame(ctx context.Context, input *ListPlayersForGameInput) (*ListPlayersForGameOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	playerIDs, err := r.client.SMembers(ctx, gamePlayersKey(input.GameID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get player IDs: %w", err)
	}

	if len(playerIDs) == 0 {
		return &ListPlayersForGameOutput{Players: []*models.Player{}}, nil
	}

	pipe := r.client.Pipeline()
	playerCommands := make(map[string]*redis.StringCmd)

	for _, playerID := range playerIDs {
		playerCommands[playerID] = pipe.Get(ctx, fmt.Sprintf("%s%s", playerKeyPrefix, playerID))
	}

	_, err = pipe.Exec(ctx)
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get players: %w", err)
	}

	players := make([]*models.Player, 0, len(playerIDs))
	for playerID, cmd := range playerCommands {
		playerJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get player %s: %w", playerID, err)
		}

		var player models.Player
		if err := json.Unmarshal([]byte(playerJSON), &player); err != nil {
			return nil, fmt.Errorf("failed to unmarshal player %s: %w", playerID, err)
		}

		players = append(players, &player)
	}

	return &ListPlayersForGameOutput{Players: players}, nil
}

// SavePlayer persists a per-game player row to Redis
func (r *redisRepository) SavePlayer(ctx context.Context, input *SavePlayerInput) error {
	if input == nil || input.Player == nil {
		return errors.New("input and player cannot be nil")
	}

	playerJSON, err := json.Marshal(input.Player)
	if err != nil {
		return fmt.Errorf("failed to marshal player: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, fmt.Sprintf("%s%s", playerKeyPrefix, input.Player.ID), playerJSON, 0)
	pipe.SAdd(ctx, gamePlayersKey(input.Player.GameID), input.Player.ID)

	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save player: %w", err)
	}

	return nil
}

// GetPersistentPlayer retrieves a career record by ID from Redis
func (r *redisRepository) GetPersistentPlayer(ctx context.Context, input *GetPersistentPlayerInput) (*models.PersistentPlayer, error) {
	if input == nil || input.PersistentPlayerID == "" {
		return nil, errors.New("input and persistent player ID cannot be empty")
	}

	recordJSON, err := r.client.Get(ctx, fmt.Sprintf("%s%s", persistentKeyPrefix, input.PersistentPlayerID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrPersistentPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get persistent player: %w", err)
	}

	var record models.PersistentPlayer
	if err := json.Unmarshal([]byte(recordJSON), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal persistent player: %w", err)
	}

	return &record, nil
}

// SavePersistentPlayer persists a career record to Redis
func (r *redisRepository) SavePersistentPlayer(ctx context.Context, input *SavePersistentPlayerInput) error {
	if input == nil || input.PersistentPlayer == nil {
		return errors.New("input and persistent player cannot be nil")
	}

	recordJSON, err := json.Marshal(input.PersistentPlayer)
	if err != nil {
		return fmt.Errorf("failed to marshal persistent player: %w", err)
	}

	key := fmt.Sprintf("%s%s", persistentKeyPrefix, input.PersistentPlayer.ID)
	if err := r.client.Set(ctx, key, recordJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save persistent player: %w", err)
	}

	return nil
}

// ApplyCareerStats writes the folded career record and the flagged
// player row in a single transaction
func (r *redisRepository) ApplyCareerStats(ctx context.Context, input *ApplyCareerStatsInput) error {
	if input == nil || input.Player == nil || input.PersistentPlayer == nil {
		return errors.New("input, player and persistent player cannot be nil")
	}

	playerJSON, err := json.Marshal(input.Player)
	if err != nil {
		return fmt.Errorf("failed to marshal player: %w", err)
	}

	recordJSON, err := json.Marshal(input.PersistentPlayer)
	if err != nil {
		return fmt.Errorf("failed to marshal persistent player: %w", err)
	}

	// Both writes land together or not at all
	pipe := r.client.TxPipeline()
	pipe.Set(ctx, fmt.Sprintf("%s%s", playerKeyPrefix, input.Player.ID), playerJSON, 0)
	pipe.Set(ctx, fmt.Sprintf("%s%s", persistentKeyPrefix, input.PersistentPlayer.ID), recordJSON, 0)

	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to apply career stats: %w", err)
	}

	return nil
}
