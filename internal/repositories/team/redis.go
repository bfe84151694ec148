package team

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
	// Key prefix for Redis
	teamKeyPrefix = "team:"
)

// ErrTeamNotFound is returned when a team is not found
var ErrTeamNotFound = errors.New("team not found")

// Config holds configuration for the Redis team repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed team repository
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

// CreateTeam creates a new team with a generated UUID
func (r *redisRepository) CreateTeam(ctx context.Context, input *CreateTeamInput) (*CreateTeamOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.Name == "" {
		return nil, errors.New("team name cannot be empty")
	}

	team := &models.Team{
		ID:   uuid.New().String(),
		Name: input.Name,
	}

	if err := r.SaveTeam(ctx, &SaveTeamInput{Team: team}); err != nil {
		return nil, fmt.Errorf("failed to save team: %w", err)
	}

	return &CreateTeamOutput{Team: team}, nil
}

// GetTeam retrieves a team by ID from Redis
func (r *redisRepository) GetTeam(ctx context.Context, input *GetTeamInput) (*models.Team, error) {
	if input == nil || input.TeamID == "" {
		return nil, errors.New("input and team ID cannot be empty")
	}

	teamJSON, err := r.client.Get(ctx, fmt.Sprintf("%s%s", teamKeyPrefix, input.TeamID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	var team models.Team
	if err := json.Unmarshal([]byte(teamJSON), &team); err != nil {
		return nil, fmt.Errorf("failed to unmarshal team: %w", err)
	}

	return &team, nil
}

// SaveTeam persists a team to Redis
func (r *redisRepository) SaveTeam(ctx context.Context, input *SaveTeamInput) error {
	if input == nil || input.Team == nil {
		return errors.New("input and team cannot be nil")
	}

	teamJSON, err := json.Marshal(input.Team)
	if err != nil {
		return fmt.Errorf("failed to marshal team: %w", err)
	}

	key := fmt.Sprintf("%s%s", teamKeyPrefix, input.Team.ID)
	if err := r.client.Set(ctx, key, teamJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save team: %w", err)
	}

	return nil
}

// ApplyResult updates both teams' records in lockstep
func (r *redisRepository) ApplyResult(ctx context.Context, input *ApplyResultInput) error {
	if input == nil || input.HomeTeamID == "" || input.AwayTeamID == "" {
		return errors.New("input and team IDs cannot be empty")
	}

	home, err := r.GetTeam(ctx, &GetTeamInput{TeamID: input.HomeTeamID})
	if err != nil {
		return err
	}

	away, err := r.GetTeam(ctx, &GetTeamInput{TeamID: input.AwayTeamID})
	if err != nil {
		return err
	}

	switch input.Result {
	case GameResultHomeWin:
		home.Wins++
		away.Losses++
	case GameResultAwayWin:
		away.Wins++
		home.Losses++
	case GameResultTie:
		home.Ties++
		away.Ties++
	default:
		return fmt.Errorf("unknown game result %q", input.Result)
	}

	homeJSON, err := json.Marshal(home)
	if err != nil {
		return fmt.Errorf("failed to marshal home team: %w", err)
	}

	awayJSON, err := json.Marshal(away)
	if err != nil {
		return fmt.Errorf("failed to marshal away team: %w", err)
	}

	// Both records land together or not at all
	pipe := r.client.TxPipeline()
	pipe.Set(ctx, fmt.Sprintf("%s%s", teamKeyPrefix, home.ID), homeJSON, 0)
	pipe.Set(ctx, fmt.Sprintf("%s%s", teamKeyPrefix, away.ID), awayJSON, 0)

	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to apply result: %w", err)
	}

	return nil
}
