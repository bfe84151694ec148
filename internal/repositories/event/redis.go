package event

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
	eventKeyPrefix = "game_event:"
	gameLogPrefix  = "game:%s:events"     // sorted set scored by append sequence
	gameSeqPrefix  = "game:%s:events:seq" // monotonic per-game counter
)

// ErrEventNotFound is returned when an event is not in the game's log
var ErrEventNotFound = errors.New("event not found")

// Config holds configuration for the Redis event repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed event repository
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

func gameLogKey(gameID string) string {
	return fmt.Sprintf(gameLogPrefix, gameID)
}

func gameSeqKey(gameID string) string {
	return fmt.Sprintf(gameSeqPrefix, gameID)
}

// AppendEvent appends an event to a game's log. The log is a sorted set
// scored by a per-game INCR sequence, so ZRANGE returns exact insertion
// order even for events created in the same instant.
func (r *redisRepository) AppendEvent(ctx context.Context, input *AppendEventInput) (*AppendEventOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	if input.PlayerID == "" {
		return nil, errors.New("player ID cannot be empty")
	}

	event := &models.GameEvent{
		ID:        uuid.New().String(),
		GameID:    input.GameID,
		PlayerID:  input.PlayerID,
		TeamSide:  input.TeamSide,
		Type:      input.Type,
		Quarter:   input.Quarter,
		GameClock: input.GameClock,
		CreatedAt: input.CreatedAt,
	}

	eventJSON, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event: %w", err)
	}

	seq, err := r.client.Incr(ctx, gameSeqKey(input.GameID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to advance log sequence: %w", err)
	}

	// Write the event and its log index entry in one transaction
	pipe := r.client.Pipeline()

	eventKey := fmt.Sprintf("%s%s", eventKeyPrefix, event.ID)
	pipe.Set(ctx, eventKey, eventJSON, 0)

	pipe.ZAdd(ctx, gameLogKey(input.GameID), redis.Z{
		Score:  float64(seq),
		Member: event.ID,
	})

	_, err = pipe.Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to append event: %w", err)
	}

	return &AppendEventOutput{Event: event}, nil
}

// ListEvents retrieves a game's events in ascending log order
func (r *redisRepository) ListEvents(ctx context.Context, input *ListEventsInput) (*ListEventsOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	eventIDs, err := r.client.ZRange(ctx, gameLogKey(input.GameID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get event IDs: %w", err)
	}

	if len(eventIDs) == 0 {
		return &ListEventsOutput{Events: []*models.GameEvent{}}, nil
	}

	// Fetch all events in one pipeline, preserving log order
	pipe := r.client.Pipeline()
	eventCommands := make([]*redis.StringCmd, 0, len(eventIDs))

	for _, eventID := range eventIDs {
		eventKey := fmt.Sprintf("%s%s", eventKeyPrefix, eventID)
		eventCommands = append(eventCommands, pipe.Get(ctx, eventKey))
	}

	_, err = pipe.Exec(ctx)
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}

	events := make([]*models.GameEvent, 0, len(eventIDs))
	for i, cmd := range eventCommands {
		eventJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Event was removed between reading the index and fetching
				continue
			}
			return nil, fmt.Errorf("failed to get event %s: %w", eventIDs[i], err)
		}

		var event models.GameEvent
		if err := json.Unmarshal([]byte(eventJSON), &event); err != nil {
			return nil, fmt.Errorf("failed to unmarshal event %s: %w", eventIDs[i], err)
		}

		events = append(events, &event)
	}

	return &ListEventsOutput{Events: events}, nil
}

// GetLastEvent retrieves the most recently appended event for a game
func (r *redisRepository) GetLastEvent(ctx context.Context, input *GetLastEventInput) (*models.GameEvent, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	eventIDs, err := r.client.ZRevRange(ctx, gameLogKey(input.GameID), 0, 0).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get last event ID: %w", err)
	}

	if len(eventIDs) == 0 {
		return nil, ErrEventNotFound
	}

	eventKey := fmt.Sprintf("%s%s", eventKeyPrefix, eventIDs[0])
	eventJSON, err := r.client.Get(ctx, eventKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	var event models.GameEvent
	if err := json.Unmarshal([]byte(eventJSON), &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}

	return &event, nil
}

// RemoveEvent deletes exactly one event from a game's log
func (r *redisRepository) RemoveEvent(ctx context.Context, input *RemoveEventInput) error {
	if input == nil || input.GameID == "" || input.EventID == "" {
		return errors.New("input, game ID and event ID cannot be empty")
	}

	// The index entry is the membership check: zero removed means the
	// event was never in this game's log
	removed, err := r.client.ZRem(ctx, gameLogKey(input.GameID), input.EventID).Result()
	if err != nil {
		return fmt.Errorf("failed to remove event from log: %w", err)
	}

	if removed == 0 {
		return ErrEventNotFound
	}

	eventKey := fmt.Sprintf("%s%s", eventKeyPrefix, input.EventID)
	if err := r.client.Del(ctx, eventKey).Err(); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	return nil
}

// DeleteEvents deletes every event for a game
func (r *redisRepository) DeleteEvents(ctx context.Context, input *DeleteEventsInput) error {
	if input == nil || input.GameID == "" {
		return errors.New("input and game ID cannot be empty")
	}

	eventIDs, err := r.client.ZRange(ctx, gameLogKey(input.GameID), 0, -1).Result()
	if err != nil {
		return fmt.Errorf("failed to get event IDs: %w", err)
	}

	pipe := r.client.Pipeline()
	for _, eventID := range eventIDs {
		pipe.Del(ctx, fmt.Sprintf("%s%s", eventKeyPrefix, eventID))
	}
	pipe.Del(ctx, gameLogKey(input.GameID))
	pipe.Del(ctx, gameSeqKey(input.GameID))

	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete events: %w", err)
	}

	return nil
}
