package publisher

import (
	"context"
	"encoding/json"
	"log"

	"github.com/McKeyra/ball-in-the-6-sub004/internal/models"
	"github.com/McKeyra/ball-in-the-6-sub004/internal/stats"
	"github.com/redis/go-redis/v9"
)

// StreamKey is the Redis stream live scoreboard updates go to
const StreamKey = "games.updates.live"

// streamUpdate is the JSON payload written to the stream
type streamUpdate struct {
	Game     *models.Game    `json:"game"`
	BoxScore *stats.BoxScore `json:"boxScore"`
}

// StreamPublisher publishes scoreboard updates to a Redis stream so
// downstream consumers (notifications, analytics) can follow games
// without polling
type StreamPublisher struct {
	client *redis.Client
}

// NewStreamPublisher creates a new stream publisher
func NewStreamPublisher(client *redis.Client) *StreamPublisher {
	return &StreamPublisher{
		client: client,
	}
}

// PublishGameUpdate appends the update to the live stream. Failures
// are logged and swallowed; the scoring path never blocks on the feed.
func (p *StreamPublisher) PublishGameUpdate(ctx context.Context, game *models.Game, box *stats.BoxScore) {
	data, err := json.Marshal(&streamUpdate{
		Game:     game,
		BoxScore: box,
	})
	if err != nil {
		log.Printf("Error marshaling stream update for game %s: %v", game.ID, err)
		return
	}

	err = p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: StreamKey,
		Values: map[string]interface{}{
			"data":    string(data),
			"game_id": game.ID,
			"status":  string(game.Status),
		},
	}).Err()
	if err != nil {
		log.Printf("Error publishing update for game %s: %v", game.ID, err)
	}
}
