package scoring

import (
	"context"

	"github.com/McKeyra/ball-in-the-6-sub004/internal/common/clock"
	"github.com/McKeyra/ball-in-the-6-sub004/internal/models"
	boxscoreRepo "github.com/McKeyra/ball-in-the-6-sub004/internal/repositories/boxscore"
	eventRepo "github.com/McKeyra/ball-in-the-6-sub004/internal/repositories/event"
	gameRepo "github.com/McKeyra/ball-in-the-6-sub004/internal/repositories/game"
	"github.com/McKeyra/ball-in-the-6-sub004/internal/rules"
	"github.com/McKeyra/ball-in-the-6-sub004/internal/stats"
)

// Publisher receives scoreboard updates after every successful log
// mutation. Publishing is best effort; delivery failures never fail
// the recording path.
type Publisher interface {
	PublishGameUpdate(ctx context.Context, game *models.Game, box *stats.BoxScore)
}

// Config holds configuration for the scoring service
type Config struct {
	// Rules supplies the bonus threshold used when deriving game state
	Rules *rules.Ruleset

	// Repository dependencies
	GameRepo     gameRepo.Repository
	EventRepo    eventRepo.Repository
	BoxScoreRepo boxscoreRepo.Repository

	// Service dependencies
	Aggregator *stats.Aggregator
	Clock      clock.Clock

	// Publishers optionally receive updates after each mutation
	Publishers []Publisher
}

type RecordEventInput struct {
	GameID string

	// PlayerID is the player the event is attributed to
	PlayerID string

	// TeamSide is the side the player is on
	TeamSide models.TeamSide

	// Type is the event type to record
	Type models.EventType
}

type RecordEventOutput struct {
	// Event is the appended event with its generated ID
	Event *models.GameEvent

	// Game is the game record with derived fields refreshed
	Game *models.Game

	// BoxScore is the derived view after the append
	BoxScore *stats.BoxScore
}

type UndoLastInput struct {
	GameID string
}

type UndoLastOutput struct {
	// Undone indicates an event was actually removed
	Undone bool

	// RemovedEvent is the event that was removed, nil when Undone is false
	RemovedEvent *models.GameEvent

	// Game is the game record with derived fields refreshed
	Game *models.Game

	// BoxScore is the derived view after the removal
	BoxScore *stats.BoxScore
}

type GetBoxScoreInput struct {
	GameID string
}

type GetBoxScoreOutput struct {
	BoxScore *stats.BoxScore
}

type GetEventLogInput struct {
	GameID string
}

// EventLogEntry pairs an event with its display label
type EventLogEntry struct {
	Event *models.GameEvent

	// Label is the human-readable name of the event type
	Label string
}

type GetEventLogOutput struct {
	Entries []*EventLogEntry
}
