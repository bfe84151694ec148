package event

import (
	"time"

	"github.com/McKeyra/ball-in-the-6-sub004/internal/models"
)

type AppendEventInput struct {
	// GameID is the game whose log is appended to
	GameID string

	// PlayerID is the player the event is attributed to
	PlayerID string

	// TeamSide is the player's side at recording time
	TeamSide models.TeamSide

	// Type is the event type being recorded
	Type models.EventType

	// Quarter is the period the event occurred in
	Quarter int

	// GameClock is the seconds remaining when the event occurred
	GameClock int

	// CreatedAt is the append timestamp; the caller stamps it so the
	// log order is deterministic under an injected clock
	CreatedAt time.Time
}

type AppendEventOutput struct {
	Event *models.GameEvent
}

type ListEventsInput struct {
	GameID string
}

type ListEventsOutput struct {
	Events []*models.GameEvent
}

type GetLastEventInput struct {
	GameID string
}

type RemoveEventInput struct {
	GameID  string
	EventID string
}

type DeleteEventsInput struct {
	GameID string
}
