package event

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/McKeyra/ball-in-the-6-sub004/internal/repositories/event Repository

import (
	"context"

	"github.com/McKeyra/ball-in-the-6-sub004/internal/models"
)

// Repository defines the interface for the append-only event log. The
// store is a dumb log: court-presence and game-state validation belong
// to the services that call it.
type Repository interface {
	// AppendEvent appends an event to a game's log with a generated ID
	AppendEvent(ctx context.Context, input *AppendEventInput) (*AppendEventOutput, error)

	// ListEvents retrieves a game's events in ascending log order
	ListEvents(ctx context.Context, input *ListEventsInput) (*ListEventsOutput, error)

	// GetLastEvent retrieves the most recently appended event for a game
	GetLastEvent(ctx context.Context, input *GetLastEventInput) (*models.GameEvent, error)

	// RemoveEvent deletes exactly one event from a game's log
	RemoveEvent(ctx context.Context, input *RemoveEventInput) error

	// DeleteEvents deletes every event for a game
	DeleteEvents(ctx context.Context, input *DeleteEventsInput) error
}
