package scoring

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/McKeyra/ball-in-the-6-sub004/internal/services/scoring Service

import "context"

// Service defines the interface for recording and reading game events.
// The event log is the source of truth; every derived number on the
// game record and in the box score is recomputed from it after each
// mutation.
type Service interface {
	// RecordEvent validates and appends a stat event to a game's log
	RecordEvent(ctx context.Context, input *RecordEventInput) (*RecordEventOutput, error)

	// UndoLast removes the most recent event from a game's log. An
	// empty log is not an error; the output reports nothing was undone.
	UndoLast(ctx context.Context, input *UndoLastInput) (*UndoLastOutput, error)

	// GetBoxScore returns the derived box score, from cache when fresh
	GetBoxScore(ctx context.Context, input *GetBoxScoreInput) (*GetBoxScoreOutput, error)

	// GetEventLog returns a game's full event log in order
	GetEventLog(ctx context.Context, input *GetEventLogInput) (*GetEventLogOutput, error)
}
