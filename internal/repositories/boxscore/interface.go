package boxscore

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/McKeyra/ball-in-the-6-sub004/internal/repositories/boxscore Repository

import (
	"context"
)

// Repository defines the interface for the derived box-score cache.
// The cache is an optimization only: the event log stays the source of
// truth and every log mutation must invalidate the cached view.
type Repository interface {
	// GetBoxScore retrieves the cached box score for a game
	GetBoxScore(ctx context.Context, input *GetBoxScoreInput) (*GetBoxScoreOutput, error)

	// SetBoxScore caches the box score for a game
	SetBoxScore(ctx context.Context, input *SetBoxScoreInput) error

	// Invalidate drops the cached box score for a game
	Invalidate(ctx context.Context, input *InvalidateInput) error
}
