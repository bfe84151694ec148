package career

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/McKeyra/ball-in-the-6-sub004/internal/services/career Service

import "context"

// Service defines the interface for post-game finalization. Both steps
// are guarded so re-running finalization on the same game changes
// nothing.
type Service interface {
	// CreatePersistentPlayer creates an empty career record that
	// per-game player rows can link to
	CreatePersistentPlayer(ctx context.Context, input *CreatePersistentPlayerInput) (*CreatePersistentPlayerOutput, error)

	// GetPersistentPlayer retrieves a career record
	GetPersistentPlayer(ctx context.Context, input *GetPersistentPlayerInput) (*GetPersistentPlayerOutput, error)

	// FinalizeGame folds the game's stat lines into linked career
	// records and applies the win/loss/tie result to both teams
	FinalizeGame(ctx context.Context, input *FinalizeGameInput) (*FinalizeGameOutput, error)
}
