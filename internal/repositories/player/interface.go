package player

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/McKeyra/ball-in-the-6-sub004/internal/repositories/player Repository

import (
	"context"

	"github.com/McKeyra/ball-in-the-6-sub004/internal/models"
)

// Repository defines the interface for player data persistence. It
// covers both per-game player rows and persistent career records.
type Repository interface {
	// CreatePlayer creates a per-game player row with a generated ID
	CreatePlayer(ctx context.Context, input *CreatePlayerInput) (*CreatePlayerOutput, error)

	// GetPlayer retrieves a per-game player row by ID
	GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error)

	// ListPlayersForGame retrieves all player rows for a game
	ListPlayersForGame(ctx context.Context, input *ListPlayersForGameInput) (*ListPlayersForGameOutput, error)

	// SavePlayer persists a per-game player row
	SavePlayer(ctx context.Context, input *SavePlayerInput) error

	// GetPersistentPlayer retrieves a career record by ID
	GetPersistentPlayer(ctx context.Context, input *GetPersistentPlayerInput) (*models.PersistentPlayer, error)

	// SavePersistentPlayer persists a career record
	SavePersistentPlayer(ctx context.Context, input *SavePersistentPlayerInput) error

	// ApplyCareerStats writes an updated career record and the player
	// row that was folded into it in a single transaction, so the
	// aggregation flag can never be set without the fold landing
	ApplyCareerStats(ctx context.Context, input *ApplyCareerStatsInput) error
}
