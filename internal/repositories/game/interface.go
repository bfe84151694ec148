package game

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/McKeyra/ball-in-the-6-sub004/internal/repositories/game Repository

import (
	"context"

	"github.com/McKeyra/ball-in-the-6-sub004/internal/models"
)

// Repository defines the interface for game data persistence
type Repository interface {
	// CreateGame creates a new scheduled game with a generated ID
	CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error)

	// SaveGame persists a game
	SaveGame(ctx context.Context, input *SaveGameInput) error

	// GetGame retrieves a game by ID
	GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error)

	// DeleteGame removes a game
	DeleteGame(ctx context.Context, input *DeleteGameInput) error

	// GetLiveGames retrieves all games currently in progress
	GetLiveGames(ctx context.Context, input *GetLiveGamesInput) (*GetLiveGamesOutput, error)
}
