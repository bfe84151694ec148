package career

import (
	"github.com/McKeyra/ball-in-the-6-sub004/internal/common/clock"
	"github.com/McKeyra/ball-in-the-6-sub004/internal/common/uuid"
	"github.com/McKeyra/ball-in-the-6-sub004/internal/models"
	eventRepo "github.com/McKeyra/ball-in-the-6-sub004/internal/repositories/event"
	gameRepo "github.com/McKeyra/ball-in-the-6-sub004/internal/repositories/game"
	playerRepo "github.com/McKeyra/ball-in-the-6-sub004/internal/repositories/player"
	teamRepo "github.com/McKeyra/ball-in-the-6-sub004/internal/repositories/team"
	"github.com/McKeyra/ball-in-the-6-sub004/internal/stats"
)

// Config holds configuration for the career service
type Config struct {
	// Repository dependencies
	GameRepo   gameRepo.Repository
	EventRepo  eventRepo.Repository
	PlayerRepo playerRepo.Repository
	TeamRepo   teamRepo.Repository

	// Service dependencies
	Aggregator *stats.Aggregator
	Clock      clock.Clock
	UUID       uuid.UUID
}

type CreatePersistentPlayerInput struct {
	// Name is the display name for the career record
	Name string
}

type CreatePersistentPlayerOutput struct {
	PersistentPlayer *models.PersistentPlayer
}

type GetPersistentPlayerInput struct {
	PersistentPlayerID string
}

type GetPersistentPlayerOutput struct {
	PersistentPlayer *models.PersistentPlayer
}

type FinalizeGameInput struct {
	GameID string
}

type FinalizeGameOutput struct {
	// PlayersAggregated is the number of career records updated by this
	// call; zero on a repeat call
	PlayersAggregated int

	// RecordsApplied indicates this call updated the team win/loss/tie
	// records; false on a repeat call
	RecordsApplied bool
}
