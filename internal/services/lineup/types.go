package lineup

import (
	"github.com/McKeyra/ball-in-the-6-sub004/internal/common/clock"
	"github.com/McKeyra/ball-in-the-6-sub004/internal/models"
	eventRepo "github.com/McKeyra/ball-in-the-6-sub004/internal/repositories/event"
	gameRepo "github.com/McKeyra/ball-in-the-6-sub004/internal/repositories/game"
	playerRepo "github.com/McKeyra/ball-in-the-6-sub004/internal/repositories/player"
	"github.com/McKeyra/ball-in-the-6-sub004/internal/rules"
	"github.com/McKeyra/ball-in-the-6-sub004/internal/stats"
)

// Config holds configuration for the lineup service
type Config struct {
	// Rules supplies the on-court player count and foul-out limit
	Rules *rules.Ruleset

	// Repository dependencies
	GameRepo   gameRepo.Repository
	EventRepo  eventRepo.Repository
	PlayerRepo playerRepo.Repository

	// Service dependencies
	Aggregator *stats.Aggregator
	Clock      clock.Clock
}

type ToggleInput struct {
	// Draft is the working set of player IDs being edited
	Draft []string

	// PlayerID is the player to add or remove
	PlayerID string
}

type ToggleOutput struct {
	// Draft is the updated working set
	Draft []string

	// Added indicates the player was added rather than removed
	Added bool
}

type CommitLineupsInput struct {
	GameID string

	// Home contains the player IDs to put on court for the home team
	Home []string

	// Away contains the player IDs to put on court for the away team
	Away []string
}

type CommitLineupsOutput struct {
	Game *models.Game
}
