package gameclock

import (
	"github.com/McKeyra/ball-in-the-6-sub004/internal/common/clock"
	"github.com/McKeyra/ball-in-the-6-sub004/internal/models"
	gameRepo "github.com/McKeyra/ball-in-the-6-sub004/internal/repositories/game"
	"github.com/McKeyra/ball-in-the-6-sub004/internal/rules"
)

// ShotClockResetReason identifies the possession change that triggers a
// shot clock reset. Which reasons reset to the full versus the short
// value is ruleset-driven, not hardcoded.
type ShotClockResetReason string

const (
	// ResetReasonMadeBasket follows a made field goal
	ResetReasonMadeBasket ShotClockResetReason = "made_basket"

	// ResetReasonDefensiveRebound follows a change of possession off a miss
	ResetReasonDefensiveRebound ShotClockResetReason = "defensive_rebound"

	// ResetReasonOffensiveRebound keeps possession; resets to the short value
	ResetReasonOffensiveRebound ShotClockResetReason = "offensive_rebound"

	// ResetReasonViolation follows a shot clock violation
	ResetReasonViolation ShotClockResetReason = "violation"
)

// Config holds configuration for the game clock service
type Config struct {
	// Rules supplies period, shot clock and timeout settings
	Rules *rules.Ruleset

	// Repository dependencies
	GameRepo gameRepo.Repository

	// Service dependencies
	Clock clock.Clock
}

type StartGameInput struct {
	GameID string
}

type StartGameOutput struct {
	Game *models.Game
}

type PauseClockInput struct {
	GameID string
}

type PauseClockOutput struct {
	Game *models.Game
}

type ResumeClockInput struct {
	GameID string
}

type ResumeClockOutput struct {
	Game *models.Game
}

type AdvanceClockInput struct {
	GameID string

	// Seconds is the wall time to run off the clock
	Seconds int
}

type AdvanceClockOutput struct {
	Game *models.Game

	// PeriodEnded indicates the clock reached zero and forced a break
	PeriodEnded bool
}

type AdvancePeriodInput struct {
	GameID string
}

type AdvancePeriodOutput struct {
	Game *models.Game

	// GameOver indicates the final period break ended the game
	GameOver bool
}

type CallTimeoutInput struct {
	GameID string

	// TeamSide is the team charged with the timeout
	TeamSide models.TeamSide
}

type CallTimeoutOutput struct {
	Game *models.Game

	// Remaining is the charged team's remaining timeout count
	Remaining int
}

type ResetShotClockInput struct {
	GameID string

	// Reason determines whether the full or short reset applies
	Reason ShotClockResetReason
}

type ResetShotClockOutput struct {
	Game *models.Game
}
