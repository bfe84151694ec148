package models

import (
	"time"
)

// GameStatus represents the lifecycle state of a game
type GameStatus string

const (
	// GameStatusScheduled indicates a game that has not started yet
	GameStatusScheduled GameStatus = "scheduled"

	// GameStatusInProgress indicates a game that is being scored live
	GameStatusInProgress GameStatus = "in_progress"

	// GameStatusFinished indicates a completed game; finished is terminal
	GameStatusFinished GameStatus = "finished"
)

// ClockState represents the state of the game clock state machine
type ClockState string

const (
	// ClockStatePreGame indicates the clock has never been started
	ClockStatePreGame ClockState = "pre_game"

	// ClockStateRunning indicates the game clock is counting down
	ClockStateRunning ClockState = "running"

	// ClockStatePaused indicates a manual stoppage (timeout, foul stoppage)
	ClockStatePaused ClockState = "paused"

	// ClockStatePeriodBreak indicates the period ended and the next one
	// has not begun
	ClockStatePeriodBreak ClockState = "period_break"

	// ClockStateFinished indicates the final period has ended
	ClockStateFinished ClockState = "finished"
)

// TeamSide identifies which side of a game a team or player is on
type TeamSide string

const (
	// TeamSideHome is the home side of a game
	TeamSideHome TeamSide = "home"

	// TeamSideAway is the away side of a game
	TeamSideAway TeamSide = "away"
)

// Opponent returns the other side
func (s TeamSide) Opponent() TeamSide {
	if s == TeamSideHome {
		return TeamSideAway
	}
	return TeamSideHome
}

// Game represents a single match being scored live
type Game struct {
	// ID is the unique identifier for the game
	ID string

	// HomeTeamID is the ID of the home team
	HomeTeamID string

	// AwayTeamID is the ID of the away team
	AwayTeamID string

	// Status is the lifecycle state of the game
	Status GameStatus

	// Quarter is the current period, starting at 1
	Quarter int

	// GameClock is the seconds remaining in the current period
	GameClock int

	// ShotClock is the seconds remaining on the shot clock
	ShotClock int

	// ClockState is the state of the clock state machine
	ClockState ClockState

	// HomeScore is derived from the event log; never hand-edited
	HomeScore int

	// AwayScore is derived from the event log; never hand-edited
	AwayScore int

	// HomeTeamFouls is the home team's foul count for the current period
	HomeTeamFouls int

	// AwayTeamFouls is the away team's foul count for the current period
	AwayTeamFouls int

	// HomeTimeouts is the home team's remaining timeouts
	HomeTimeouts int

	// AwayTimeouts is the away team's remaining timeouts
	AwayTimeouts int

	// HomeBonus indicates the home team shoots free throws on
	// non-shooting fouls, derived from the away team's foul count
	HomeBonus bool

	// AwayBonus indicates the away team is in the bonus
	AwayBonus bool

	// OnCourtHome contains the player IDs currently on court for the
	// home team; exactly five once the game is in progress
	OnCourtHome []string

	// OnCourtAway contains the player IDs currently on court for the
	// away team
	OnCourtAway []string

	// RecordsApplied indicates the team win/loss/tie records have
	// already been updated for this game
	RecordsApplied bool

	// CreatedAt is when the game was created
	CreatedAt time.Time

	// UpdatedAt is when the game was last updated
	UpdatedAt time.Time
}

// OnCourt returns the on-court player IDs for the given side
func (g *Game) OnCourt(side TeamSide) []string {
	if side == TeamSideHome {
		return g.OnCourtHome
	}
	return g.OnCourtAway
}

// IsOnCourt reports whether the player is currently on court for the given side
func (g *Game) IsOnCourt(side TeamSide, playerID string) bool {
	for _, id := range g.OnCourt(side) {
		if id == playerID {
			return true
		}
	}
	return false
}
