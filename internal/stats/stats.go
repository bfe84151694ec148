package stats

import (
	"fmt"

	"github.com/McKeyra/ball-in-the-6-sub004/internal/models"
	"github.com/McKeyra/ball-in-the-6-sub004/internal/rules"
)

// ErrUnknownEventType is returned when the log contains an event type
// outside the closed enumeration
type ErrUnknownEventType struct {
	Type models.EventType
}

// Error implements the error interface
func (e *ErrUnknownEventType) Error() string {
	return fmt.Sprintf("unknown event type %q", e.Type)
}

// StatLine holds the derived counters for one player. Every field is a
// pure function of the event log; nothing here is written directly.
type StatLine struct {
	// PlayerID is the per-game player the line belongs to
	PlayerID string

	// TeamSide is the side the player's events were recorded for
	TeamSide models.TeamSide

	// Points is the total points scored
	Points int

	// ReboundsOff is the offensive rebound count
	ReboundsOff int

	// ReboundsDef is the defensive rebound count
	ReboundsDef int

	// Assists is the assist count
	Assists int

	// Steals is the steal count
	Steals int

	// Blocks is the blocked shot count
	Blocks int

	// Turnovers is the turnover count
	Turnovers int

	// FieldGoalsMade counts made 2pt and 3pt shots
	FieldGoalsMade int

	// FieldGoalsAttempted counts all 2pt and 3pt attempts
	FieldGoalsAttempted int

	// ThreePointersMade counts made 3pt shots
	ThreePointersMade int

	// ThreePointersAttempted counts all 3pt attempts
	ThreePointersAttempted int

	// FreeThrowsMade counts made free throws
	FreeThrowsMade int

	// FreeThrowsAttempted counts all free throw attempts
	FreeThrowsAttempted int

	// PersonalFouls counts personal and unsportsmanlike fouls
	PersonalFouls int

	// TechnicalFouls counts technical fouls
	TechnicalFouls int
}

// Rebounds returns the combined rebound count
func (l *StatLine) Rebounds() int {
	return l.ReboundsOff + l.ReboundsDef
}

// TeamTotals holds the derived live totals for one side
type TeamTotals struct {
	// Score is the sum of point values of the side's made shots
	Score int

	// PeriodFouls is the team foul count for the latest period seen in
	// the log; it resets at every period boundary
	PeriodFouls int

	// Bonus indicates this side shoots free throws on non-shooting
	// fouls because the opposing team reached the foul threshold
	Bonus bool
}

// BoxScore is the full derived view of a game's event log
type BoxScore struct {
	// GameID is the game the box score was derived from
	GameID string

	// Players maps per-game player ID to that player's stat line
	Players map[string]*StatLine

	// Home holds the home side's totals
	Home TeamTotals

	// Away holds the away side's totals
	Away TeamTotals

	// Quarter is the latest period seen in the log, zero for an empty log
	Quarter int

	// EventCount is the number of events folded in
	EventCount int
}

// Line returns the stat line for a player, creating an empty one if the
// player has no events yet
func (b *BoxScore) Line(playerID string) *StatLine {
	if line, ok := b.Players[playerID]; ok {
		return line
	}
	return &StatLine{PlayerID: playerID}
}

// Config holds configuration for the aggregator
type Config struct {
	// Rules supplies the bonus threshold and foul-out limit
	Rules *rules.Ruleset
}

// Aggregator folds event logs into box scores. It holds no per-game
// state; every call re-derives the full view from scratch so the
// output can never drift from the log.
type Aggregator struct {
	rules *rules.Ruleset
}

// New creates a new aggregator
func New(cfg *Config) *Aggregator {
	rs := rules.Default()
	if cfg != nil && cfg.Rules != nil {
		rs = cfg.Rules
	}
	return &Aggregator{rules: rs}
}

// Aggregate folds the events, strictly in log order, into a box score.
// The fold is deterministic: replaying the same log always reproduces
// the same output.
func (a *Aggregator) Aggregate(gameID string, events []*models.GameEvent) (*BoxScore, error) {
	box := &BoxScore{
		GameID:  gameID,
		Players: make(map[string]*StatLine),
	}

	for _, event := range events {
		if !event.Type.Valid() {
			return nil, &ErrUnknownEventType{Type: event.Type}
		}

		// Team fouls reset at every period boundary
		if event.Quarter > box.Quarter {
			box.Quarter = event.Quarter
			box.Home.PeriodFouls = 0
			box.Away.PeriodFouls = 0
		}

		line, ok := box.Players[event.PlayerID]
		if !ok {
			line = &StatLine{
				PlayerID: event.PlayerID,
				TeamSide: event.TeamSide,
			}
			box.Players[event.PlayerID] = line
		}

		applyEvent(line, event.Type)

		team := &box.Home
		if event.TeamSide == models.TeamSideAway {
			team = &box.Away
		}
		team.Score += event.Type.Points()
		if event.Type.IsTeamFoul() {
			team.PeriodFouls++
		}

		box.EventCount++
	}

	box.Home.Bonus = box.Away.PeriodFouls >= a.rules.BonusThreshold
	box.Away.Bonus = box.Home.PeriodFouls >= a.rules.BonusThreshold

	return box, nil
}

// FouledOut reports whether the player has reached the foul-out limit.
// The player stays visible in the box score; keeping them off the court
// is the lineup service's job.
func (a *Aggregator) FouledOut(line *StatLine) bool {
	if line == nil {
		return false
	}
	return line.PersonalFouls >= a.rules.FoulOutLimit
}

// applyEvent maps one event type onto stat line increments. The switch
// is total over the enumeration; Valid has already rejected strays.
func applyEvent(line *StatLine, t models.EventType) {
	switch t {
	case models.EventShot2PtMake:
		line.Points += 2
		line.FieldGoalsMade++
		line.FieldGoalsAttempted++
	case models.EventShot2PtMiss:
		line.FieldGoalsAttempted++
	case models.EventShot3PtMake:
		line.Points += 3
		line.FieldGoalsMade++
		line.FieldGoalsAttempted++
		line.ThreePointersMade++
		line.ThreePointersAttempted++
	case models.EventShot3PtMiss:
		line.FieldGoalsAttempted++
		line.ThreePointersAttempted++
	case models.EventFreeThrowMake:
		line.Points++
		line.FreeThrowsMade++
		line.FreeThrowsAttempted++
	case models.EventFreeThrowMiss:
		line.FreeThrowsAttempted++
	case models.EventReboundOff:
		line.ReboundsOff++
	case models.EventReboundDef:
		line.ReboundsDef++
	case models.EventAssist:
		line.Assists++
	case models.EventSteal:
		line.Steals++
	case models.EventBlock:
		line.Blocks++
	case models.EventTurnover:
		line.Turnovers++
	case models.EventFoulPersonal, models.EventFoulUnsportsmanlike:
		line.PersonalFouls++
	case models.EventFoulTechnical:
		line.TechnicalFouls++
	}
}
