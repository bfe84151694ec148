package models

import (
	"time"
)

// EventType represents a scoring event in the closed enumeration of
// recordable actions. Adding a type requires extending the mapping
// functions below, which switch exhaustively.
type EventType string

const (
	// EventShot2PtMake is a made two-point field goal
	EventShot2PtMake EventType = "shot_2pt_make"

	// EventShot2PtMiss is a missed two-point field goal
	EventShot2PtMiss EventType = "shot_2pt_miss"

	// EventShot3PtMake is a made three-point field goal
	EventShot3PtMake EventType = "shot_3pt_make"

	// EventShot3PtMiss is a missed three-point field goal
	EventShot3PtMiss EventType = "shot_3pt_miss"

	// EventFreeThrowMake is a made free throw
	EventFreeThrowMake EventType = "free_throw_make"

	// EventFreeThrowMiss is a missed free throw
	EventFreeThrowMiss EventType = "free_throw_miss"

	// EventReboundOff is an offensive rebound
	EventReboundOff EventType = "rebound_off"

	// EventReboundDef is a defensive rebound
	EventReboundDef EventType = "rebound_def"

	// EventAssist is an assist
	EventAssist EventType = "assist"

	// EventSteal is a steal
	EventSteal EventType = "steal"

	// EventBlock is a blocked shot
	EventBlock EventType = "block"

	// EventTurnover is a turnover
	EventTurnover EventType = "turnover"

	// EventFoulPersonal is a personal foul
	EventFoulPersonal EventType = "foul_personal"

	// EventFoulTechnical is a technical foul
	EventFoulTechnical EventType = "foul_technical"

	// EventFoulUnsportsmanlike is an unsportsmanlike foul
	EventFoulUnsportsmanlike EventType = "foul_unsportsmanlike"
)

// EventTypes lists every recordable event type in a stable order
var EventTypes = []EventType{
	EventShot2PtMake,
	EventShot2PtMiss,
	EventShot3PtMake,
	EventShot3PtMiss,
	EventFreeThrowMake,
	EventFreeThrowMiss,
	EventReboundOff,
	EventReboundDef,
	EventAssist,
	EventSteal,
	EventBlock,
	EventTurnover,
	EventFoulPersonal,
	EventFoulTechnical,
	EventFoulUnsportsmanlike,
}

// Valid reports whether t is a member of the closed enumeration
func (t EventType) Valid() bool {
	switch t {
	case EventShot2PtMake, EventShot2PtMiss,
		EventShot3PtMake, EventShot3PtMiss,
		EventFreeThrowMake, EventFreeThrowMiss,
		EventReboundOff, EventReboundDef,
		EventAssist, EventSteal, EventBlock, EventTurnover,
		EventFoulPersonal, EventFoulTechnical, EventFoulUnsportsmanlike:
		return true
	}
	return false
}

// Points returns the score value of the event; zero for non-scoring events
func (t EventType) Points() int {
	switch t {
	case EventShot2PtMake:
		return 2
	case EventShot3PtMake:
		return 3
	case EventFreeThrowMake:
		return 1
	}
	return 0
}

// IsFoul reports whether the event counts toward a player's foul total
func (t EventType) IsFoul() bool {
	switch t {
	case EventFoulPersonal, EventFoulTechnical, EventFoulUnsportsmanlike:
		return true
	}
	return false
}

// IsTeamFoul reports whether the event counts toward the period team
// foul total that drives the bonus. Technical fouls do not.
func (t EventType) IsTeamFoul() bool {
	switch t {
	case EventFoulPersonal, EventFoulUnsportsmanlike:
		return true
	}
	return false
}

// Label returns the display label for the event type
func (t EventType) Label() string {
	switch t {
	case EventShot2PtMake:
		return "2PT Made"
	case EventShot2PtMiss:
		return "2PT Missed"
	case EventShot3PtMake:
		return "3PT Made"
	case EventShot3PtMiss:
		return "3PT Missed"
	case EventFreeThrowMake:
		return "FT Made"
	case EventFreeThrowMiss:
		return "FT Missed"
	case EventReboundOff:
		return "Off. Rebound"
	case EventReboundDef:
		return "Def. Rebound"
	case EventAssist:
		return "Assist"
	case EventSteal:
		return "Steal"
	case EventBlock:
		return "Block"
	case EventTurnover:
		return "Turnover"
	case EventFoulPersonal:
		return "Personal Foul"
	case EventFoulTechnical:
		return "Technical Foul"
	case EventFoulUnsportsmanlike:
		return "Unsportsmanlike Foul"
	}
	return string(t)
}

// GameEvent is an immutable record of a single scoring action. Events
// are only ever appended to a game's log or removed by undo; they are
// never mutated in place.
type GameEvent struct {
	// ID is the unique identifier for the event
	ID string

	// GameID is the ID of the game the event belongs to
	GameID string

	// PlayerID is the ID of the per-game player the event is attributed to
	PlayerID string

	// TeamSide is the side of the player at the time of recording
	TeamSide TeamSide

	// Type is the kind of action recorded
	Type EventType

	// Quarter is the period the event occurred in; descriptive only,
	// the log order is the ordering key
	Quarter int

	// GameClock is the seconds remaining when the event was recorded
	GameClock int

	// CreatedAt is when the event was appended; ascending CreatedAt is
	// the log order
	CreatedAt time.Time
}
