package models

// Player represents a participant in a single game. Derived stat
// counters are not stored here; they are recomputed from the event log.
type Player struct {
	// ID is the unique identifier for this per-game player row
	ID string

	// GameID is the ID of the game the player belongs to
	GameID string

	// TeamID is the ID of the player's team
	TeamID string

	// TeamSide is the side the player's team occupies in this game
	TeamSide TeamSide

	// Name is the display name of the player
	Name string

	// Number is the jersey number
	Number int

	// PersistentPlayerID links to the player's career record; empty for
	// guest players with no career tracking
	PersistentPlayerID string

	// StatsAggregated guards the one-time fold of this row's final game
	// stats into the linked career record
	StatsAggregated bool
}

// PersistentPlayer holds cross-game career totals for a player. Every
// counter is monotonically non-decreasing and mutated exactly once per
// finished game per linked per-game row.
type PersistentPlayer struct {
	// ID is the unique identifier for the career record
	ID string

	// Name is the display name of the player
	Name string

	// GamesPlayed is the number of finished games folded in
	GamesPlayed int

	// Points is the career point total
	Points int

	// Rebounds is the career rebound total, offensive plus defensive
	Rebounds int

	// Assists is the career assist total
	Assists int

	// Steals is the career steal total
	Steals int

	// Blocks is the career block total
	Blocks int

	// Turnovers is the career turnover total
	Turnovers int

	// FieldGoalsMade is the career made field goal total
	FieldGoalsMade int

	// FieldGoalsAttempted is the career attempted field goal total
	FieldGoalsAttempted int

	// ThreePointersMade is the career made three-pointer total
	ThreePointersMade int

	// ThreePointersAttempted is the career attempted three-pointer total
	ThreePointersAttempted int

	// FreeThrowsMade is the career made free throw total
	FreeThrowsMade int

	// FreeThrowsAttempted is the career attempted free throw total
	FreeThrowsAttempted int

	// Fouls is the career foul total
	Fouls int
}
