package models

// Team holds a team's identity and its win/loss/tie record. The record
// is mutated exactly once per finished game, in lockstep with the
// opposing team's record.
type Team struct {
	// ID is the unique identifier for the team
	ID string

	// Name is the display name of the team
	Name string

	// Wins is the number of games won
	Wins int

	// Losses is the number of games lost
	Losses int

	// Ties is the number of games tied
	Ties int
}
