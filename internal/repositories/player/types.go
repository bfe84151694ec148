package player

import "github.com/McKeyra/ball-in-the-6-sub004/internal/models"

type CreatePlayerInput struct {
	// GameID is the game the row belongs to
	GameID string

	// TeamID is the player's team
	TeamID string

	// TeamSide is the side the team occupies in this game
	TeamSide models.TeamSide

	// Name is the display name of the player
	Name string

	// Number is the jersey number
	Number int

	// PersistentPlayerID optionally links the row to a career record
	PersistentPlayerID string
}

type CreatePlayerOutput struct {
	Player *models.Player
}

type GetPlayerInput struct {
	PlayerID string
}

type ListPlayersForGameInput struct {
	GameID string
}

type ListPlayersForGameOutput struct {
	Players []*models.Player
}

type SavePlayerInput struct {
	Player *models.Player
}

type GetPersistentPlayerInput struct {
	PersistentPlayerID string
}

type SavePersistentPlayerInput struct {
	PersistentPlayer *models.PersistentPlayer
}

type ApplyCareerStatsInput struct {
	// Player is the per-game row with StatsAggregated already set
	Player *models.Player

	// PersistentPlayer is the career record with the game's stats folded in
	PersistentPlayer *models.PersistentPlayer
}
