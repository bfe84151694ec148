package game

import "github.com/McKeyra/ball-in-the-6-sub004/internal/models"

type CreateGameInput struct {
	// HomeTeamID is the home team for the new game
	HomeTeamID string

	// AwayTeamID is the away team for the new game
	AwayTeamID string

	// PeriodSeconds seeds the game clock for the first period
	PeriodSeconds int

	// ShotClockSeconds seeds the shot clock
	ShotClockSeconds int

	// TimeoutsPerTeam seeds both teams' remaining timeouts
	TimeoutsPerTeam int
}

type CreateGameOutput struct {
	Game *models.Game
}

type SaveGameInput struct {
	Game *models.Game
}

type GetGameInput struct {
	GameID string
}

type DeleteGameInput struct {
	GameID string
}

type GetLiveGamesInput struct {
}

type GetLiveGamesOutput struct {
	Games []*models.Game
}
