package team

import "github.com/McKeyra/ball-in-the-6-sub004/internal/models"

// GameResult represents the outcome of a game from the home side
type GameResult string

const (
	// GameResultHomeWin indicates the home team won
	GameResultHomeWin GameResult = "home_win"

	// GameResultAwayWin indicates the away team won
	GameResultAwayWin GameResult = "away_win"

	// GameResultTie indicates the game ended level
	GameResultTie GameResult = "tie"
)

type CreateTeamInput struct {
	// Name is the display name of the team
	Name string
}

type CreateTeamOutput struct {
	Team *models.Team
}

type GetTeamInput struct {
	TeamID string
}

type SaveTeamInput struct {
	Team *models.Team
}

type ApplyResultInput struct {
	// HomeTeamID is the home team of the finished game
	HomeTeamID string

	// AwayTeamID is the away team of the finished game
	AwayTeamID string

	// Result is the game outcome
	Result GameResult
}
