package boxscore

import "github.com/McKeyra/ball-in-the-6-sub004/internal/stats"

type GetBoxScoreInput struct {
	GameID string
}

type GetBoxScoreOutput struct {
	BoxScore *stats.BoxScore
}

type SetBoxScoreInput struct {
	GameID   string
	BoxScore *stats.BoxScore
}

type InvalidateInput struct {
	GameID string
}
