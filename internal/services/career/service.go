package career

import (
	"context"
	"fmt"

	"github.com/McKeyra/ball-in-the-6-sub004/internal/common/clock"
	"github.com/McKeyra/ball-in-the-6-sub004/internal/common/uuid"
	"github.com/McKeyra/ball-in-the-6-sub004/internal/models"
	eventRepo "github.com/McKeyra/ball-in-the-6-sub004/internal/repositories/event"
	gameRepo "github.com/McKeyra/ball-in-the-6-sub004/internal/repositories/game"
	playerRepo "github.com/McKeyra/ball-in-the-6-sub004/internal/repositories/player"
	teamRepo "github.com/McKeyra/ball-in-the-6-sub004/internal/repositories/team"
	"github.com/McKeyra/ball-in-the-6-sub004/internal/stats"
)

// service implements the Service interface
type service struct {
	gameRepo   gameRepo.Repository
	eventRepo  eventRepo.Repository
	playerRepo playerRepo.Repository
	teamRepo   teamRepo.Repository
	aggregator *stats.Aggregator
	clock      clock.Clock
	uuider     uuid.UUID
}

// New creates a new career service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.GameRepo == nil {
		return nil, ErrNilGameRepo
	}

	if cfg.EventRepo == nil {
		return nil, ErrNilEventRepo
	}

	if cfg.PlayerRepo == nil {
		return nil, ErrNilPlayerRepo
	}

	if cfg.TeamRepo == nil {
		return nil, ErrNilTeamRepo
	}

	if cfg.Aggregator == nil {
		return nil, ErrNilAggregator
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUID == nil {
		return nil, ErrNilUUID
	}

	return &service{
		gameRepo:   cfg.GameRepo,
		eventRepo:  cfg.EventRepo,
		playerRepo: cfg.PlayerRepo,
		teamRepo:   cfg.TeamRepo,
		aggregator: cfg.Aggregator,
		clock:      cfg.Clock,
		uuider:     cfg.UUID,
	}, nil
}

// CreatePersistentPlayer creates an empty career record
func (s *service) CreatePersistentPlayer(ctx context.Context, input *CreatePersistentPlayerInput) (*CreatePersistentPlayerOutput, error) {
	if input.Name == "" {
		return nil, ErrNameRequired
	}

	persistent := &models.PersistentPlayer{
		ID:   s.uuider.NewUUID(),
		Name: input.Name,
	}

	if err := s.playerRepo.SavePersistentPlayer(ctx, &playerRepo.SavePersistentPlayerInput{
		PersistentPlayer: persistent,
	}); err != nil {
		return nil, fmt.Errorf("failed to save career record: %w", err)
	}

	return &CreatePersistentPlayerOutput{PersistentPlayer: persistent}, nil
}

// GetPersistentPlayer retrieves a career record
func (s *service) GetPersistentPlayer(ctx context.Context, input *GetPersistentPlayerInput) (*GetPersistentPlayerOutput, error) {
	persistent, err := s.playerRepo.GetPersistentPlayer(ctx, &playerRepo.GetPersistentPlayerInput{
		PersistentPlayerID: input.PersistentPlayerID,
	})
	if err != nil {
		return nil, err
	}

	return &GetPersistentPlayerOutput{PersistentPlayer: persistent}, nil
}

// FinalizeGame folds final stat lines into career records and applies
// the game result to both teams' records. Every player row and the
// game itself carry a guard flag, so calling this twice is a no-op.
func (s *service) FinalizeGame(ctx context.Context, input *FinalizeGameInput) (*FinalizeGameOutput, error) {
	game, err := s.gameRepo.GetGame(ctx, &gameRepo.GetGameInput{
		GameID: input.GameID,
	})
	if err != nil {
		return nil, err
	}

	if game.Status != models.GameStatusFinished {
		return nil, ErrGameNotFinished
	}

	box, err := s.aggregateLog(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	aggregated, err := s.aggregatePlayers(ctx, input.GameID, box)
	if err != nil {
		return nil, err
	}

	recordsApplied, err := s.applyTeamRecords(ctx, game)
	if err != nil {
		return nil, err
	}

	return &FinalizeGameOutput{
		PlayersAggregated: aggregated,
		RecordsApplied:    recordsApplied,
	}, nil
}

func (s *service) aggregateLog(ctx context.Context, gameID string) (*stats.BoxScore, error) {
	listOutput, err := s.eventRepo.ListEvents(ctx, &eventRepo.ListEventsInput{
		GameID: gameID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	box, err := s.aggregator.Aggregate(gameID, listOutput.Events)
	if err != nil {
		return nil, err
	}

	return box, nil
}

// aggregatePlayers folds each unaggregated, career-linked player row
// into its persistent record. The fold and the row's guard flag land
// in one repository transaction.
func (s *service) aggregatePlayers(ctx context.Context, gameID string, box *stats.BoxScore) (int, error) {
	listOutput, err := s.playerRepo.ListPlayersForGame(ctx, &playerRepo.ListPlayersForGameInput{
		GameID: gameID,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to list players: %w", err)
	}

	aggregated := 0
	for _, player := range listOutput.Players {
		if player.PersistentPlayerID == "" || player.StatsAggregated {
			continue
		}

		persistent, err := s.playerRepo.GetPersistentPlayer(ctx, &playerRepo.GetPersistentPlayerInput{
			PersistentPlayerID: player.PersistentPlayerID,
		})
		if err != nil {
			return aggregated, fmt.Errorf("failed to get career record for %s: %w", player.ID, err)
		}

		foldLine(persistent, box.Line(player.ID))
		player.StatsAggregated = true

		if err := s.playerRepo.ApplyCareerStats(ctx, &playerRepo.ApplyCareerStatsInput{
			Player:           player,
			PersistentPlayer: persistent,
		}); err != nil {
			return aggregated, fmt.Errorf("failed to apply career stats for %s: %w", player.ID, err)
		}

		aggregated++
	}

	return aggregated, nil
}

// applyTeamRecords updates both teams' win/loss/tie records exactly
// once per game, guarded by the RecordsApplied flag on the game
func (s *service) applyTeamRecords(ctx context.Context, game *models.Game) (bool, error) {
	if game.RecordsApplied {
		return false, nil
	}

	result := teamRepo.GameResultTie
	switch {
	case game.HomeScore > game.AwayScore:
		result = teamRepo.GameResultHomeWin
	case game.AwayScore > game.HomeScore:
		result = teamRepo.GameResultAwayWin
	}

	if err := s.teamRepo.ApplyResult(ctx, &teamRepo.ApplyResultInput{
		HomeTeamID: game.HomeTeamID,
		AwayTeamID: game.AwayTeamID,
		Result:     result,
	}); err != nil {
		return false, fmt.Errorf("failed to apply team records: %w", err)
	}

	game.RecordsApplied = true
	game.UpdatedAt = s.clock.Now()

	if err := s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{Game: game}); err != nil {
		return false, fmt.Errorf("failed to save game: %w", err)
	}

	return true, nil
}

// foldLine adds one finished game's line to a career record
func foldLine(p *models.PersistentPlayer, line *stats.StatLine) {
	p.GamesPlayed++
	p.Points += line.Points
	p.Rebounds += line.Rebounds()
	p.Assists += line.Assists
	p.Steals += line.Steals
	p.Blocks += line.Blocks
	p.Turnovers += line.Turnovers
	p.FieldGoalsMade += line.FieldGoalsMade
	p.FieldGoalsAttempted += line.FieldGoalsAttempted
	p.ThreePointersMade += line.ThreePointersMade
	p.ThreePointersAttempted += line.ThreePointersAttempted
	p.FreeThrowsMade += line.FreeThrowsMade
	p.FreeThrowsAttempted += line.FreeThrowsAttempted
	p.Fouls += line.PersonalFouls + line.TechnicalFouls
}
