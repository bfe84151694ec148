package scoring

import (
	"context"
	"errors"
	"fmt"

	"github.com/McKeyra/ball-in-the-6-sub004/internal/common/clock"
	"github.com/McKeyra/ball-in-the-6-sub004/internal/models"
	boxscoreRepo "github.com/McKeyra/ball-in-the-6-sub004/internal/repositories/boxscore"
	eventRepo "github.com/McKeyra/ball-in-the-6-sub004/internal/repositories/event"
	gameRepo "github.com/McKeyra/ball-in-the-6-sub004/internal/repositories/game"
	"github.com/McKeyra/ball-in-the-6-sub004/internal/rules"
	"github.com/McKeyra/ball-in-the-6-sub004/internal/stats"
)

// service implements the Service interface
type service struct {
	rules        *rules.Ruleset
	gameRepo     gameRepo.Repository
	eventRepo    eventRepo.Repository
	boxScoreRepo boxscoreRepo.Repository
	aggregator   *stats.Aggregator
	clock        clock.Clock
	publishers   []Publisher
}

// New creates a new scoring service
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

	if cfg.BoxScoreRepo == nil {
		return nil, ErrNilBoxScoreRepo
	}

	if cfg.Aggregator == nil {
		return nil, ErrNilAggregator
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	rs := cfg.Rules
	if rs == nil {
		rs = rules.Default()
	}

	return &service{
		rules:        rs,
		gameRepo:     cfg.GameRepo,
		eventRepo:    cfg.EventRepo,
		boxScoreRepo: cfg.BoxScoreRepo,
		aggregator:   cfg.Aggregator,
		clock:        cfg.Clock,
		publishers:   cfg.Publishers,
	}, nil
}

// RecordEvent appends a validated event and refreshes everything
// derived from the log
func (s *service) RecordEvent(ctx context.Context, input *RecordEventInput) (*RecordEventOutput, error) {
	if !input.Type.Valid() {
		return nil, ErrInvalidEventType
	}

	game, err := s.gameRepo.GetGame(ctx, &gameRepo.GetGameInput{
		GameID: input.GameID,
	})
	if err != nil {
		return nil, err
	}

	if game.Status != models.GameStatusInProgress {
		return nil, ErrGameNotInProgress
	}

	// Every event type needs the player on the court, fouls and
	// turnovers included
	if !game.IsOnCourt(input.TeamSide, input.PlayerID) {
		return nil, ErrPlayerNotOnCourt
	}

	appendOutput, err := s.eventRepo.AppendEvent(ctx, &eventRepo.AppendEventInput{
		GameID:    input.GameID,
		PlayerID:  input.PlayerID,
		TeamSide:  input.TeamSide,
		Type:      input.Type,
		Quarter:   game.Quarter,
		GameClock: game.GameClock,
		CreatedAt: s.clock.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to append event: %w", err)
	}

	box, err := s.refreshDerived(ctx, game)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, game, box)

	return &RecordEventOutput{
		Event:    appendOutput.Event,
		Game:     game,
		BoxScore: box,
	}, nil
}

// UndoLast removes the newest event. Undoing an empty log does
// nothing and reports Undone false.
func (s *service) UndoLast(ctx context.Context, input *UndoLastInput) (*UndoLastOutput, error) {
	game, err := s.gameRepo.GetGame(ctx, &gameRepo.GetGameInput{
		GameID: input.GameID,
	})
	if err != nil {
		return nil, err
	}

	if game.Status != models.GameStatusInProgress {
		return nil, ErrGameNotInProgress
	}

	last, err := s.eventRepo.GetLastEvent(ctx, &eventRepo.GetLastEventInput{
		GameID: input.GameID,
	})
	if err != nil {
		if errors.Is(err, eventRepo.ErrEventNotFound) {
			return &UndoLastOutput{Game: game}, nil
		}
		return nil, err
	}

	if err := s.eventRepo.RemoveEvent(ctx, &eventRepo.RemoveEventInput{
		GameID:  input.GameID,
		EventID: last.ID,
	}); err != nil {
		return nil, fmt.Errorf("failed to remove event: %w", err)
	}

	box, err := s.refreshDerived(ctx, game)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, game, box)

	return &UndoLastOutput{
		Undone:       true,
		RemovedEvent: last,
		Game:         game,
		BoxScore:     box,
	}, nil
}

// GetBoxScore serves the cached view when present, otherwise folds the
// log and caches the result
func (s *service) GetBoxScore(ctx context.Context, input *GetBoxScoreInput) (*GetBoxScoreOutput, error) {
	cached, err := s.boxScoreRepo.GetBoxScore(ctx, &boxscoreRepo.GetBoxScoreInput{
		GameID: input.GameID,
	})
	if err == nil {
		return &GetBoxScoreOutput{BoxScore: cached.BoxScore}, nil
	}
	if !errors.Is(err, boxscoreRepo.ErrCacheMiss) {
		return nil, err
	}

	// Only existing games get folded and cached; an unknown ID must
	// surface as not found, not as an empty box score
	if _, err := s.gameRepo.GetGame(ctx, &gameRepo.GetGameInput{
		GameID: input.GameID,
	}); err != nil {
		return nil, err
	}

	box, err := s.aggregateLog(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if err := s.boxScoreRepo.SetBoxScore(ctx, &boxscoreRepo.SetBoxScoreInput{
		GameID:   input.GameID,
		BoxScore: box,
	}); err != nil {
		return nil, fmt.Errorf("failed to cache box score: %w", err)
	}

	return &GetBoxScoreOutput{BoxScore: box}, nil
}

// GetEventLog returns the full log in order with display labels
func (s *service) GetEventLog(ctx context.Context, input *GetEventLogInput) (*GetEventLogOutput, error) {
	listOutput, err := s.eventRepo.ListEvents(ctx, &eventRepo.ListEventsInput{
		GameID: input.GameID,
	})
	if err != nil {
		return nil, err
	}

	entries := make([]*EventLogEntry, 0, len(listOutput.Events))
	for _, event := range listOutput.Events {
		entries = append(entries, &EventLogEntry{
			Event: event,
			Label: event.Type.Label(),
		})
	}

	return &GetEventLogOutput{Entries: entries}, nil
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

// refreshDerived re-folds the log after a mutation, syncs the derived
// fields onto the game record, and replaces the cached view
func (s *service) refreshDerived(ctx context.Context, game *models.Game) (*stats.BoxScore, error) {
	if err := s.boxScoreRepo.Invalidate(ctx, &boxscoreRepo.InvalidateInput{
		GameID: game.ID,
	}); err != nil {
		return nil, fmt.Errorf("failed to invalidate box score: %w", err)
	}

	box, err := s.aggregateLog(ctx, game.ID)
	if err != nil {
		return nil, err
	}

	game.HomeScore = box.Home.Score
	game.AwayScore = box.Away.Score

	// Foul counts in the fold belong to the latest period in the log.
	// If the game has moved past that period the live counts are zero.
	if box.Quarter == game.Quarter {
		game.HomeTeamFouls = box.Home.PeriodFouls
		game.AwayTeamFouls = box.Away.PeriodFouls
		game.HomeBonus = box.Home.Bonus
		game.AwayBonus = box.Away.Bonus
	} else {
		game.HomeTeamFouls = 0
		game.AwayTeamFouls = 0
		game.HomeBonus = false
		game.AwayBonus = false
	}

	game.UpdatedAt = s.clock.Now()

	if err := s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{Game: game}); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	if err := s.boxScoreRepo.SetBoxScore(ctx, &boxscoreRepo.SetBoxScoreInput{
		GameID:   game.ID,
		BoxScore: box,
	}); err != nil {
		return nil, fmt.Errorf("failed to cache box score: %w", err)
	}

	return box, nil
}

func (s *service) publish(ctx context.Context, game *models.Game, box *stats.BoxScore) {
	for _, p := range s.publishers {
		p.PublishGameUpdate(ctx, game, box)
	}
}
