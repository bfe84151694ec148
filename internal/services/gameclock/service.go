package gameclock

import (
	"context"
	"fmt"

	"github.com/McKeyra/ball-in-the-6-sub004/internal/common/clock"
	"github.com/McKeyra/ball-in-the-6-sub004/internal/models"
	gameRepo "github.com/McKeyra/ball-in-the-6-sub004/internal/repositories/game"
	"github.com/McKeyra/ball-in-the-6-sub004/internal/rules"
)

// service implements the Service interface
type service struct {
	rules    *rules.Ruleset
	gameRepo gameRepo.Repository
	clock    clock.Clock
}

// New creates a new game clock service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.GameRepo == nil {
		return nil, ErrNilGameRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	rs := cfg.Rules
	if rs == nil {
		rs = rules.Default()
	}

	return &service{
		rules:    rs,
		gameRepo: cfg.GameRepo,
		clock:    cfg.Clock,
	}, nil
}

func (s *service) getGame(ctx context.Context, gameID string) (*models.Game, error) {
	game, err := s.gameRepo.GetGame(ctx, &gameRepo.GetGameInput{
		GameID: gameID,
	})
	if err != nil {
		return nil, err
	}
	return game, nil
}

func (s *service) saveGame(ctx context.Context, game *models.Game) error {
	game.UpdatedAt = s.clock.Now()
	return s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{
		Game: game,
	})
}

// StartGame begins the first period. Lineups must have been committed,
// which is what moved the game into in_progress.
func (s *service) StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error) {
	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if game.ClockState != models.ClockStatePreGame {
		return nil, ErrInvalidClockState
	}

	if len(game.OnCourtHome) != s.rules.PlayersOnCourt || len(game.OnCourtAway) != s.rules.PlayersOnCourt {
		return nil, ErrLineupsNotSet
	}

	game.ClockState = models.ClockStateRunning
	game.Quarter = 1
	game.GameClock = s.rules.PeriodSeconds
	game.ShotClock = s.rules.ShotClockSeconds

	if err := s.saveGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	return &StartGameOutput{Game: game}, nil
}

// PauseClock stops a running clock
func (s *service) PauseClock(ctx context.Context, input *PauseClockInput) (*PauseClockOutput, error) {
	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if game.ClockState != models.ClockStateRunning {
		return nil, ErrInvalidClockState
	}

	game.ClockState = models.ClockStatePaused

	if err := s.saveGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	return &PauseClockOutput{Game: game}, nil
}

// ResumeClock restarts a paused clock
func (s *service) ResumeClock(ctx context.Context, input *ResumeClockInput) (*ResumeClockOutput, error) {
	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if game.ClockState != models.ClockStatePaused {
		return nil, ErrInvalidClockState
	}

	game.ClockState = models.ClockStateRunning

	if err := s.saveGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	return &ResumeClockOutput{Game: game}, nil
}

// AdvanceClock runs seconds off the clock. The clock never goes below
// zero; reaching zero forces the transition out of running.
func (s *service) AdvanceClock(ctx context.Context, input *AdvanceClockInput) (*AdvanceClockOutput, error) {
	if input.Seconds <= 0 {
		return nil, ErrInvalidSeconds
	}

	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if game.ClockState != models.ClockStateRunning {
		return nil, ErrInvalidClockState
	}

	game.GameClock -= input.Seconds
	if game.GameClock < 0 {
		game.GameClock = 0
	}

	game.ShotClock -= input.Seconds
	if game.ShotClock < 0 {
		game.ShotClock = 0
	}

	periodEnded := false
	if game.GameClock == 0 {
		game.ClockState = models.ClockStatePeriodBreak
		periodEnded = true
	}

	if err := s.saveGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	return &AdvanceClockOutput{Game: game, PeriodEnded: periodEnded}, nil
}

// AdvancePeriod begins the next period, or ends the game when the final
// period's break is advanced. A new period resets team fouls, bonus
// flags and both clocks.
func (s *service) AdvancePeriod(ctx context.Context, input *AdvancePeriodInput) (*AdvancePeriodOutput, error) {
	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if game.ClockState != models.ClockStatePeriodBreak {
		return nil, ErrInvalidClockState
	}

	if game.Quarter >= s.rules.PeriodCount {
		game.ClockState = models.ClockStateFinished
		game.Status = models.GameStatusFinished

		if err := s.saveGame(ctx, game); err != nil {
			return nil, fmt.Errorf("failed to save game: %w", err)
		}

		return &AdvancePeriodOutput{Game: game, GameOver: true}, nil
	}

	game.Quarter++
	game.GameClock = s.rules.PeriodSeconds
	game.ShotClock = s.rules.ShotClockSeconds
	game.ClockState = models.ClockStateRunning
	game.HomeTeamFouls = 0
	game.AwayTeamFouls = 0
	game.HomeBonus = false
	game.AwayBonus = false

	if err := s.saveGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	return &AdvancePeriodOutput{Game: game}, nil
}

// CallTimeout charges a timeout and pauses a running clock
func (s *service) CallTimeout(ctx context.Context, input *CallTimeoutInput) (*CallTimeoutOutput, error) {
	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if game.ClockState != models.ClockStateRunning && game.ClockState != models.ClockStatePaused {
		return nil, ErrInvalidClockState
	}

	remaining := game.HomeTimeouts
	if input.TeamSide == models.TeamSideAway {
		remaining = game.AwayTimeouts
	}

	if remaining <= 0 {
		return nil, ErrNoTimeoutsRemaining
	}

	if input.TeamSide == models.TeamSideAway {
		game.AwayTimeouts--
		remaining = game.AwayTimeouts
	} else {
		game.HomeTimeouts--
		remaining = game.HomeTimeouts
	}

	if game.ClockState == models.ClockStateRunning {
		game.ClockState = models.ClockStatePaused
	}

	if err := s.saveGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	return &CallTimeoutOutput{Game: game, Remaining: remaining}, nil
}

// ResetShotClock resets the shot clock according to the reset reason
func (s *service) ResetShotClock(ctx context.Context, input *ResetShotClockInput) (*ResetShotClockOutput, error) {
	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if game.ClockState != models.ClockStateRunning && game.ClockState != models.ClockStatePaused {
		return nil, ErrInvalidClockState
	}

	switch input.Reason {
	case ResetReasonMadeBasket, ResetReasonDefensiveRebound, ResetReasonViolation:
		game.ShotClock = s.rules.ShotClockSeconds
	case ResetReasonOffensiveRebound:
		// Possession continues, so only the short reset applies; never
		// extend a shot clock that already shows more
		if game.ShotClock < s.rules.ShotClockShortSeconds {
			game.ShotClock = s.rules.ShotClockShortSeconds
		}
	default:
		return nil, ErrUnknownResetReason
	}

	if err := s.saveGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	return &ResetShotClockOutput{Game: game}, nil
}
