package lineup

import (
	"context"
	"fmt"

	"github.com/McKeyra/ball-in-the-6-sub004/internal/common/clock"
	"github.com/McKeyra/ball-in-the-6-sub004/internal/models"
	eventRepo "github.com/McKeyra/ball-in-the-6-sub004/internal/repositories/event"
	gameRepo "github.com/McKeyra/ball-in-the-6-sub004/internal/repositories/game"
	playerRepo "github.com/McKeyra/ball-in-the-6-sub004/internal/repositories/player"
	"github.com/McKeyra/ball-in-the-6-sub004/internal/rules"
	"github.com/McKeyra/ball-in-the-6-sub004/internal/stats"
)

// service implements the Service interface
type service struct {
	rules      *rules.Ruleset
	gameRepo   gameRepo.Repository
	eventRepo  eventRepo.Repository
	playerRepo playerRepo.Repository
	aggregator *stats.Aggregator
	clock      clock.Clock
}

// New creates a new lineup service
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
		rules:      rs,
		gameRepo:   cfg.GameRepo,
		eventRepo:  cfg.EventRepo,
		playerRepo: cfg.PlayerRepo,
		aggregator: cfg.Aggregator,
		clock:      cfg.Clock,
	}, nil
}

// Toggle flips a player in or out of a draft set. The draft is a plain
// slice owned by the caller; commit is where validation happens.
func (s *service) Toggle(input *ToggleInput) *ToggleOutput {
	for i, id := range input.Draft {
		if id == input.PlayerID {
			draft := make([]string, 0, len(input.Draft)-1)
			draft = append(draft, input.Draft[:i]...)
			draft = append(draft, input.Draft[i+1:]...)
			return &ToggleOutput{Draft: draft}
		}
	}

	draft := make([]string, len(input.Draft), len(input.Draft)+1)
	copy(draft, input.Draft)
	draft = append(draft, input.PlayerID)

	return &ToggleOutput{Draft: draft, Added: true}
}

// CommitLineups validates both sides and persists them in one write.
// Any rejection leaves the stored lineups untouched. The first
// successful commit on a scheduled game moves it to in_progress.
func (s *service) CommitLineups(ctx context.Context, input *CommitLineupsInput) (*CommitLineupsOutput, error) {
	game, err := s.gameRepo.GetGame(ctx, &gameRepo.GetGameInput{
		GameID: input.GameID,
	})
	if err != nil {
		return nil, err
	}

	if game.Status == models.GameStatusFinished {
		return nil, ErrGameFinished
	}

	if len(input.Home) != s.rules.PlayersOnCourt {
		return nil, ErrHomeLineupSize
	}

	if len(input.Away) != s.rules.PlayersOnCourt {
		return nil, ErrAwayLineupSize
	}

	roster, err := s.loadRoster(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	fouledOut, err := s.fouledOutPlayers(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if err := s.validateSide(input.Home, models.TeamSideHome, roster, fouledOut); err != nil {
		return nil, err
	}

	if err := s.validateSide(input.Away, models.TeamSideAway, roster, fouledOut); err != nil {
		return nil, err
	}

	game.OnCourtHome = input.Home
	game.OnCourtAway = input.Away
	if game.Status == models.GameStatusScheduled {
		game.Status = models.GameStatusInProgress
	}
	game.UpdatedAt = s.clock.Now()

	if err := s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{Game: game}); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	return &CommitLineupsOutput{Game: game}, nil
}

func (s *service) loadRoster(ctx context.Context, gameID string) (map[string]*models.Player, error) {
	listOutput, err := s.playerRepo.ListPlayersForGame(ctx, &playerRepo.ListPlayersForGameInput{
		GameID: gameID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}

	roster := make(map[string]*models.Player, len(listOutput.Players))
	for _, p := range listOutput.Players {
		roster[p.ID] = p
	}

	return roster, nil
}

func (s *service) fouledOutPlayers(ctx context.Context, gameID string) (map[string]bool, error) {
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

	fouledOut := make(map[string]bool)
	for playerID, line := range box.Players {
		if s.aggregator.FouledOut(line) {
			fouledOut[playerID] = true
		}
	}

	return fouledOut, nil
}

func (s *service) validateSide(lineup []string, side models.TeamSide, roster map[string]*models.Player, fouledOut map[string]bool) error {
	seen := make(map[string]bool, len(lineup))
	for _, playerID := range lineup {
		if seen[playerID] {
			return ErrDuplicatePlayer
		}
		seen[playerID] = true

		player, ok := roster[playerID]
		if !ok || player.TeamSide != side {
			return ErrPlayerNotOnRoster
		}

		if fouledOut[playerID] {
			return ErrPlayerFouledOut
		}
	}

	return nil
}
