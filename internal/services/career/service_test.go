package career

import (
	"context"
	"testing"
	"time"

	clockMocks "github.com/McKeyra/ball-in-the-6-sub004/internal/common/clock/mocks"
	uuidMocks "github.com/McKeyra/ball-in-the-6-sub004/internal/common/uuid/mocks"
	"github.com/McKeyra/ball-in-the-6-sub004/internal/models"
	eventRepo "github.com/McKeyra/ball-in-the-6-sub004/internal/repositories/event"
	eventMocks "github.com/McKeyra/ball-in-the-6-sub004/internal/repositories/event/mocks"
	gameRepo "github.com/McKeyra/ball-in-the-6-sub004/internal/repositories/game"
	gameMocks "github.com/McKeyra/ball-in-the-6-sub004/internal/repositories/game/mocks"
	playerRepo "github.com/McKeyra/ball-in-the-6-sub004/internal/repositories/player"
	playerMocks "github.com/McKeyra/ball-in-the-6-sub004/internal/repositories/player/mocks"
	teamRepo "github.com/McKeyra/ball-in-the-6-sub004/internal/repositories/team"
	teamMocks "github.com/McKeyra/ball-in-the-6-sub004/internal/repositories/team/mocks"
	"github.com/McKeyra/ball-in-the-6-sub004/internal/rules"
	"github.com/McKeyra/ball-in-the-6-sub004/internal/stats"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CareerServiceTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockGameRepo   *gameMocks.MockRepository
	mockEventRepo  *eventMocks.MockRepository
	mockPlayerRepo *playerMocks.MockRepository
	mockTeamRepo   *teamMocks.MockRepository
	mockClock      *clockMocks.MockClock
	mockUUID       *uuidMocks.MockUUID
	careerService  Service
	ctx            context.Context

	// Test data
	testTime   time.Time
	testGameID string
}

func (s *CareerServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockGameRepo = gameMocks.NewMockRepository(s.mockCtrl)
	s.mockEventRepo = eventMocks.NewMockRepository(s.mockCtrl)
	s.mockPlayerRepo = playerMocks.NewMockRepository(s.mockCtrl)
	s.mockTeamRepo = teamMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)

	s.ctx = context.Background()

	s.testTime = time.Date(2025, 11, 2, 21, 45, 0, 0, time.UTC)
	s.testGameID = "test-game-id"

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	svc, err := New(&Config{
		GameRepo:   s.mockGameRepo,
		EventRepo:  s.mockEventRepo,
		PlayerRepo: s.mockPlayerRepo,
		TeamRepo:   s.mockTeamRepo,
		Aggregator: stats.New(&stats.Config{Rules: rules.Default()}),
		Clock:      s.mockClock,
		UUID:       s.mockUUID,
	})
	s.Require().NoError(err)
	s.careerService = svc
}

func (s *CareerServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCareerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CareerServiceTestSuite))
}

// finishedGame builds a completed game the home side won
func (s *CareerServiceTestSuite) finishedGame() *models.Game {
	return &models.Game{
		ID:         s.testGameID,
		HomeTeamID: "home-team-id",
		AwayTeamID: "away-team-id",
		Status:     models.GameStatusFinished,
		ClockState: models.ClockStateFinished,
		Quarter:    4,
		HomeScore:  5,
		AwayScore:  2,
	}
}

// gameLog builds a log matching the finishedGame scores: h1 scores 5,
// a1 scores 2, a1 commits a foul
func (s *CareerServiceTestSuite) gameLog() []*models.GameEvent {
	return []*models.GameEvent{
		{ID: "event-1", GameID: s.testGameID, PlayerID: "h1", TeamSide: models.TeamSideHome, Type: models.EventShot3PtMake, Quarter: 1},
		{ID: "event-2", GameID: s.testGameID, PlayerID: "a1", TeamSide: models.TeamSideAway, Type: models.EventShot2PtMake, Quarter: 2},
		{ID: "event-3", GameID: s.testGameID, PlayerID: "h1", TeamSide: models.TeamSideHome, Type: models.EventShot2PtMake, Quarter: 3},
		{ID: "event-4", GameID: s.testGameID, PlayerID: "a1", TeamSide: models.TeamSideAway, Type: models.EventFoulPersonal, Quarter: 4},
	}
}

func (s *CareerServiceTestSuite) expectGame(game *models.Game) {
	s.mockGameRepo.EXPECT().
		GetGame(gomock.Any(), &gameRepo.GetGameInput{GameID: s.testGameID}).
		Return(game, nil)
}

func (s *CareerServiceTestSuite) expectEvents() {
	s.mockEventRepo.EXPECT().
		ListEvents(gomock.Any(), &eventRepo.ListEventsInput{GameID: s.testGameID}).
		Return(&eventRepo.ListEventsOutput{Events: s.gameLog()}, nil)
}

func (s *CareerServiceTestSuite) expectPlayers(players []*models.Player) {
	s.mockPlayerRepo.EXPECT().
		ListPlayersForGame(gomock.Any(), &playerRepo.ListPlayersForGameInput{GameID: s.testGameID}).
		Return(&playerRepo.ListPlayersForGameOutput{Players: players}, nil)
}

func (s *CareerServiceTestSuite) TestCreatePersistentPlayer() {
	s.mockUUID.EXPECT().NewUUID().Return("career-new-id")
	s.mockPlayerRepo.EXPECT().
		SavePersistentPlayer(gomock.Any(), &playerRepo.SavePersistentPlayerInput{
			PersistentPlayer: &models.PersistentPlayer{
				ID:   "career-new-id",
				Name: "Vince",
			},
		}).
		Return(nil)

	output, err := s.careerService.CreatePersistentPlayer(s.ctx, &CreatePersistentPlayerInput{Name: "Vince"})

	s.Require().NoError(err)
	s.Equal("career-new-id", output.PersistentPlayer.ID)
	s.Equal("Vince", output.PersistentPlayer.Name)
	s.Equal(0, output.PersistentPlayer.GamesPlayed)
}

func (s *CareerServiceTestSuite) TestCreatePersistentPlayer_NameRequired() {
	_, err := s.careerService.CreatePersistentPlayer(s.ctx, &CreatePersistentPlayerInput{})

	s.Require().ErrorIs(err, ErrNameRequired)
}

func (s *CareerServiceTestSuite) TestGetPersistentPlayer() {
	s.mockPlayerRepo.EXPECT().
		GetPersistentPlayer(gomock.Any(), &playerRepo.GetPersistentPlayerInput{PersistentPlayerID: "career-h1"}).
		Return(&models.PersistentPlayer{ID: "career-h1", Name: "Vince", GamesPlayed: 3}, nil)

	output, err := s.careerService.GetPersistentPlayer(s.ctx, &GetPersistentPlayerInput{PersistentPlayerID: "career-h1"})

	s.Require().NoError(err)
	s.Equal(3, output.PersistentPlayer.GamesPlayed)
}

func (s *CareerServiceTestSuite) TestGetPersistentPlayer_NotFound() {
	s.mockPlayerRepo.EXPECT().
		GetPersistentPlayer(gomock.Any(), gomock.Any()).
		Return(nil, playerRepo.ErrPersistentPlayerNotFound)

	_, err := s.careerService.GetPersistentPlayer(s.ctx, &GetPersistentPlayerInput{PersistentPlayerID: "missing"})

	s.Require().ErrorIs(err, playerRepo.ErrPersistentPlayerNotFound)
}

func (s *CareerServiceTestSuite) TestFinalizeGame_FoldsLinkedPlayers() {
	s.expectGame(s.finishedGame())
	s.expectEvents()
	s.expectPlayers([]*models.Player{
		{ID: "h1", GameID: s.testGameID, TeamSide: models.TeamSideHome, PersistentPlayerID: "career-h1"},
		{ID: "a1", GameID: s.testGameID, TeamSide: models.TeamSideAway, PersistentPlayerID: "career-a1"},
	})

	s.mockPlayerRepo.EXPECT().
		GetPersistentPlayer(gomock.Any(), &playerRepo.GetPersistentPlayerInput{PersistentPlayerID: "career-h1"}).
		Return(&models.PersistentPlayer{ID: "career-h1", GamesPlayed: 3, Points: 40}, nil)
	s.mockPlayerRepo.EXPECT().
		GetPersistentPlayer(gomock.Any(), &playerRepo.GetPersistentPlayerInput{PersistentPlayerID: "career-a1"}).
		Return(&models.PersistentPlayer{ID: "career-a1"}, nil)

	var applied []*playerRepo.ApplyCareerStatsInput
	s.mockPlayerRepo.EXPECT().
		ApplyCareerStats(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *playerRepo.ApplyCareerStatsInput) error {
			applied = append(applied, input)
			return nil
		}).
		Times(2)

	s.mockTeamRepo.EXPECT().
		ApplyResult(gomock.Any(), &teamRepo.ApplyResultInput{
			HomeTeamID: "home-team-id",
			AwayTeamID: "away-team-id",
			Result:     teamRepo.GameResultHomeWin,
		}).
		Return(nil)
	s.mockGameRepo.EXPECT().
		SaveGame(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *gameRepo.SaveGameInput) error {
			s.True(input.Game.RecordsApplied)
			return nil
		})

	output, err := s.careerService.FinalizeGame(s.ctx, &FinalizeGameInput{GameID: s.testGameID})

	s.Require().NoError(err)
	s.Equal(2, output.PlayersAggregated)
	s.True(output.RecordsApplied)

	s.Require().Len(applied, 2)
	h1 := applied[0]
	s.True(h1.Player.StatsAggregated)
	s.Equal(4, h1.PersistentPlayer.GamesPlayed)
	s.Equal(45, h1.PersistentPlayer.Points)
	s.Equal(2, h1.PersistentPlayer.FieldGoalsMade)
	s.Equal(1, h1.PersistentPlayer.ThreePointersMade)

	a1 := applied[1]
	s.Equal(1, a1.PersistentPlayer.GamesPlayed)
	s.Equal(2, a1.PersistentPlayer.Points)
	s.Equal(1, a1.PersistentPlayer.Fouls)
}

func (s *CareerServiceTestSuite) TestFinalizeGame_SkipsGuestsAndAlreadyAggregated() {
	s.expectGame(s.finishedGame())
	s.expectEvents()
	s.expectPlayers([]*models.Player{
		{ID: "h1", GameID: s.testGameID, TeamSide: models.TeamSideHome},
		{ID: "a1", GameID: s.testGameID, TeamSide: models.TeamSideAway, PersistentPlayerID: "career-a1", StatsAggregated: true},
	})

	s.mockTeamRepo.EXPECT().ApplyResult(gomock.Any(), gomock.Any()).Return(nil)
	s.mockGameRepo.EXPECT().SaveGame(gomock.Any(), gomock.Any()).Return(nil)

	output, err := s.careerService.FinalizeGame(s.ctx, &FinalizeGameInput{GameID: s.testGameID})

	s.Require().NoError(err)
	s.Equal(0, output.PlayersAggregated)
	s.True(output.RecordsApplied)
}

func (s *CareerServiceTestSuite) TestFinalizeGame_SecondCallIsNoOp() {
	// Player rows are flagged and the game's records guard is set; no
	// career or team write may happen again
	game := s.finishedGame()
	game.RecordsApplied = true
	s.expectGame(game)
	s.expectEvents()
	s.expectPlayers([]*models.Player{
		{ID: "h1", GameID: s.testGameID, TeamSide: models.TeamSideHome, PersistentPlayerID: "career-h1", StatsAggregated: true},
		{ID: "a1", GameID: s.testGameID, TeamSide: models.TeamSideAway, PersistentPlayerID: "career-a1", StatsAggregated: true},
	})

	output, err := s.careerService.FinalizeGame(s.ctx, &FinalizeGameInput{GameID: s.testGameID})

	s.Require().NoError(err)
	s.Equal(0, output.PlayersAggregated)
	s.False(output.RecordsApplied)
}

func (s *CareerServiceTestSuite) TestFinalizeGame_TieUpdatesBothRecords() {
	game := s.finishedGame()
	game.HomeScore = 50
	game.AwayScore = 50
	s.expectGame(game)
	s.expectEvents()
	s.expectPlayers(nil)

	s.mockTeamRepo.EXPECT().
		ApplyResult(gomock.Any(), &teamRepo.ApplyResultInput{
			HomeTeamID: "home-team-id",
			AwayTeamID: "away-team-id",
			Result:     teamRepo.GameResultTie,
		}).
		Return(nil)
	s.mockGameRepo.EXPECT().SaveGame(gomock.Any(), gomock.Any()).Return(nil)

	output, err := s.careerService.FinalizeGame(s.ctx, &FinalizeGameInput{GameID: s.testGameID})

	s.Require().NoError(err)
	s.True(output.RecordsApplied)
}

func (s *CareerServiceTestSuite) TestFinalizeGame_GameNotFinished() {
	game := s.finishedGame()
	game.Status = models.GameStatusInProgress
	s.expectGame(game)

	_, err := s.careerService.FinalizeGame(s.ctx, &FinalizeGameInput{GameID: s.testGameID})

	s.Require().ErrorIs(err, ErrGameNotFinished)
}

func (s *CareerServiceTestSuite) TestFinalizeGame_GameNotFound() {
	s.mockGameRepo.EXPECT().
		GetGame(gomock.Any(), &gameRepo.GetGameInput{GameID: s.testGameID}).
		Return(nil, gameRepo.ErrGameNotFound)

	_, err := s.careerService.FinalizeGame(s.ctx, &FinalizeGameInput{GameID: s.testGameID})

	s.Require().ErrorIs(err, gameRepo.ErrGameNotFound)
}
