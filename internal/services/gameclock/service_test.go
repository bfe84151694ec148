package gameclock

import (
	"context"
	"errors"
	"testing"
	"time"

	clockMocks "github.com/McKeyra/ball-in-the-6-sub004/internal/common/clock/mocks"
	"github.com/McKeyra/ball-in-the-6-sub004/internal/models"
	gameRepo "github.com/McKeyra/ball-in-the-6-sub004/internal/repositories/game"
	gameMocks "github.com/McKeyra/ball-in-the-6-sub004/internal/repositories/game/mocks"
	"github.com/McKeyra/ball-in-the-6-sub004/internal/rules"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type GameClockServiceTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockGameRepo *gameMocks.MockRepository
	mockClock    *clockMocks.MockClock
	clockService Service
	ctx          context.Context

	// Test data
	testTime   time.Time
	testGameID string
	testRules  *rules.Ruleset
}

func (s *GameClockServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockGameRepo = gameMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)

	s.ctx = context.Background()

	s.testTime = time.Date(2025, 11, 2, 19, 0, 0, 0, time.UTC)
	s.testGameID = "test-game-id"
	s.testRules = rules.Default()

	// Set up the clock mock to return our test time
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	svc, err := New(&Config{
		Rules:    s.testRules,
		GameRepo: s.mockGameRepo,
		Clock:    s.mockClock,
	})
	s.Require().NoError(err)
	s.clockService = svc
}

func (s *GameClockServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGameClockServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GameClockServiceTestSuite))
}

// gameInState builds a live game fixture in the given clock state
func (s *GameClockServiceTestSuite) gameInState(state models.ClockState) *models.Game {
	return &models.Game{
		ID:           s.testGameID,
		HomeTeamID:   "home-team-id",
		AwayTeamID:   "away-team-id",
		Status:       models.GameStatusInProgress,
		Quarter:      1,
		GameClock:    600,
		ShotClock:    24,
		ClockState:   state,
		HomeTimeouts: 7,
		AwayTimeouts: 7,
		OnCourtHome:  []string{"h1", "h2", "h3", "h4", "h5"},
		OnCourtAway:  []string{"a1", "a2", "a3", "a4", "a5"},
	}
}

func (s *GameClockServiceTestSuite) expectGet(game *models.Game) {
	s.mockGameRepo.EXPECT().
		GetGame(gomock.Any(), &gameRepo.GetGameInput{GameID: s.testGameID}).
		Return(game, nil)
}

func (s *GameClockServiceTestSuite) expectSave() {
	s.mockGameRepo.EXPECT().
		SaveGame(gomock.Any(), gomock.Any()).
		Return(nil)
}

func (s *GameClockServiceTestSuite) TestNew_Validation() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{Clock: s.mockClock})
	s.ErrorIs(err, ErrNilGameRepo)

	_, err = New(&Config{GameRepo: s.mockGameRepo})
	s.ErrorIs(err, ErrNilClock)
}

func (s *GameClockServiceTestSuite) TestStartGame_HappyPath() {
	game := s.gameInState(models.ClockStatePreGame)
	game.GameClock = 0
	s.expectGet(game)
	s.expectSave()

	output, err := s.clockService.StartGame(s.ctx, &StartGameInput{GameID: s.testGameID})

	s.Require().NoError(err)
	s.Equal(models.ClockStateRunning, output.Game.ClockState)
	s.Equal(1, output.Game.Quarter)
	s.Equal(s.testRules.PeriodSeconds, output.Game.GameClock)
	s.Equal(s.testRules.ShotClockSeconds, output.Game.ShotClock)
	s.Equal(s.testTime, output.Game.UpdatedAt)
}

func (s *GameClockServiceTestSuite) TestStartGame_LineupsNotSet() {
	game := s.gameInState(models.ClockStatePreGame)
	game.OnCourtHome = []string{"h1", "h2"}
	s.expectGet(game)

	_, err := s.clockService.StartGame(s.ctx, &StartGameInput{GameID: s.testGameID})

	s.Require().ErrorIs(err, ErrLineupsNotSet)
}

func (s *GameClockServiceTestSuite) TestStartGame_AlreadyRunning() {
	s.expectGet(s.gameInState(models.ClockStateRunning))

	_, err := s.clockService.StartGame(s.ctx, &StartGameInput{GameID: s.testGameID})

	s.Require().ErrorIs(err, ErrInvalidClockState)
}

func (s *GameClockServiceTestSuite) TestStartGame_GameNotFound() {
	s.mockGameRepo.EXPECT().
		GetGame(gomock.Any(), &gameRepo.GetGameInput{GameID: s.testGameID}).
		Return(nil, gameRepo.ErrGameNotFound)

	_, err := s.clockService.StartGame(s.ctx, &StartGameInput{GameID: s.testGameID})

	s.Require().ErrorIs(err, gameRepo.ErrGameNotFound)
}

func (s *GameClockServiceTestSuite) TestPauseAndResume() {
	s.expectGet(s.gameInState(models.ClockStateRunning))
	s.expectSave()

	paused, err := s.clockService.PauseClock(s.ctx, &PauseClockInput{GameID: s.testGameID})
	s.Require().NoError(err)
	s.Equal(models.ClockStatePaused, paused.Game.ClockState)

	s.expectGet(s.gameInState(models.ClockStatePaused))
	s.expectSave()

	resumed, err := s.clockService.ResumeClock(s.ctx, &ResumeClockInput{GameID: s.testGameID})
	s.Require().NoError(err)
	s.Equal(models.ClockStateRunning, resumed.Game.ClockState)
}

func (s *GameClockServiceTestSuite) TestPauseClock_NotRunning() {
	s.expectGet(s.gameInState(models.ClockStatePaused))

	_, err := s.clockService.PauseClock(s.ctx, &PauseClockInput{GameID: s.testGameID})

	s.Require().ErrorIs(err, ErrInvalidClockState)
}

func (s *GameClockServiceTestSuite) TestAdvanceClock_RunsTimeOff() {
	s.expectGet(s.gameInState(models.ClockStateRunning))
	s.expectSave()

	output, err := s.clockService.AdvanceClock(s.ctx, &AdvanceClockInput{
		GameID:  s.testGameID,
		Seconds: 15,
	})

	s.Require().NoError(err)
	s.Equal(585, output.Game.GameClock)
	s.Equal(9, output.Game.ShotClock)
	s.False(output.PeriodEnded)
	s.Equal(models.ClockStateRunning, output.Game.ClockState)
}

func (s *GameClockServiceTestSuite) TestAdvanceClock_ZeroForcesPeriodBreak() {
	game := s.gameInState(models.ClockStateRunning)
	game.GameClock = 8
	s.expectGet(game)
	s.expectSave()

	output, err := s.clockService.AdvanceClock(s.ctx, &AdvanceClockInput{
		GameID:  s.testGameID,
		Seconds: 30,
	})

	s.Require().NoError(err)
	s.Equal(0, output.Game.GameClock)
	s.True(output.PeriodEnded)
	s.Equal(models.ClockStatePeriodBreak, output.Game.ClockState)
}

func (s *GameClockServiceTestSuite) TestAdvanceClock_NotRunning() {
	s.expectGet(s.gameInState(models.ClockStatePaused))

	_, err := s.clockService.AdvanceClock(s.ctx, &AdvanceClockInput{
		GameID:  s.testGameID,
		Seconds: 10,
	})

	s.Require().ErrorIs(err, ErrInvalidClockState)
}

func (s *GameClockServiceTestSuite) TestAdvanceClock_InvalidSeconds() {
	_, err := s.clockService.AdvanceClock(s.ctx, &AdvanceClockInput{
		GameID:  s.testGameID,
		Seconds: 0,
	})

	s.Require().ErrorIs(err, ErrInvalidSeconds)
}

func (s *GameClockServiceTestSuite) TestAdvancePeriod_ResetsFoulsAndClocks() {
	game := s.gameInState(models.ClockStatePeriodBreak)
	game.GameClock = 0
	game.HomeTeamFouls = 6
	game.AwayTeamFouls = 3
	game.HomeBonus = true
	s.expectGet(game)
	s.expectSave()

	output, err := s.clockService.AdvancePeriod(s.ctx, &AdvancePeriodInput{GameID: s.testGameID})

	s.Require().NoError(err)
	s.False(output.GameOver)
	s.Equal(2, output.Game.Quarter)
	s.Equal(models.ClockStateRunning, output.Game.ClockState)
	s.Equal(s.testRules.PeriodSeconds, output.Game.GameClock)
	s.Equal(s.testRules.ShotClockSeconds, output.Game.ShotClock)
	s.Equal(0, output.Game.HomeTeamFouls)
	s.Equal(0, output.Game.AwayTeamFouls)
	s.False(output.Game.HomeBonus)
	s.False(output.Game.AwayBonus)
}

func (s *GameClockServiceTestSuite) TestAdvancePeriod_FinalPeriodEndsGame() {
	game := s.gameInState(models.ClockStatePeriodBreak)
	game.Quarter = s.testRules.PeriodCount
	game.GameClock = 0
	s.expectGet(game)
	s.expectSave()

	output, err := s.clockService.AdvancePeriod(s.ctx, &AdvancePeriodInput{GameID: s.testGameID})

	s.Require().NoError(err)
	s.True(output.GameOver)
	s.Equal(models.ClockStateFinished, output.Game.ClockState)
	s.Equal(models.GameStatusFinished, output.Game.Status)
}

func (s *GameClockServiceTestSuite) TestAdvancePeriod_NotInBreak() {
	s.expectGet(s.gameInState(models.ClockStateRunning))

	_, err := s.clockService.AdvancePeriod(s.ctx, &AdvancePeriodInput{GameID: s.testGameID})

	s.Require().ErrorIs(err, ErrInvalidClockState)
}

func (s *GameClockServiceTestSuite) TestCallTimeout_DecrementsAndPauses() {
	s.expectGet(s.gameInState(models.ClockStateRunning))
	s.expectSave()

	output, err := s.clockService.CallTimeout(s.ctx, &CallTimeoutInput{
		GameID:   s.testGameID,
		TeamSide: models.TeamSideAway,
	})

	s.Require().NoError(err)
	s.Equal(6, output.Remaining)
	s.Equal(6, output.Game.AwayTimeouts)
	s.Equal(7, output.Game.HomeTimeouts)
	s.Equal(models.ClockStatePaused, output.Game.ClockState)
}

func (s *GameClockServiceTestSuite) TestCallTimeout_NoneRemaining() {
	game := s.gameInState(models.ClockStateRunning)
	game.HomeTimeouts = 0
	s.expectGet(game)

	_, err := s.clockService.CallTimeout(s.ctx, &CallTimeoutInput{
		GameID:   s.testGameID,
		TeamSide: models.TeamSideHome,
	})

	s.Require().ErrorIs(err, ErrNoTimeoutsRemaining)
}

func (s *GameClockServiceTestSuite) TestResetShotClock_FullReset() {
	game := s.gameInState(models.ClockStateRunning)
	game.ShotClock = 3
	s.expectGet(game)
	s.expectSave()

	output, err := s.clockService.ResetShotClock(s.ctx, &ResetShotClockInput{
		GameID: s.testGameID,
		Reason: ResetReasonDefensiveRebound,
	})

	s.Require().NoError(err)
	s.Equal(s.testRules.ShotClockSeconds, output.Game.ShotClock)
}

func (s *GameClockServiceTestSuite) TestResetShotClock_OffensiveReboundShortReset() {
	game := s.gameInState(models.ClockStateRunning)
	game.ShotClock = 3
	s.expectGet(game)
	s.expectSave()

	output, err := s.clockService.ResetShotClock(s.ctx, &ResetShotClockInput{
		GameID: s.testGameID,
		Reason: ResetReasonOffensiveRebound,
	})

	s.Require().NoError(err)
	s.Equal(s.testRules.ShotClockShortSeconds, output.Game.ShotClock)
}

func (s *GameClockServiceTestSuite) TestResetShotClock_OffensiveReboundNeverExtends() {
	game := s.gameInState(models.ClockStateRunning)
	game.ShotClock = 20
	s.expectGet(game)
	s.expectSave()

	output, err := s.clockService.ResetShotClock(s.ctx, &ResetShotClockInput{
		GameID: s.testGameID,
		Reason: ResetReasonOffensiveRebound,
	})

	s.Require().NoError(err)
	s.Equal(20, output.Game.ShotClock)
}

func (s *GameClockServiceTestSuite) TestResetShotClock_UnknownReason() {
	s.expectGet(s.gameInState(models.ClockStateRunning))

	_, err := s.clockService.ResetShotClock(s.ctx, &ResetShotClockInput{
		GameID: s.testGameID,
		Reason: ShotClockResetReason("jump_ball"),
	})

	s.Require().ErrorIs(err, ErrUnknownResetReason)
}

func (s *GameClockServiceTestSuite) TestSaveError_Surfaces() {
	expectedErr := errors.New("redis unavailable")
	s.expectGet(s.gameInState(models.ClockStateRunning))
	s.mockGameRepo.EXPECT().
		SaveGame(gomock.Any(), gomock.Any()).
		Return(expectedErr)

	_, err := s.clockService.PauseClock(s.ctx, &PauseClockInput{GameID: s.testGameID})

	s.Require().ErrorIs(err, expectedErr)
}
