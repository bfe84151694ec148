package team

import (
	"context"
	"testing"

	"github.com/McKeyra/ball-in-the-6-sub004/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) seedTeams() (home, away *models.Team) {
	homeOut, err := s.repo.CreateTeam(context.Background(), &CreateTeamInput{Name: "Home Team"})
	s.Require().NoError(err)
	awayOut, err := s.repo.CreateTeam(context.Background(), &CreateTeamInput{Name: "Away Team"})
	s.Require().NoError(err)
	return homeOut.Team, awayOut.Team
}

func (s *RedisRepositoryTestSuite) TestCreateAndGetTeam() {
	output, err := s.repo.CreateTeam(context.Background(), &CreateTeamInput{Name: "Test Team"})
	s.Require().NoError(err)
	s.NotEmpty(output.Team.ID)

	retrieved, err := s.repo.GetTeam(context.Background(), &GetTeamInput{TeamID: output.Team.ID})
	s.Require().NoError(err)
	s.Equal("Test Team", retrieved.Name)
	s.Equal(0, retrieved.Wins)
}

func (s *RedisRepositoryTestSuite) TestGetTeam_NotFound() {
	_, err := s.repo.GetTeam(context.Background(), &GetTeamInput{TeamID: "no-such-team"})

	s.Require().ErrorIs(err, ErrTeamNotFound)
}

func (s *RedisRepositoryTestSuite) TestApplyResult_HomeWin() {
	home, away := s.seedTeams()

	err := s.repo.ApplyResult(context.Background(), &ApplyResultInput{
		HomeTeamID: home.ID,
		AwayTeamID: away.ID,
		Result:     GameResultHomeWin,
	})
	s.Require().NoError(err)

	updatedHome, err := s.repo.GetTeam(context.Background(), &GetTeamInput{TeamID: home.ID})
	s.Require().NoError(err)
	s.Equal(1, updatedHome.Wins)
	s.Equal(0, updatedHome.Losses)

	updatedAway, err := s.repo.GetTeam(context.Background(), &GetTeamInput{TeamID: away.ID})
	s.Require().NoError(err)
	s.Equal(0, updatedAway.Wins)
	s.Equal(1, updatedAway.Losses)
}

func (s *RedisRepositoryTestSuite) TestApplyResult_Tie() {
	home, away := s.seedTeams()

	err := s.repo.ApplyResult(context.Background(), &ApplyResultInput{
		HomeTeamID: home.ID,
		AwayTeamID: away.ID,
		Result:     GameResultTie,
	})
	s.Require().NoError(err)

	updatedHome, err := s.repo.GetTeam(context.Background(), &GetTeamInput{TeamID: home.ID})
	s.Require().NoError(err)
	updatedAway, err := s.repo.GetTeam(context.Background(), &GetTeamInput{TeamID: away.ID})
	s.Require().NoError(err)

	s.Equal(1, updatedHome.Ties)
	s.Equal(1, updatedAway.Ties)
	s.Equal(0, updatedHome.Wins)
	s.Equal(0, updatedAway.Losses)
}

func (s *RedisRepositoryTestSuite) TestApplyResult_UnknownResult() {
	home, away := s.seedTeams()

	err := s.repo.ApplyResult(context.Background(), &ApplyResultInput{
		HomeTeamID: home.ID,
		AwayTeamID: away.ID,
		Result:     GameResult("overtime_shootout"),
	})
	s.Require().Error(err)

	// Records unchanged on rejection
	updatedHome, err := s.repo.GetTeam(context.Background(), &GetTeamInput{TeamID: home.ID})
	s.Require().NoError(err)
	s.Equal(0, updatedHome.Wins)
	s.Equal(0, updatedHome.Losses)
	s.Equal(0, updatedHome.Ties)
}

func (s *RedisRepositoryTestSuite) TestApplyResult_MissingTeam() {
	home, _ := s.seedTeams()

	err := s.repo.ApplyResult(context.Background(), &ApplyResultInput{
		HomeTeamID: home.ID,
		AwayTeamID: "no-such-team",
		Result:     GameResultHomeWin,
	})

	s.Require().ErrorIs(err, ErrTeamNotFound)
}
