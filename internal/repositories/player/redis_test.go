package player

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

func (s *RedisRepositoryTestSuite) TestCreateAndGetPlayer() {
	output, err := s.repo.CreatePlayer(context.Background(), &CreatePlayerInput{
		GameID:             "test-game-id",
		TeamID:             "home-team-id",
		TeamSide:           models.TeamSideHome,
		Name:               "Test Player",
		Number:             23,
		PersistentPlayerID: "career-id",
	})

	s.Require().NoError(err)
	s.NotEmpty(output.Player.ID)
	s.False(output.Player.StatsAggregated)

	retrieved, err := s.repo.GetPlayer(context.Background(), &GetPlayerInput{
		PlayerID: output.Player.ID,
	})
	s.Require().NoError(err)
	s.Equal("Test Player", retrieved.Name)
	s.Equal(23, retrieved.Number)
	s.Equal(models.TeamSideHome, retrieved.TeamSide)
	s.Equal("career-id", retrieved.PersistentPlayerID)
}

func (s *RedisRepositoryTestSuite) TestGetPlayer_NotFound() {
	_, err := s.repo.GetPlayer(context.Background(), &GetPlayerInput{
		PlayerID: "no-such-player",
	})

	s.Require().ErrorIs(err, ErrPlayerNotFound)
}

func (s *RedisRepositoryTestSuite) TestListPlayersForGame() {
	for i := 0; i < 3; i++ {
		_, err := s.repo.CreatePlayer(context.Background(), &CreatePlayerInput{
			GameID:   "test-game-id",
			TeamID:   "home-team-id",
			TeamSide: models.TeamSideHome,
			Name:     "Player",
			Number:   i,
		})
		s.Require().NoError(err)
	}
	_, err := s.repo.CreatePlayer(context.Background(), &CreatePlayerInput{
		GameID:   "other-game-id",
		TeamID:   "home-team-id",
		TeamSide: models.TeamSideHome,
		Name:     "Other Player",
	})
	s.Require().NoError(err)

	output, err := s.repo.ListPlayersForGame(context.Background(), &ListPlayersForGameInput{
		GameID: "test-game-id",
	})
	s.Require().NoError(err)
	s.Len(output.Players, 3)
}

func (s *RedisRepositoryTestSuite) TestSavePersistentAndGet() {
	record := &models.PersistentPlayer{
		ID:     "career-id",
		Name:   "Test Player",
		Points: 120,
	}

	err := s.repo.SavePersistentPlayer(context.Background(), &SavePersistentPlayerInput{
		PersistentPlayer: record,
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetPersistentPlayer(context.Background(), &GetPersistentPlayerInput{
		PersistentPlayerID: "career-id",
	})
	s.Require().NoError(err)
	s.Equal(120, retrieved.Points)
}

func (s *RedisRepositoryTestSuite) TestGetPersistentPlayer_NotFound() {
	_, err := s.repo.GetPersistentPlayer(context.Background(), &GetPersistentPlayerInput{
		PersistentPlayerID: "no-such-record",
	})

	s.Require().ErrorIs(err, ErrPersistentPlayerNotFound)
}

func (s *RedisRepositoryTestSuite) TestApplyCareerStats() {
	created, err := s.repo.CreatePlayer(context.Background(), &CreatePlayerInput{
		GameID:             "test-game-id",
		TeamID:             "home-team-id",
		TeamSide:           models.TeamSideHome,
		Name:               "Test Player",
		PersistentPlayerID: "career-id",
	})
	s.Require().NoError(err)

	s.Require().NoError(s.repo.SavePersistentPlayer(context.Background(), &SavePersistentPlayerInput{
		PersistentPlayer: &models.PersistentPlayer{ID: "career-id", Name: "Test Player", Points: 100, GamesPlayed: 9},
	}))

	// Fold one game's worth of stats and flip the guard flag together
	player := created.Player
	player.StatsAggregated = true
	err = s.repo.ApplyCareerStats(context.Background(), &ApplyCareerStatsInput{
		Player: player,
		PersistentPlayer: &models.PersistentPlayer{
			ID:          "career-id",
			Name:        "Test Player",
			Points:      118,
			GamesPlayed: 10,
		},
	})
	s.Require().NoError(err)

	retrievedPlayer, err := s.repo.GetPlayer(context.Background(), &GetPlayerInput{PlayerID: player.ID})
	s.Require().NoError(err)
	s.True(retrievedPlayer.StatsAggregated)

	retrievedRecord, err := s.repo.GetPersistentPlayer(context.Background(), &GetPersistentPlayerInput{
		PersistentPlayerID: "career-id",
	})
	s.Require().NoError(err)
	s.Equal(118, retrievedRecord.Points)
	s.Equal(10, retrievedRecord.GamesPlayed)
}
