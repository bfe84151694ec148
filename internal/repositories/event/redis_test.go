package event

import (
	"context"
	"testing"
	"time"

	"github.com/McKeyra/ball-in-the-6-sub004/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
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

	s.testNow = time.Date(2025, 11, 2, 19, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) append(n int, playerID string, t models.EventType) *models.GameEvent {
	output, err := s.repo.AppendEvent(context.Background(), &AppendEventInput{
		GameID:    "test-game-id",
		PlayerID:  playerID,
		TeamSide:  models.TeamSideHome,
		Type:      t,
		Quarter:   1,
		GameClock: 600 - n,
		CreatedAt: s.testNow.Add(time.Duration(n) * time.Second),
	})
	s.Require().NoError(err)
	s.Require().NotNil(output.Event)
	return output.Event
}

func (s *RedisRepositoryTestSuite) TestAppendAndListEvents() {
	first := s.append(0, "p1", models.EventShot2PtMake)
	second := s.append(1, "p2", models.EventReboundDef)
	third := s.append(2, "p1", models.EventAssist)

	output, err := s.repo.ListEvents(context.Background(), &ListEventsInput{
		GameID: "test-game-id",
	})
	s.Require().NoError(err)
	s.Require().Len(output.Events, 3)

	// Ascending log order
	s.Equal(first.ID, output.Events[0].ID)
	s.Equal(second.ID, output.Events[1].ID)
	s.Equal(third.ID, output.Events[2].ID)

	s.Equal(models.EventShot2PtMake, output.Events[0].Type)
	s.Equal("p2", output.Events[1].PlayerID)
	s.Equal(1, output.Events[2].Quarter)
}

func (s *RedisRepositoryTestSuite) TestAppend_SameInstantKeepsInsertionOrder() {
	// Events created in the same instant still list in append order and
	// "newest" is the last one appended; the log is ordered by a
	// per-game sequence, not by timestamp
	events := make([]*models.GameEvent, 0, 10)
	for i := 0; i < 10; i++ {
		output, err := s.repo.AppendEvent(context.Background(), &AppendEventInput{
			GameID:    "test-game-id",
			PlayerID:  "p1",
			TeamSide:  models.TeamSideHome,
			Type:      models.EventAssist,
			Quarter:   1,
			GameClock: 600,
			CreatedAt: s.testNow,
		})
		s.Require().NoError(err)
		events = append(events, output.Event)
	}

	output, err := s.repo.ListEvents(context.Background(), &ListEventsInput{
		GameID: "test-game-id",
	})
	s.Require().NoError(err)
	s.Require().Len(output.Events, 10)
	for i, event := range events {
		s.Equal(event.ID, output.Events[i].ID)
	}

	last, err := s.repo.GetLastEvent(context.Background(), &GetLastEventInput{
		GameID: "test-game-id",
	})
	s.Require().NoError(err)
	s.Equal(events[9].ID, last.ID)
}

func (s *RedisRepositoryTestSuite) TestAppendGeneratesUniqueIDs() {
	first := s.append(0, "p1", models.EventShot2PtMake)
	second := s.append(1, "p1", models.EventShot2PtMake)

	s.NotEqual(first.ID, second.ID)
}

func (s *RedisRepositoryTestSuite) TestListEvents_EmptyLog() {
	output, err := s.repo.ListEvents(context.Background(), &ListEventsInput{
		GameID: "no-such-game",
	})

	s.Require().NoError(err)
	s.Empty(output.Events)
}

func (s *RedisRepositoryTestSuite) TestGetLastEvent() {
	s.append(0, "p1", models.EventShot2PtMake)
	last := s.append(1, "p2", models.EventTurnover)

	event, err := s.repo.GetLastEvent(context.Background(), &GetLastEventInput{
		GameID: "test-game-id",
	})

	s.Require().NoError(err)
	s.Equal(last.ID, event.ID)
	s.Equal(models.EventTurnover, event.Type)
}

func (s *RedisRepositoryTestSuite) TestGetLastEvent_EmptyLog() {
	_, err := s.repo.GetLastEvent(context.Background(), &GetLastEventInput{
		GameID: "test-game-id",
	})

	s.Require().ErrorIs(err, ErrEventNotFound)
}

func (s *RedisRepositoryTestSuite) TestRemoveEvent() {
	first := s.append(0, "p1", models.EventShot2PtMake)
	second := s.append(1, "p1", models.EventShot3PtMake)

	err := s.repo.RemoveEvent(context.Background(), &RemoveEventInput{
		GameID:  "test-game-id",
		EventID: second.ID,
	})
	s.Require().NoError(err)

	// Exactly one event removed, the other untouched
	output, err := s.repo.ListEvents(context.Background(), &ListEventsInput{
		GameID: "test-game-id",
	})
	s.Require().NoError(err)
	s.Require().Len(output.Events, 1)
	s.Equal(first.ID, output.Events[0].ID)
}

func (s *RedisRepositoryTestSuite) TestRemoveEvent_NotFound() {
	s.append(0, "p1", models.EventShot2PtMake)

	err := s.repo.RemoveEvent(context.Background(), &RemoveEventInput{
		GameID:  "test-game-id",
		EventID: "no-such-event",
	})

	s.Require().ErrorIs(err, ErrEventNotFound)
}

func (s *RedisRepositoryTestSuite) TestRemoveEvent_WrongGame() {
	event := s.append(0, "p1", models.EventShot2PtMake)

	err := s.repo.RemoveEvent(context.Background(), &RemoveEventInput{
		GameID:  "other-game-id",
		EventID: event.ID,
	})

	s.Require().ErrorIs(err, ErrEventNotFound)
}

func (s *RedisRepositoryTestSuite) TestDeleteEvents() {
	s.append(0, "p1", models.EventShot2PtMake)
	s.append(1, "p2", models.EventSteal)

	err := s.repo.DeleteEvents(context.Background(), &DeleteEventsInput{
		GameID: "test-game-id",
	})
	s.Require().NoError(err)

	output, err := s.repo.ListEvents(context.Background(), &ListEventsInput{
		GameID: "test-game-id",
	})
	s.Require().NoError(err)
	s.Empty(output.Events)
}
