package stats

import (
	"testing"
	"time"

	"github.com/McKeyra/ball-in-the-6-sub004/internal/models"
	"github.com/McKeyra/ball-in-the-6-sub004/internal/rules"
	"github.com/stretchr/testify/suite"
)

type AggregatorTestSuite struct {
	suite.Suite
	aggregator *Aggregator
	testNow    time.Time
	testGameID string
}

func (s *AggregatorTestSuite) SetupTest() {
	s.aggregator = New(&Config{Rules: rules.Default()})
	s.testNow = time.Date(2025, 11, 2, 19, 0, 0, 0, time.UTC)
	s.testGameID = "test-game-id"
}

func TestAggregatorTestSuite(t *testing.T) {
	suite.Run(t, new(AggregatorTestSuite))
}

// event builds a test event n seconds after the suite's base time so
// log order matches creation order
func (s *AggregatorTestSuite) event(n int, playerID string, side models.TeamSide, t models.EventType, quarter int) *models.GameEvent {
	return &models.GameEvent{
		ID:        "event-" + string(rune('a'+n)),
		GameID:    s.testGameID,
		PlayerID:  playerID,
		TeamSide:  side,
		Type:      t,
		Quarter:   quarter,
		GameClock: 600,
		CreatedAt: s.testNow.Add(time.Duration(n) * time.Second),
	}
}

func (s *AggregatorTestSuite) TestAggregate_EmptyLog() {
	box, err := s.aggregator.Aggregate(s.testGameID, nil)

	s.Require().NoError(err)
	s.Equal(0, box.EventCount)
	s.Equal(0, box.Home.Score)
	s.Equal(0, box.Away.Score)
	s.Empty(box.Players)
	s.False(box.Home.Bonus)
	s.False(box.Away.Bonus)
}

func (s *AggregatorTestSuite) TestAggregate_MadeTwoPointer() {
	events := []*models.GameEvent{
		s.event(0, "p1", models.TeamSideHome, models.EventShot2PtMake, 1),
	}

	box, err := s.aggregator.Aggregate(s.testGameID, events)

	s.Require().NoError(err)
	s.Equal(2, box.Home.Score)
	s.Equal(0, box.Away.Score)

	line := box.Line("p1")
	s.Equal(2, line.Points)
	s.Equal(1, line.FieldGoalsMade)
	s.Equal(1, line.FieldGoalsAttempted)
	s.Equal(0, line.ThreePointersAttempted)
}

func (s *AggregatorTestSuite) TestAggregate_ShootingSplits() {
	events := []*models.GameEvent{
		s.event(0, "p1", models.TeamSideHome, models.EventShot3PtMake, 1),
		s.event(1, "p1", models.TeamSideHome, models.EventShot3PtMiss, 1),
		s.event(2, "p1", models.TeamSideHome, models.EventShot2PtMiss, 1),
		s.event(3, "p1", models.TeamSideHome, models.EventFreeThrowMake, 1),
		s.event(4, "p1", models.TeamSideHome, models.EventFreeThrowMiss, 1),
	}

	box, err := s.aggregator.Aggregate(s.testGameID, events)

	s.Require().NoError(err)
	line := box.Line("p1")
	s.Equal(4, line.Points)
	s.Equal(1, line.FieldGoalsMade)
	s.Equal(3, line.FieldGoalsAttempted)
	s.Equal(1, line.ThreePointersMade)
	s.Equal(2, line.ThreePointersAttempted)
	s.Equal(1, line.FreeThrowsMade)
	s.Equal(2, line.FreeThrowsAttempted)
	s.Equal(4, box.Home.Score)
}

func (s *AggregatorTestSuite) TestAggregate_CountingStats() {
	events := []*models.GameEvent{
		s.event(0, "p1", models.TeamSideHome, models.EventReboundOff, 1),
		s.event(1, "p1", models.TeamSideHome, models.EventReboundDef, 1),
		s.event(2, "p1", models.TeamSideHome, models.EventAssist, 1),
		s.event(3, "p2", models.TeamSideAway, models.EventSteal, 1),
		s.event(4, "p2", models.TeamSideAway, models.EventBlock, 1),
		s.event(5, "p2", models.TeamSideAway, models.EventTurnover, 1),
	}

	box, err := s.aggregator.Aggregate(s.testGameID, events)

	s.Require().NoError(err)
	p1 := box.Line("p1")
	s.Equal(1, p1.ReboundsOff)
	s.Equal(1, p1.ReboundsDef)
	s.Equal(2, p1.Rebounds())
	s.Equal(1, p1.Assists)

	p2 := box.Line("p2")
	s.Equal(1, p2.Steals)
	s.Equal(1, p2.Blocks)
	s.Equal(1, p2.Turnovers)
	s.Equal(0, box.Home.Score)
	s.Equal(0, box.Away.Score)
}

func (s *AggregatorTestSuite) TestAggregate_BonusAtThreshold() {
	// Five personal fouls by the away team in one period puts the home
	// team in the bonus
	events := make([]*models.GameEvent, 0, 5)
	for i := 0; i < 5; i++ {
		events = append(events, s.event(i, "p9", models.TeamSideAway, models.EventFoulPersonal, 1))
	}

	box, err := s.aggregator.Aggregate(s.testGameID, events)

	s.Require().NoError(err)
	s.Equal(5, box.Away.PeriodFouls)
	s.True(box.Home.Bonus)
	s.False(box.Away.Bonus)
	s.Equal(5, box.Line("p9").PersonalFouls)
}

func (s *AggregatorTestSuite) TestAggregate_TeamFoulsResetAtPeriodBoundary() {
	events := []*models.GameEvent{
		s.event(0, "p9", models.TeamSideAway, models.EventFoulPersonal, 1),
		s.event(1, "p9", models.TeamSideAway, models.EventFoulPersonal, 1),
		s.event(2, "p9", models.TeamSideAway, models.EventFoulPersonal, 1),
		s.event(3, "p9", models.TeamSideAway, models.EventFoulPersonal, 1),
		s.event(4, "p9", models.TeamSideAway, models.EventFoulPersonal, 2),
	}

	box, err := s.aggregator.Aggregate(s.testGameID, events)

	s.Require().NoError(err)
	s.Equal(1, box.Away.PeriodFouls)
	s.False(box.Home.Bonus)
	// Personal fouls carry across periods even though team fouls reset
	s.Equal(5, box.Line("p9").PersonalFouls)
	s.Equal(2, box.Quarter)
}

func (s *AggregatorTestSuite) TestAggregate_TechnicalFoulNotATeamFoul() {
	events := []*models.GameEvent{
		s.event(0, "p1", models.TeamSideHome, models.EventFoulTechnical, 1),
	}

	box, err := s.aggregator.Aggregate(s.testGameID, events)

	s.Require().NoError(err)
	s.Equal(0, box.Home.PeriodFouls)
	s.Equal(1, box.Line("p1").TechnicalFouls)
	s.Equal(0, box.Line("p1").PersonalFouls)
}

func (s *AggregatorTestSuite) TestAggregate_UnknownEventType() {
	events := []*models.GameEvent{
		s.event(0, "p1", models.TeamSideHome, models.EventType("half_court_heave"), 1),
	}

	box, err := s.aggregator.Aggregate(s.testGameID, events)

	s.Require().Error(err)
	s.Nil(box)

	var typeErr *ErrUnknownEventType
	s.Require().ErrorAs(err, &typeErr)
	s.Equal(models.EventType("half_court_heave"), typeErr.Type)
}

func (s *AggregatorTestSuite) TestAggregate_Deterministic() {
	events := []*models.GameEvent{
		s.event(0, "p1", models.TeamSideHome, models.EventShot2PtMake, 1),
		s.event(1, "p2", models.TeamSideAway, models.EventShot3PtMake, 1),
		s.event(2, "p1", models.TeamSideHome, models.EventFoulPersonal, 2),
	}

	first, err := s.aggregator.Aggregate(s.testGameID, events)
	s.Require().NoError(err)

	second, err := s.aggregator.Aggregate(s.testGameID, events)
	s.Require().NoError(err)

	s.Equal(first, second)
}

func (s *AggregatorTestSuite) TestFouledOut() {
	s.False(s.aggregator.FouledOut(nil))
	s.False(s.aggregator.FouledOut(&StatLine{PersonalFouls: 5}))
	s.True(s.aggregator.FouledOut(&StatLine{PersonalFouls: 6}))
	s.True(s.aggregator.FouledOut(&StatLine{PersonalFouls: 7}))
}

func (s *AggregatorTestSuite) TestEventTypePoints() {
	s.Equal(2, models.EventShot2PtMake.Points())
	s.Equal(3, models.EventShot3PtMake.Points())
	s.Equal(1, models.EventFreeThrowMake.Points())
	s.Equal(0, models.EventShot2PtMiss.Points())
	s.Equal(0, models.EventTurnover.Points())
}

func (s *AggregatorTestSuite) TestEveryEventTypeHasALabel() {
	for _, t := range models.EventTypes {
		s.True(t.Valid())
		s.NotEqual(string(t), t.Label(), "event type %s is missing a label", t)
	}
}
