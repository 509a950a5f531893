package dal

import (
	"time"
)

func (s *BoltDBTestSuite) TestBoltDB_CountBots() {
	count, err := s.store.CountBots()
	s.Require().NoError(err, "error counting bots")
	s.Require().Equal(0, count)

	s.Require().NoError(s.store.PutBot(NewBot("bot-1").Build()))
	s.Require().NoError(s.store.PutBot(NewBot("bot-2").Build()))

	count, err = s.store.CountBots()
	s.Require().NoError(err, "error counting bots")
	s.Require().Equal(2, count)
}

func (s *BoltDBTestSuite) TestBoltDB_GetBot() {
	now := time.Date(2026, time.August, 10, 12, 0, 0, 0, time.UTC)
	s.now.Set(now)

	s.Require().NoError(s.store.PutBot(NewBot("bot-1").Build()))

	actual, ok, err := s.store.GetBot("bot-1")
	s.Require().NoError(err, "error getting bot")
	if s.True(ok) {
		s.Equal(NewBot("bot-1").WithTimestamps(now).Build(), actual)
	}

	_, ok, err = s.store.GetBot("bot-2")
	s.Require().NoError(err, "error getting bot")
	s.False(ok)
}

func (s *BoltDBTestSuite) TestBoltDB_GetAllBots() {
	now := time.Date(2026, time.August, 10, 12, 0, 0, 0, time.UTC)
	s.now.Set(now)

	s.Require().NoError(s.store.PutBot(NewBot("bot-1").Build()))
	s.Require().NoError(s.store.PutBot(NewBot("bot-2").Build()))

	actual, err := s.store.GetAllBots()
	s.Require().NoError(err, "error getting all bots")

	expected := []Bot{
		NewBot("bot-1").WithTimestamps(now).Build(),
		NewBot("bot-2").WithTimestamps(now).Build(),
	}
	s.Equal(expected, actual)
}

func (s *BoltDBTestSuite) TestBoltDB_PutBot() {
	createdAt := time.Date(2026, time.August, 10, 12, 0, 0, 0, time.UTC)
	s.now.Set(createdAt)

	s.Require().NoError(s.store.PutBot(NewBot("bot-1").Build()))

	// make sure created at is not overridden
	updatedAt := createdAt.Add(24 * time.Hour)
	s.now.Set(updatedAt)
	s.Require().NoError(s.store.PutBot(NewBot("bot-1").WithName("renamed").Build()))

	actual, ok, err := s.store.GetBot("bot-1")
	s.Require().NoError(err, "error getting bot")
	s.Require().True(ok)

	expected := NewBot("bot-1").WithName("renamed").Build()
	expected.CreatedAt = createdAt
	expected.UpdatedAt = updatedAt
	s.Equal(expected, actual)
}
