package dal

import (
	"time"
)

func (s *BoltDBTestSuite) TestBoltDB_GetResource() {
	now := time.Date(2026, time.August, 10, 12, 0, 0, 0, time.UTC)
	s.now.Set(now)

	s.Require().NoError(s.store.PutResource(NewResource("res-1").Build()))

	actual, ok, err := s.store.GetResource("res-1")
	s.Require().NoError(err, "error getting resource")
	if s.True(ok) {
		s.Equal(NewResource("res-1").WithTimestamps(now).Build(), actual)
	}

	_, ok, err = s.store.GetResource("res-2")
	s.Require().NoError(err, "error getting resource")
	s.False(ok)
}

func (s *BoltDBTestSuite) TestBoltDB_GetResourcesByBot() {
	now := time.Date(2026, time.August, 10, 12, 0, 0, 0, time.UTC)
	s.now.Set(now)

	s.Require().NoError(s.store.PutResource(NewResource("res-1").Build()))
	s.Require().NoError(s.store.PutResource(NewResource("res-2").Build()))
	s.Require().NoError(s.store.PutResource(NewResource("res-3").WithBotID("bot-2").Build()))

	actual, err := s.store.GetResourcesByBot("bot-1")
	s.Require().NoError(err, "error getting resources")

	expected := []Resource{
		NewResource("res-1").WithTimestamps(now).Build(),
		NewResource("res-2").WithTimestamps(now).Build(),
	}
	s.Equal(expected, actual)
}

func (s *BoltDBTestSuite) TestBoltDB_PutResource() {
	createdAt := time.Date(2026, time.August, 10, 12, 0, 0, 0, time.UTC)
	s.now.Set(createdAt)

	s.Require().NoError(s.store.PutResource(NewResource("res-1").Build()))

	// make sure created at is not overridden
	updatedAt := createdAt.Add(24 * time.Hour)
	s.now.Set(updatedAt)
	s.Require().NoError(s.store.PutResource(NewResource("res-1").WithShare(5).Build()))

	actual, ok, err := s.store.GetResource("res-1")
	s.Require().NoError(err, "error getting resource")
	s.Require().True(ok)

	expected := NewResource("res-1").WithShare(5).Build()
	expected.CreatedAt = createdAt
	expected.UpdatedAt = updatedAt
	s.Equal(expected, actual)
}

func (s *BoltDBTestSuite) TestBoltDB_DeleteResource() {
	s.Require().NoError(s.store.PutResource(NewResource("res-1").Build()))

	s.Require().NoError(s.store.DeleteResource("res-1"))

	_, ok, err := s.store.GetResource("res-1")
	s.Require().NoError(err, "error getting resource")
	s.False(ok)
}

func (s *BoltDBTestSuite) TestBoltDB_TryIncrementResourceAssigned() {
	now := time.Date(2026, time.August, 10, 12, 0, 0, 0, time.UTC)
	s.now.Set(now)

	s.Require().NoError(s.store.PutResource(NewResource("res-1").WithShare(2).Build()))

	ok, err := s.store.TryIncrementResourceAssigned("res-1", 0)
	s.Require().NoError(err, "error incrementing resource")
	s.True(ok)
	s.Equal(1, s.mustGetResource("res-1").AssignedCount)

	// stale expected count loses the race
	ok, err = s.store.TryIncrementResourceAssigned("res-1", 0)
	s.Require().NoError(err, "error incrementing resource")
	s.False(ok)
	s.Equal(1, s.mustGetResource("res-1").AssignedCount)

	ok, err = s.store.TryIncrementResourceAssigned("res-1", 1)
	s.Require().NoError(err, "error incrementing resource")
	s.True(ok)
	s.Equal(2, s.mustGetResource("res-1").AssignedCount)

	// share exhausted
	ok, err = s.store.TryIncrementResourceAssigned("res-1", 2)
	s.Require().NoError(err, "error incrementing resource")
	s.False(ok)
	s.Equal(2, s.mustGetResource("res-1").AssignedCount)

	// missing resource
	ok, err = s.store.TryIncrementResourceAssigned("res-2", 0)
	s.Require().NoError(err, "error incrementing resource")
	s.False(ok)
}

func (s *BoltDBTestSuite) TestBoltDB_ResetResourceAssigned() {
	now := time.Date(2026, time.August, 10, 12, 0, 0, 0, time.UTC)
	s.now.Set(now)

	s.Require().NoError(s.store.PutResource(NewResource("res-1").WithShare(2).WithAssignedCount(2).Build()))
	s.Require().NoError(s.store.PutResource(NewResource("res-2").WithShare(1).WithAssignedCount(1).Build()))
	s.Require().NoError(s.store.PutResource(NewResource("res-3").WithBotID("bot-2").WithShare(1).WithAssignedCount(1).Build()))

	s.Require().NoError(s.store.ResetResourceAssigned("bot-1"))

	s.Equal(0, s.mustGetResource("res-1").AssignedCount)
	s.Equal(0, s.mustGetResource("res-2").AssignedCount)
	// other bots are untouched
	s.Equal(1, s.mustGetResource("res-3").AssignedCount)
}

func (s *BoltDBTestSuite) mustGetResource(id string) Resource {
	res, ok, err := s.store.GetResource(id)
	s.Require().NoError(err, "error getting resource")
	s.Require().True(ok)
	return res
}
