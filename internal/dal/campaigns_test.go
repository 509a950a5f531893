package dal

import (
	"time"
)

func (s *BoltDBTestSuite) TestBoltDB_GetCampaign() {
	now := time.Date(2026, time.August, 10, 12, 0, 0, 0, time.UTC)
	s.now.Set(now)

	s.Require().NoError(s.store.PutCampaign(NewCampaign("camp-1").Build()))

	actual, ok, err := s.store.GetCampaign("camp-1")
	s.Require().NoError(err, "error getting campaign")
	if s.True(ok) {
		s.Equal(NewCampaign("camp-1").WithTimestamps(now).Build(), actual)
	}

	_, ok, err = s.store.GetCampaign("camp-2")
	s.Require().NoError(err, "error getting campaign")
	s.False(ok)
}

func (s *BoltDBTestSuite) TestBoltDB_GetAllCampaigns() {
	now := time.Date(2026, time.August, 10, 12, 0, 0, 0, time.UTC)
	s.now.Set(now)

	s.Require().NoError(s.store.PutCampaign(NewCampaign("camp-1").Build()))
	s.Require().NoError(s.store.PutCampaign(NewCampaign("camp-2").Build()))
	s.Require().NoError(s.store.PutCampaign(NewCampaign("camp-3").WithBotID("bot-2").Build()))

	actual, err := s.store.GetAllCampaigns("bot-1")
	s.Require().NoError(err, "error getting all campaigns")

	expected := []Campaign{
		NewCampaign("camp-1").WithTimestamps(now).Build(),
		NewCampaign("camp-2").WithTimestamps(now).Build(),
	}
	s.Equal(expected, actual)
}

func (s *BoltDBTestSuite) TestBoltDB_GetDueCampaigns() {
	now := time.Date(2026, time.August, 10, 12, 0, 0, 0, time.UTC)
	s.now.Set(now)

	s.Require().NoError(s.store.PutCampaign(NewCampaign("camp-1").WithSendAt(now.Add(-time.Hour)).Build()))
	s.Require().NoError(s.store.PutCampaign(NewCampaign("camp-2").WithSendAt(now).Build()))
	s.Require().NoError(s.store.PutCampaign(NewCampaign("camp-3").WithSendAt(now.Add(time.Minute)).Build()))
	// no send time: never due
	s.Require().NoError(s.store.PutCampaign(NewCampaign("camp-4").Build()))
	// inactive: never due
	s.Require().NoError(s.store.PutCampaign(NewCampaign("camp-5").WithSendAt(now.Add(-time.Hour)).WithActive(false).Build()))

	actual, err := s.store.GetDueCampaigns(now)
	s.Require().NoError(err, "error getting due campaigns")

	ids := make([]string, 0, len(actual))
	for _, c := range actual {
		ids = append(ids, c.ID)
	}
	s.Equal([]string{"camp-1", "camp-2"}, ids)
}

func (s *BoltDBTestSuite) TestBoltDB_PutCampaign() {
	createdAt := time.Date(2026, time.August, 10, 12, 0, 0, 0, time.UTC)
	s.now.Set(createdAt)

	s.Require().NoError(s.store.PutCampaign(NewCampaign("camp-1").Build()))

	// make sure created at is not overridden
	updatedAt := createdAt.Add(24 * time.Hour)
	s.now.Set(updatedAt)
	s.Require().NoError(s.store.PutCampaign(NewCampaign("camp-1").WithActive(false).Build()))

	actual, ok, err := s.store.GetCampaign("camp-1")
	s.Require().NoError(err, "error getting campaign")
	s.Require().True(ok)

	expected := NewCampaign("camp-1").WithActive(false).Build()
	expected.CreatedAt = createdAt
	expected.UpdatedAt = updatedAt
	s.Equal(expected, actual)
}

func (s *BoltDBTestSuite) TestBoltDB_DeleteCampaign() {
	s.Require().NoError(s.store.PutCampaign(NewCampaign("camp-1").Build()))

	s.Require().NoError(s.store.DeleteCampaign("camp-1"))

	_, ok, err := s.store.GetCampaign("camp-1")
	s.Require().NoError(err, "error getting campaign")
	s.False(ok)
}
