package dal

import (
	"time"
)

func (s *BoltDBTestSuite) TestBoltDB_CountSubscribers() {
	count, err := s.store.CountSubscribers()
	s.Require().NoError(err, "error counting subscribers")
	s.Require().Equal(0, count)

	err = s.store.PutSubscriber(NewSubscriber("sub-1").Build())
	s.Require().NoError(err, "error putting subscriber")
	count, err = s.store.CountSubscribers()
	s.Require().NoError(err, "error counting subscribers")
	s.Require().Equal(1, count)

	err = s.store.PutSubscriber(NewSubscriber("sub-2").Build())
	s.Require().NoError(err, "error putting subscriber")
	count, err = s.store.CountSubscribers()
	s.Require().NoError(err, "error counting subscribers")
	s.Require().Equal(2, count)

	err = s.store.PutSubscriber(NewSubscriber("sub-1").Build()) // same ID
	s.Require().NoError(err, "error putting subscriber")
	count, err = s.store.CountSubscribers()
	s.Require().NoError(err, "error counting subscribers")
	s.Require().Equal(2, count)
}

func (s *BoltDBTestSuite) TestBoltDB_GetSubscriber() {
	now := time.Date(2026, time.August, 10, 12, 0, 0, 0, time.UTC)
	s.now.Set(now)

	s.Require().NoError(s.store.PutSubscriber(NewSubscriber("sub-1").Build()))

	actual, ok, err := s.store.GetSubscriber("sub-1")
	s.Require().NoError(err, "error getting subscriber")
	if s.True(ok) {
		expected := NewSubscriber("sub-1").WithCreatedAt(now).WithUpdatedAt(now).Build()
		s.Equal(expected, actual)
	}

	_, ok, err = s.store.GetSubscriber("sub-2")
	s.Require().NoError(err, "error getting subscriber")
	s.False(ok)
}

func (s *BoltDBTestSuite) TestBoltDB_FindSubscriberByChat() {
	now := time.Date(2026, time.August, 10, 12, 0, 0, 0, time.UTC)
	s.now.Set(now)

	s.Require().NoError(s.store.PutSubscriber(NewSubscriber("sub-1").WithChatID(100).Build()))
	s.Require().NoError(s.store.PutSubscriber(NewSubscriber("sub-2").WithChatID(200).Build()))
	s.Require().NoError(s.store.PutSubscriber(NewSubscriber("sub-3").WithBotID("bot-2").WithChatID(300).Build()))

	actual, ok, err := s.store.FindSubscriberByChat("bot-1", 200)
	s.Require().NoError(err, "error finding subscriber")
	if s.True(ok) {
		expected := NewSubscriber("sub-2").WithChatID(200).WithCreatedAt(now).WithUpdatedAt(now).Build()
		s.Equal(expected, actual)
	}

	// same chat ID under another bot is a different subscriber
	_, ok, err = s.store.FindSubscriberByChat("bot-2", 200)
	s.Require().NoError(err, "error finding subscriber")
	s.False(ok)
}

func (s *BoltDBTestSuite) TestBoltDB_GetDueSubscribers() {
	now := time.Date(2026, time.August, 10, 12, 0, 0, 0, time.UTC)
	s.now.Set(now)

	// nil NextSendAt means "due immediately"
	s.Require().NoError(s.store.PutSubscriber(NewSubscriber("sub-1").Build()))
	s.Require().NoError(s.store.PutSubscriber(NewSubscriber("sub-2").WithNextSendAt(now.Add(-time.Hour)).Build()))
	s.Require().NoError(s.store.PutSubscriber(NewSubscriber("sub-3").WithNextSendAt(now).Build()))
	s.Require().NoError(s.store.PutSubscriber(NewSubscriber("sub-4").WithNextSendAt(now.Add(time.Minute)).Build()))
	s.Require().NoError(s.store.PutSubscriber(NewSubscriber("sub-5").WithNextTemplateID(TerminalTemplateID).Build()))
	s.Require().NoError(s.store.PutSubscriber(NewSubscriber("sub-6").WithParkedAt(now.Add(-time.Hour)).Build()))

	actual, err := s.store.GetDueSubscribers(now)
	s.Require().NoError(err, "error getting due subscribers")

	ids := make([]string, 0, len(actual))
	for _, sub := range actual {
		ids = append(ids, sub.ID)
	}
	s.Equal([]string{"sub-1", "sub-2", "sub-3"}, ids)
}

func (s *BoltDBTestSuite) TestBoltDB_GetSubscribersByLevels() {
	s.Require().NoError(s.store.PutSubscriber(NewSubscriber("sub-1").WithClientLevel(0).Build()))
	s.Require().NoError(s.store.PutSubscriber(NewSubscriber("sub-2").WithClientLevel(1).Build()))
	s.Require().NoError(s.store.PutSubscriber(NewSubscriber("sub-3").WithClientLevel(2).Build()))
	s.Require().NoError(s.store.PutSubscriber(NewSubscriber("sub-4").WithClientLevel(1).WithBotID("bot-2").Build()))
	// unreachable chats are not a campaign audience
	s.Require().NoError(s.store.PutSubscriber(NewSubscriber("sub-5").WithClientLevel(1).WithParkedAt(time.Now()).Build()))

	actual, err := s.store.GetSubscribersByLevels("bot-1", []int{1, 2})
	s.Require().NoError(err, "error getting subscribers by levels")

	ids := make([]string, 0, len(actual))
	for _, sub := range actual {
		ids = append(ids, sub.ID)
	}
	s.Equal([]string{"sub-2", "sub-3"}, ids)
}

func (s *BoltDBTestSuite) TestBoltDB_PutSubscriber() {
	createdAt := time.Date(2026, time.August, 10, 12, 0, 0, 0, time.UTC)
	s.now.Set(createdAt)

	s.Require().NoError(s.store.PutSubscriber(NewSubscriber("sub-1").Build()))

	// make sure created at is not overridden
	updatedAt := createdAt.Add(24 * time.Hour)
	s.now.Set(updatedAt)
	s.Require().NoError(s.store.PutSubscriber(NewSubscriber("sub-1").WithClientLevel(1).Build()))

	expected := NewSubscriber("sub-1").WithClientLevel(1).WithCreatedAt(createdAt).WithUpdatedAt(updatedAt).Build()
	s.Equal(expected, s.mustGetSubscriber("sub-1"))
}

func (s *BoltDBTestSuite) TestBoltDB_PurgeSubscriber() {
	s.Require().NoError(s.store.PutSubscriber(NewSubscriber("sub-1").Build()))

	s.Require().NoError(s.store.PurgeSubscriber("sub-1"))

	_, ok, err := s.store.GetSubscriber("sub-1")
	s.Require().NoError(err, "error getting subscriber")
	s.False(ok)

	// purging a missing subscriber is a no-op
	s.Require().NoError(s.store.PurgeSubscriber("sub-1"))
}

func (s *BoltDBTestSuite) mustGetSubscriber(id string) Subscriber {
	res, ok, err := s.store.GetSubscriber(id)
	s.Require().NoError(err, "error getting subscriber")
	s.Require().True(ok)
	return res
}
