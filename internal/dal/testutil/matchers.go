package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Roma7-7-7/funnel-bot/internal/dal"
)

// SubscriberMatcher compares subscribers while tolerating store-generated
// fields: the UUID minted at registration and the timestamps stamped on write.
type SubscriberMatcher struct {
	t    *testing.T
	want dal.Subscriber
}

func NewSubscriberMatcher(t *testing.T, want dal.Subscriber) *SubscriberMatcher {
	return &SubscriberMatcher{
		t:    t,
		want: want,
	}
}

func (m SubscriberMatcher) Matches(x interface{}) bool {
	actual, ok := x.(dal.Subscriber)
	if !ok {
		m.t.Fatalf("SubscriberMatcher.Matches: expected dal.Subscriber, got %T", x)
		return false
	}

	if !assert.NotEmpty(m.t, actual.ID, "subscriber ID must be generated") {
		return false
	}

	m.want.ID = actual.ID
	m.want.CreatedAt = actual.CreatedAt
	m.want.UpdatedAt = actual.UpdatedAt
	return assert.Equal(m.t, m.want, actual)
}

func (m SubscriberMatcher) String() string {
	return "SubscriberMatcher.Matches"
}
