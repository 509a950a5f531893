package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Roma7-7-7/funnel-bot/internal/dal"
)

type (
	CampaignStore interface {
		GetDueCampaigns(now time.Time) ([]dal.Campaign, error)
		PutCampaign(c dal.Campaign) error
	}

	// Campaigns broadcasts bot-wide, level-filtered campaigns independently of
	// individual funnel positions.
	Campaigns struct {
		campaigns   CampaignStore
		subscribers SubscriberStore
		bots        BotStore
		gateway     Gateway
		clock       Clock

		log *slog.Logger
		mx  *sync.Mutex
	}
)

func NewCampaigns(
	campaigns CampaignStore,
	subscribers SubscriberStore,
	bots BotStore,
	gateway Gateway,
	clock Clock,
	log *slog.Logger,
) *Campaigns {
	return &Campaigns{
		campaigns:   campaigns,
		subscribers: subscribers,
		bots:        bots,
		gateway:     gateway,
		clock:       clock,

		log: log.With("component", "service").With("service", "campaigns"),
		mx:  &sync.Mutex{},
	}
}

// RunTick processes all due campaigns. Campaigns are handled sequentially and
// each one is rescheduled or deactivated before the next tick can see it, which
// keeps dispatch at-most-once; overlapping invocations serialize on the mutex.
func (s *Campaigns) RunTick(ctx context.Context) error {
	s.mx.Lock()
	defer s.mx.Unlock()

	now := s.clock.Now()
	due, err := s.campaigns.GetDueCampaigns(now)
	if err != nil {
		return fmt.Errorf("get due campaigns: %w", err)
	}
	if len(due) == 0 {
		return nil
	}
	s.log.InfoContext(ctx, "Processing due campaigns", "count", len(due))

	for _, c := range due {
		if err := s.process(ctx, c, now); err != nil {
			s.log.ErrorContext(ctx, "Failed to process campaign",
				"campaignID", c.ID, "error", err)
		}
	}

	return nil
}

func (s *Campaigns) process(ctx context.Context, c dal.Campaign, now time.Time) error {
	audience, err := s.subscribers.GetSubscribersByLevels(c.BotID, c.TargetLevels)
	if err != nil {
		return fmt.Errorf("get audience: %w", err)
	}

	stale := c.SendAt != nil && now.Sub(*c.SendAt) > graceWindow

	switch {
	case len(audience) == 0 && !stale:
		// leave the campaign due; the audience may still appear before the
		// grace window closes
		s.log.InfoContext(ctx, "Campaign has no audience yet, retrying next tick",
			"campaignID", c.ID)
		return nil
	case len(audience) == 0:
		s.log.WarnContext(ctx, "Campaign is stale with no audience, rescheduling without sending",
			"campaignID", c.ID, "overdue", now.Sub(*c.SendAt))
	default:
		if err := s.broadcast(ctx, c, audience); err != nil {
			return err
		}
	}

	return s.reschedule(ctx, c)
}

func (s *Campaigns) broadcast(ctx context.Context, c dal.Campaign, audience []dal.Subscriber) error {
	bot, ok, err := s.bots.GetBot(c.BotID)
	if err != nil {
		return fmt.Errorf("get bot %s: %w", c.BotID, err)
	}
	if !ok {
		return fmt.Errorf("bot %s: %w", c.BotID, ErrBotNotFound)
	}

	// a failure for one subscriber must not abort the rest of the audience;
	// the dispatch is complete once everyone has been attempted
	failed := 0
	for _, sub := range audience {
		msg := OutboundMessage{
			BotID:        c.BotID,
			ChatID:       sub.ChatID,
			Text:         Render(bot, sub, c.Message),
			SubscriberID: sub.ID,
		}
		if c.RequiresConfirmation {
			msg.Prompt = PromptConfirm
		}

		if err := s.gateway.Send(ctx, msg); err != nil {
			failed++
			s.log.ErrorContext(ctx, "Failed to send campaign message",
				"campaignID", c.ID, "subscriberID", sub.ID, "error", err)
		}
	}

	s.log.InfoContext(ctx, "Campaign dispatched",
		"campaignID", c.ID, "audience", len(audience), "failed", failed)
	return nil
}

func (s *Campaigns) reschedule(ctx context.Context, c dal.Campaign) error {
	if c.Repeat && c.IntervalDays <= 0 {
		s.log.ErrorContext(ctx, "Repeating campaign has no interval, deactivating",
			"campaignID", c.ID)
	}

	if c.Repeat && c.IntervalDays > 0 {
		// advance from the previous send time, not from now, so the cadence
		// stays stable regardless of dispatch jitter
		next := c.SendAt.AddDate(0, 0, c.IntervalDays)
		c.SendAt = &next
		c.StartsAt = &next
	} else {
		c.IsActive = false
		c.SendAt = nil
	}

	if err := s.campaigns.PutCampaign(c); err != nil {
		return fmt.Errorf("put campaign: %w", err)
	}
	return nil
}
