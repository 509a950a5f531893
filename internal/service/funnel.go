package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Roma7-7-7/funnel-bot/internal/dal"
	"github.com/Roma7-7-7/funnel-bot/internal/templates"
)

// Callback payload tokens. The payload format is "{subscriberID}|{token}".
const (
	confirmToken = "t"
	declineToken = "f"
)

// anchorFallbackDelay schedules the next attempt when an anchored event cannot
// be resolved, so the subscriber keeps moving instead of getting stuck.
const anchorFallbackDelay = 24 * time.Hour

type (
	SubscriberStore interface {
		GetSubscriber(id string) (dal.Subscriber, bool, error)
		FindSubscriberByChat(botID string, chatID int64) (dal.Subscriber, bool, error)
		GetDueSubscribers(now time.Time) ([]dal.Subscriber, error)
		GetSubscribersByLevels(botID string, levels []int) ([]dal.Subscriber, error)
		PutSubscriber(sub dal.Subscriber) error
	}

	BotStore interface {
		GetBot(id string) (dal.Bot, bool, error)
	}

	TemplateRepository interface {
		Resolve(level int, language string, isEvent bool, botID string) ([]templates.Message, error)
	}

	EventLookup interface {
		Resolve(ctx context.Context, name string) (time.Time, bool, error)
	}

	ResourceAssigner interface {
		Assign(botID, subscriberID string) error
	}

	// Funnel owns per-subscriber progression: the current level, the pointer to
	// the next template and the next send time, plus dispatch of due messages.
	Funnel struct {
		subscribers SubscriberStore
		bots        BotStore
		templates   TemplateRepository
		events      EventLookup
		gateway     Gateway
		allocator   ResourceAssigner
		clock       Clock

		log *slog.Logger
		mx  *sync.Mutex
	}
)

func NewFunnel(
	subscribers SubscriberStore,
	bots BotStore,
	tmpls TemplateRepository,
	events EventLookup,
	gateway Gateway,
	allocator ResourceAssigner,
	clock Clock,
	log *slog.Logger,
) *Funnel {
	return &Funnel{
		subscribers: subscribers,
		bots:        bots,
		templates:   tmpls,
		events:      events,
		gateway:     gateway,
		allocator:   allocator,
		clock:       clock,

		log: log.With("component", "service").With("service", "funnel"),
		mx:  &sync.Mutex{},
	}
}

// RunTick dispatches pending funnel messages to all due subscribers. It is
// idempotent and safe to invoke from any external scheduler; overlapping
// invocations serialize on the service mutex.
func (s *Funnel) RunTick(ctx context.Context) error {
	s.mx.Lock()
	defer s.mx.Unlock()

	now := s.clock.Now()
	due, err := s.subscribers.GetDueSubscribers(now)
	if err != nil {
		return fmt.Errorf("get due subscribers: %w", err)
	}
	if len(due) == 0 {
		return nil
	}
	s.log.InfoContext(ctx, "Processing due subscribers", "count", len(due))

	for _, sub := range due {
		if err := s.dispatch(ctx, sub, now); err != nil {
			s.log.ErrorContext(ctx, "Failed to dispatch funnel message",
				"subscriberID", sub.ID, "error", err)
		}
	}

	return nil
}

// RegisterSubscriber creates the subscriber on first contact and assigns a
// referral resource. The first funnel message goes out on the next tick
// (NextSendAt is left empty, which means "due immediately"). Returns true when
// a new subscriber was created.
func (s *Funnel) RegisterSubscriber(ctx context.Context, botID string, chatID int64, name string) (dal.Subscriber, bool, error) {
	sub, found, err := s.subscribers.FindSubscriberByChat(botID, chatID)
	if err != nil {
		return dal.Subscriber{}, false, fmt.Errorf("find subscriber: %w", err)
	}
	if found {
		if name != "" && name != sub.Name {
			sub.Name = name
			if err := s.subscribers.PutSubscriber(sub); err != nil {
				return dal.Subscriber{}, false, fmt.Errorf("put subscriber: %w", err)
			}
		}
		return sub, false, nil
	}

	sub = dal.Subscriber{
		ID:     uuid.NewString(),
		BotID:  botID,
		ChatID: chatID,
		Name:   name,
	}
	if err := s.subscribers.PutSubscriber(sub); err != nil {
		return dal.Subscriber{}, false, fmt.Errorf("put subscriber: %w", err)
	}

	if err := s.allocator.Assign(botID, sub.ID); err != nil {
		// a subscriber without a referral link is still a subscriber
		s.log.ErrorContext(ctx, "Failed to assign resource",
			"subscriberID", sub.ID, "error", err)
	} else if updated, ok, err := s.subscribers.GetSubscriber(sub.ID); err == nil && ok {
		sub = updated
	}

	s.log.InfoContext(ctx, "Registered new subscriber",
		"subscriberID", sub.ID, "botID", botID, "chatID", chatID)
	return sub, true, nil
}

// AdvanceLevel moves the subscriber to the next client level and immediately
// dispatches the first message of that level. Level 2 is terminal: advancing
// past it is a no-op.
func (s *Funnel) AdvanceLevel(ctx context.Context, subscriberID string) error {
	sub, ok, err := s.subscribers.GetSubscriber(subscriberID)
	if err != nil {
		return fmt.Errorf("get subscriber: %w", err)
	}
	if !ok {
		return fmt.Errorf("subscriber %s: %w", subscriberID, ErrSubscriberNotFound)
	}

	if sub.ClientLevel >= maxClientLevel {
		s.log.InfoContext(ctx, "Subscriber already at top level", "subscriberID", sub.ID)
		return nil
	}

	now := s.clock.Now()
	sub.ClientLevel++
	sub.NextTemplateID = 0
	sub.NextSendAt = &now
	if err := s.subscribers.PutSubscriber(sub); err != nil {
		return fmt.Errorf("put subscriber: %w", err)
	}

	s.log.InfoContext(ctx, "Subscriber advanced to next level",
		"subscriberID", sub.ID, "level", sub.ClientLevel)

	// level-up should produce the first message of the new level without
	// waiting for the next tick
	return s.dispatch(ctx, sub, now)
}

// RecordRating stores a 1-5 rating without changing the funnel position.
func (s *Funnel) RecordRating(ctx context.Context, subscriberID string, rating int) error {
	if rating < 1 || rating > 5 {
		return fmt.Errorf("rating %d is out of range", rating)
	}

	sub, ok, err := s.subscribers.GetSubscriber(subscriberID)
	if err != nil {
		return fmt.Errorf("get subscriber: %w", err)
	}
	if !ok {
		return fmt.Errorf("subscriber %s: %w", subscriberID, ErrSubscriberNotFound)
	}

	sub.Rating = rating
	if err := s.subscribers.PutSubscriber(sub); err != nil {
		return fmt.Errorf("put subscriber: %w", err)
	}

	s.log.InfoContext(ctx, "Recorded rating", "subscriberID", sub.ID, "rating", rating)
	return nil
}

// HandleCallback processes an inline-button payload of the form
// "{subscriberID}|{token}". Malformed payloads and unknown subscribers are
// logged and ignored; this method never fails the caller.
func (s *Funnel) HandleCallback(ctx context.Context, payload string) {
	id, token, ok := strings.Cut(payload, "|")
	if !ok || id == "" {
		s.log.WarnContext(ctx, "Malformed callback payload", "payload", payload)
		return
	}

	switch token {
	case confirmToken:
		if err := s.AdvanceLevel(ctx, id); err != nil {
			s.log.ErrorContext(ctx, "Failed to advance level",
				"subscriberID", id, "error", err)
		}
	case declineToken:
		s.log.InfoContext(ctx, "Subscriber declined level up", "subscriberID", id)
	default:
		rating, err := strconv.Atoi(token)
		if err != nil {
			s.log.WarnContext(ctx, "Unknown callback token", "payload", payload)
			return
		}
		if err := s.RecordRating(ctx, id, rating); err != nil {
			s.log.ErrorContext(ctx, "Failed to record rating",
				"subscriberID", id, "error", err)
		}
	}
}

// HandleReply stores a plain-text reply as the subscriber's reference text,
// but only right after a rating was given (the rating prompt asks for it).
func (s *Funnel) HandleReply(ctx context.Context, botID string, chatID int64, text string) error {
	sub, ok, err := s.subscribers.FindSubscriberByChat(botID, chatID)
	if err != nil {
		return fmt.Errorf("find subscriber: %w", err)
	}
	if !ok || sub.Rating == 0 || sub.ReferenceText != "" {
		return nil
	}

	sub.ReferenceText = strings.TrimSpace(text)
	if err := s.subscribers.PutSubscriber(sub); err != nil {
		return fmt.Errorf("put subscriber: %w", err)
	}

	s.log.InfoContext(ctx, "Recorded reference text", "subscriberID", sub.ID)
	return nil
}

func (s *Funnel) dispatch(ctx context.Context, sub dal.Subscriber, now time.Time) error {
	bot, ok, err := s.bots.GetBot(sub.BotID)
	if err != nil {
		return fmt.Errorf("get bot %s: %w", sub.BotID, err)
	}
	if !ok {
		return fmt.Errorf("bot %s: %w", sub.BotID, ErrBotNotFound)
	}

	messages, err := s.templates.Resolve(sub.ClientLevel, bot.Language, bot.IsEvent, bot.ID)
	if err != nil {
		return fmt.Errorf("resolve templates: %w", err)
	}

	tmpl, ok := templates.ByID(messages, sub.NextTemplateID)
	if !ok {
		// end of this level's funnel; the subscriber waits for an external
		// trigger such as a level-up callback
		s.log.DebugContext(ctx, "No template for subscriber position",
			"subscriberID", sub.ID, "level", sub.ClientLevel, "templateID", sub.NextTemplateID)
		return nil
	}

	var age time.Duration
	if sub.NextSendAt != nil {
		age = now.Sub(*sub.NextSendAt)
	}
	if age < 0 {
		// scheduled strictly in the future; the due query should have excluded it
		return nil
	}

	if age > graceWindow {
		s.log.WarnContext(ctx, "Message is stale, advancing without sending",
			"subscriberID", sub.ID, "templateID", tmpl.ID, "overdue", age)
	} else {
		msg := OutboundMessage{
			BotID:        bot.ID,
			ChatID:       sub.ChatID,
			Text:         Render(bot, sub, tmpl.Text),
			Prompt:       promptFor(tmpl),
			SubscriberID: sub.ID,
		}
		if err := s.gateway.Send(ctx, msg); err != nil {
			if !errors.Is(err, ErrRecipientGone) {
				// state stays untouched; the subscriber remains due and is
				// retried on the next tick
				return fmt.Errorf("send message: %w", err)
			}

			s.log.InfoContext(ctx, "Recipient is gone, parking subscriber",
				"subscriberID", sub.ID)
			sub.NextTemplateID = dal.TerminalTemplateID
			sub.NextSendAt = nil
			sub.ParkedAt = &now
			return s.subscribers.PutSubscriber(sub)
		}
	}

	sub.NextTemplateID = tmpl.NextID
	sub.NextSendAt = s.nextSendAt(ctx, tmpl, now)
	if err := s.subscribers.PutSubscriber(sub); err != nil {
		return fmt.Errorf("put subscriber: %w", err)
	}

	return nil
}

func (s *Funnel) nextSendAt(ctx context.Context, tmpl templates.Message, now time.Time) *time.Time {
	if tmpl.DelayMinutes != nil {
		t := now.Add(time.Duration(*tmpl.DelayMinutes) * time.Minute)
		return &t
	}

	if tmpl.AnchorEvent != "" {
		when, ok, err := s.events.Resolve(ctx, tmpl.AnchorEvent)
		if err != nil {
			s.log.ErrorContext(ctx, "Failed to resolve anchor event",
				"event", tmpl.AnchorEvent, "error", err)
		} else if !ok {
			s.log.WarnContext(ctx, "Anchor event not found", "event", tmpl.AnchorEvent)
		}
		if err != nil || !ok {
			t := now.Add(anchorFallbackDelay)
			return &t
		}

		t := when.AddDate(0, 0, -tmpl.AnchorLeadDays)
		return &t
	}

	return nil
}

func promptFor(tmpl templates.Message) Prompt {
	switch {
	case tmpl.LevelUpPrompt:
		return PromptConfirm
	case tmpl.RatingPrompt:
		return PromptRating
	default:
		return PromptNone
	}
}
