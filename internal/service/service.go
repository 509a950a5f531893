package service

import (
	"context"
	"errors"
	"time"
)

//go:generate mockgen -package mocks -destination mocks/collaborators.go . Gateway,TemplateRepository,EventLookup,ResourceAssigner

//go:generate mockgen -package mocks -destination mocks/stores.go . SubscriberStore,BotStore,CampaignStore

const (
	// maxClientLevel is the terminal client segment; advancement past it is a no-op.
	maxClientLevel = 2

	// graceWindow bounds how late a scheduled send may be attempted. Anything
	// older is skipped and only the funnel position is advanced, so a backlog
	// built up during downtime is not blasted out at once.
	graceWindow = 15 * time.Minute
)

// ErrRecipientGone is returned by gateway implementations when the chat cannot
// receive messages anymore (bot blocked, account deactivated, chat deleted).
var ErrRecipientGone = errors.New("recipient gone")

var (
	ErrBotNotFound        = errors.New("bot not found")
	ErrSubscriberNotFound = errors.New("subscriber not found")
)

// Prompt selects the inline reply keyboard attached to an outbound message.
type Prompt int

const (
	PromptNone Prompt = iota
	// PromptConfirm attaches Yes/No buttons with "{subscriberID}|t" / "{subscriberID}|f" payloads.
	PromptConfirm
	// PromptRating attaches 1-5 buttons with "{subscriberID}|1".."{subscriberID}|5" payloads.
	PromptRating
)

type (
	OutboundMessage struct {
		BotID        string
		ChatID       int64
		Text         string
		Prompt       Prompt
		SubscriberID string
	}

	// Gateway models the push-message API. Implementations must not be called
	// while holding a store transaction: send first, persist after.
	Gateway interface {
		Send(ctx context.Context, msg OutboundMessage) error
	}

	Clock interface {
		Now() time.Time
	}
)
