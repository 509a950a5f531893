package testutil

import (
	"fmt"
	"time"

	"github.com/Roma7-7-7/funnel-bot/internal/dal"
)

// SubscriberBuilder provides fluent API for building test subscribers
type SubscriberBuilder struct {
	sub dal.Subscriber
}

// NewSubscriber creates a new subscriber builder with defaults
func NewSubscriber(id string) *SubscriberBuilder {
	return &SubscriberBuilder{
		sub: dal.Subscriber{
			ID:     id,
			BotID:  "bot-1",
			ChatID: 100,
			Name:   fmt.Sprintf("name-%s", id),
		},
	}
}

func (b *SubscriberBuilder) WithBotID(botID string) *SubscriberBuilder {
	b.sub.BotID = botID
	return b
}

func (b *SubscriberBuilder) WithChatID(chatID int64) *SubscriberBuilder {
	b.sub.ChatID = chatID
	return b
}

func (b *SubscriberBuilder) WithName(name string) *SubscriberBuilder {
	b.sub.Name = name
	return b
}

func (b *SubscriberBuilder) WithClientLevel(level int) *SubscriberBuilder {
	b.sub.ClientLevel = level
	return b
}

func (b *SubscriberBuilder) WithNextTemplateID(id int) *SubscriberBuilder {
	b.sub.NextTemplateID = id
	return b
}

func (b *SubscriberBuilder) WithNextSendAt(t time.Time) *SubscriberBuilder {
	b.sub.NextSendAt = &t
	return b
}

func (b *SubscriberBuilder) WithAssignedResource(value string) *SubscriberBuilder {
	b.sub.AssignedResource = value
	return b
}

func (b *SubscriberBuilder) WithRating(rating int) *SubscriberBuilder {
	b.sub.Rating = rating
	return b
}

func (b *SubscriberBuilder) WithReferenceText(text string) *SubscriberBuilder {
	b.sub.ReferenceText = text
	return b
}

func (b *SubscriberBuilder) WithParkedAt(t time.Time) *SubscriberBuilder {
	b.sub.ParkedAt = &t
	return b
}

// Build returns the constructed subscriber
func (b *SubscriberBuilder) Build() dal.Subscriber {
	return b.sub
}

// BotBuilder provides fluent API for building test bots
type BotBuilder struct {
	bot dal.Bot
}

func NewBot(id string) *BotBuilder {
	return &BotBuilder{
		bot: dal.Bot{
			ID:       id,
			Name:     fmt.Sprintf("name-%s", id),
			Token:    fmt.Sprintf("token-%s", id),
			Language: "en",
		},
	}
}

func (b *BotBuilder) WithName(name string) *BotBuilder {
	b.bot.Name = name
	return b
}

func (b *BotBuilder) WithLanguage(language string) *BotBuilder {
	b.bot.Language = language
	return b
}

func (b *BotBuilder) WithSupportContact(contact string) *BotBuilder {
	b.bot.SupportContact = contact
	return b
}

func (b *BotBuilder) WithEvent(name string, date time.Time) *BotBuilder {
	b.bot.IsEvent = true
	b.bot.EventName = name
	b.bot.EventDate = &date
	return b
}

func (b *BotBuilder) Build() dal.Bot {
	return b.bot
}

// CampaignBuilder provides fluent API for building test campaigns
type CampaignBuilder struct {
	c dal.Campaign
}

func NewCampaign(id string) *CampaignBuilder {
	return &CampaignBuilder{
		c: dal.Campaign{
			ID:           id,
			BotID:        "bot-1",
			Message:      fmt.Sprintf("message-%s", id),
			TargetLevels: []int{0, 1},
			IsActive:     true,
		},
	}
}

func (b *CampaignBuilder) WithMessage(message string) *CampaignBuilder {
	b.c.Message = message
	return b
}

func (b *CampaignBuilder) WithTargetLevels(levels ...int) *CampaignBuilder {
	b.c.TargetLevels = levels
	return b
}

func (b *CampaignBuilder) WithSendAt(t time.Time) *CampaignBuilder {
	b.c.SendAt = &t
	return b
}

func (b *CampaignBuilder) WithRepeat(intervalDays int) *CampaignBuilder {
	b.c.Repeat = true
	b.c.IntervalDays = intervalDays
	return b
}

func (b *CampaignBuilder) WithRequiresConfirmation() *CampaignBuilder {
	b.c.RequiresConfirmation = true
	return b
}

func (b *CampaignBuilder) Build() dal.Campaign {
	return b.c
}

// ResourceBuilder provides fluent API for building test resources
type ResourceBuilder struct {
	r dal.Resource
}

func NewResource(id string) *ResourceBuilder {
	return &ResourceBuilder{
		r: dal.Resource{
			ID:    id,
			BotID: "bot-1",
			Label: fmt.Sprintf("label-%s", id),
			Value: fmt.Sprintf("https://example.com/%s", id),
			Share: 1,
		},
	}
}

func (b *ResourceBuilder) WithBotID(botID string) *ResourceBuilder {
	b.r.BotID = botID
	return b
}

func (b *ResourceBuilder) WithValue(value string) *ResourceBuilder {
	b.r.Value = value
	return b
}

func (b *ResourceBuilder) WithShare(share int) *ResourceBuilder {
	b.r.Share = share
	return b
}

func (b *ResourceBuilder) Build() dal.Resource {
	return b.r
}
