package dal

import (
	"fmt"
	"time"
)

// SubscriberBuilder provides fluent API for building test subscribers
type SubscriberBuilder struct {
	sub Subscriber
}

// NewSubscriber creates a new subscriber builder with defaults
func NewSubscriber(id string) *SubscriberBuilder {
	return &SubscriberBuilder{
		sub: Subscriber{
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

func (b *SubscriberBuilder) WithParkedAt(t time.Time) *SubscriberBuilder {
	b.sub.ParkedAt = &t
	return b
}

func (b *SubscriberBuilder) WithCreatedAt(t time.Time) *SubscriberBuilder {
	b.sub.CreatedAt = t
	return b
}

func (b *SubscriberBuilder) WithUpdatedAt(t time.Time) *SubscriberBuilder {
	b.sub.UpdatedAt = t
	return b
}

// Build returns the constructed subscriber
func (b *SubscriberBuilder) Build() Subscriber {
	return b.sub
}

// BotBuilder provides fluent API for building test bots
type BotBuilder struct {
	bot Bot
}

func NewBot(id string) *BotBuilder {
	return &BotBuilder{
		bot: Bot{
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

func (b *BotBuilder) WithTimestamps(t time.Time) *BotBuilder {
	b.bot.CreatedAt = t
	b.bot.UpdatedAt = t
	return b
}

func (b *BotBuilder) Build() Bot {
	return b.bot
}

// CampaignBuilder provides fluent API for building test campaigns
type CampaignBuilder struct {
	c Campaign
}

func NewCampaign(id string) *CampaignBuilder {
	return &CampaignBuilder{
		c: Campaign{
			ID:           id,
			BotID:        "bot-1",
			Message:      fmt.Sprintf("message-%s", id),
			TargetLevels: []int{0, 1},
			IsActive:     true,
		},
	}
}

func (b *CampaignBuilder) WithBotID(botID string) *CampaignBuilder {
	b.c.BotID = botID
	return b
}

func (b *CampaignBuilder) WithActive(active bool) *CampaignBuilder {
	b.c.IsActive = active
	return b
}

func (b *CampaignBuilder) WithSendAt(t time.Time) *CampaignBuilder {
	b.c.SendAt = &t
	return b
}

func (b *CampaignBuilder) WithTimestamps(t time.Time) *CampaignBuilder {
	b.c.CreatedAt = t
	b.c.UpdatedAt = t
	return b
}

func (b *CampaignBuilder) Build() Campaign {
	return b.c
}

// ResourceBuilder provides fluent API for building test resources
type ResourceBuilder struct {
	r Resource
}

func NewResource(id string) *ResourceBuilder {
	return &ResourceBuilder{
		r: Resource{
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

func (b *ResourceBuilder) WithShare(share int) *ResourceBuilder {
	b.r.Share = share
	return b
}

func (b *ResourceBuilder) WithAssignedCount(count int) *ResourceBuilder {
	b.r.AssignedCount = count
	return b
}

func (b *ResourceBuilder) WithTimestamps(t time.Time) *ResourceBuilder {
	b.r.CreatedAt = t
	b.r.UpdatedAt = t
	return b
}

func (b *ResourceBuilder) Build() Resource {
	return b.r
}
