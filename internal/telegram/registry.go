package telegram

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"

	"golang.org/x/time/rate"
	tb "gopkg.in/telebot.v3"

	"github.com/Roma7-7-7/funnel-bot/internal/dal"
	"github.com/Roma7-7-7/funnel-bot/internal/service"
)

// Registry is the delivery gateway: it keeps one telebot instance per bot and
// pushes outbound messages through a shared rate limiter. Telegram caps bot
// throughput globally, so the limiter spans all bots in the process.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]registryEntry

	limiter *rate.Limiter

	log *slog.Logger
}

type registryEntry struct {
	bot      *tb.Bot
	language string
}

func NewRegistry(limit rate.Limit, burst int, log *slog.Logger) *Registry {
	return &Registry{
		entries: make(map[string]registryEntry),
		limiter: rate.NewLimiter(limit, burst),
		log:     log.With("component", "gateway"),
	}
}

// Register makes the bot available for outbound sends.
func (r *Registry) Register(conf dal.Bot, bot *tb.Bot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[conf.ID] = registryEntry{bot: bot, language: conf.Language}
}

// Send delivers one message. Errors that mean the chat can never receive
// messages again (blocked, deactivated, deleted) are reported as
// service.ErrRecipientGone so callers can stop retrying.
func (r *Registry) Send(ctx context.Context, msg service.OutboundMessage) error {
	r.mu.RLock()
	entry, ok := r.entries[msg.BotID]
	r.mu.RUnlock()
	if !ok {
		return fmt.Errorf("bot %s is not registered", msg.BotID)
	}

	if err := r.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("wait for send slot: %w", err)
	}

	opts := &tb.SendOptions{ParseMode: tb.ModeHTML}
	if markup := markupFor(msg, entry.language); markup != nil {
		opts.ReplyMarkup = markup
	}

	if _, err := entry.bot.Send(tb.ChatID(msg.ChatID), msg.Text, opts); err != nil {
		if isRecipientGone(err) {
			return fmt.Errorf("send to chat %d: %w", msg.ChatID, service.ErrRecipientGone)
		}
		return fmt.Errorf("send to chat %d: %w", msg.ChatID, err)
	}

	return nil
}

func isRecipientGone(err error) bool {
	return errors.Is(err, tb.ErrBlockedByUser) ||
		errors.Is(err, tb.ErrUserIsDeactivated) ||
		errors.Is(err, tb.ErrChatNotFound)
}

var confirmLabels = map[string][2]string{
	"en": {"✅ Yes", "❌ No"},
	"cs": {"✅ ANO", "❌ NE"},
	"sk": {"✅ ÁNO", "❌ NIE"},
	"uk": {"✅ Так", "❌ Ні"},
}

// markupFor builds the inline keyboard for the message's prompt. Button payloads
// follow the "{subscriberID}|{token}" callback contract.
func markupFor(msg service.OutboundMessage, language string) *tb.ReplyMarkup {
	switch msg.Prompt {
	case service.PromptConfirm:
		labels, ok := confirmLabels[language]
		if !ok {
			labels = confirmLabels["en"]
		}
		return &tb.ReplyMarkup{InlineKeyboard: [][]tb.InlineButton{{
			{Text: labels[0], Data: msg.SubscriberID + "|t"},
			{Text: labels[1], Data: msg.SubscriberID + "|f"},
		}}}
	case service.PromptRating:
		row := make([]tb.InlineButton, 0, 5)
		for i := 1; i <= 5; i++ {
			row = append(row, tb.InlineButton{
				Text: strconv.Itoa(i) + " ⭐",
				Data: fmt.Sprintf("%s|%d", msg.SubscriberID, i),
			})
		}
		return &tb.ReplyMarkup{InlineKeyboard: [][]tb.InlineButton{row}}
	default:
		return nil
	}
}
