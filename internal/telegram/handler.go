package telegram

import (
	"context"
	"log/slog"
	"strings"

	tb "gopkg.in/telebot.v3"

	"github.com/Roma7-7-7/funnel-bot/internal/dal"
	"github.com/Roma7-7-7/funnel-bot/internal/service"
)

const genericErrorMsg = "Something went wrong. Please try again later."

// Funnel is the slice of the funnel service the inbound handler needs.
type Funnel interface {
	RegisterSubscriber(ctx context.Context, botID string, chatID int64, name string) (dal.Subscriber, bool, error)
	HandleCallback(ctx context.Context, payload string)
	HandleReply(ctx context.Context, botID string, chatID int64, text string) error
}

type Handler struct {
	conf   dal.Bot
	funnel Funnel

	log *slog.Logger
}

func NewHandler(conf dal.Bot, funnel Funnel, log *slog.Logger) *Handler {
	return &Handler{
		conf:   conf,
		funnel: funnel,
		log:    log.With("component", "handler").With("botID", conf.ID),
	}
}

// Start registers the subscriber on first contact and greets them. The first
// funnel message is sent by the next dispatcher tick, not from here.
func (h *Handler) Start(ctx context.Context) func(c tb.Context) error {
	return func(c tb.Context) error {
		chatID := c.Sender().ID
		name := strings.TrimSpace(c.Sender().FirstName)

		sub, created, err := h.funnel.RegisterSubscriber(ctx, h.conf.ID, chatID, name)
		if err != nil {
			h.log.Error("failed to register subscriber", "chatID", chatID, "error", err)
			return c.Send(genericErrorMsg)
		}

		h.log.Debug("start handler called", "chatID", chatID, "created", created)

		welcome := h.conf.WelcomeMessage
		if welcome == "" {
			welcome = "Welcome, {name}!"
		}
		return c.Send(service.Render(h.conf, sub, welcome), &tb.SendOptions{ParseMode: tb.ModeHTML})
	}
}

// Help points the subscriber at the bot's support contact.
func (h *Handler) Help(c tb.Context) error {
	support := h.conf.SupportContact
	if support == "" {
		support = "support"
	}
	return c.Send("If you need help, reach out to " + support)
}

// Callback responds to the query to clear the loading state and hands the
// payload to the funnel. Malformed payloads are the funnel's problem to log;
// nothing here ever fails the telebot dispatch loop.
func (h *Handler) Callback(ctx context.Context) func(c tb.Context) error {
	return func(c tb.Context) error {
		callback := c.Callback()
		if callback == nil {
			h.log.Debug("callback handler called with nil callback")
			return nil
		}

		if err := c.Respond(); err != nil {
			h.log.Warn("failed to respond to callback", "error", err)
		}

		data := callback.Data
		if len(data) > 0 && data[0] == '\f' {
			data = data[1:]
		}

		h.log.Debug("callback received", "data", data)
		h.funnel.HandleCallback(ctx, data)
		return nil
	}
}

// Text forwards plain replies to the funnel (reference text after a rating).
func (h *Handler) Text(ctx context.Context) func(c tb.Context) error {
	return func(c tb.Context) error {
		chatID := c.Sender().ID
		if err := h.funnel.HandleReply(ctx, h.conf.ID, chatID, c.Text()); err != nil {
			h.log.Error("failed to handle reply", "chatID", chatID, "error", err)
		}
		return nil
	}
}
